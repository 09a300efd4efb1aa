// Released under an MIT license. See LICENSE.

// Package literal defines the interface for notlisp expressions that have a textual form.
package literal

import (
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal representation for a cell.
// A missing cell is rendered as nil.
func String(c cell.I) string {
	if c == nil {
		return "nil"
	}

	l, ok := c.(I)
	if !ok {
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
