// Released under an MIT license. See LICENSE.

// Package null provides notlisp's nil value.
package null

import (
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
)

const name = "nil"

// T (null) is the type of the one nil value.
type T struct{}

type null = T

// Nil is the only value of type null.
var Nil cell.I = &null{} //nolint:gochecknoglobals

// Equal returns true if c is nil.
func (n *null) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of nil.
func (n *null) Literal() string {
	return name
}

// Name returns the type name for nil.
func (n *null) Name() string {
	return name
}

// Is returns true if c is nil.
func Is(c cell.I) bool {
	_, ok := c.(*T)
	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a cell.
	_ = cell.I(&t)

	// The null type has a literal representation.
	_ = literal.I(&t)
}
