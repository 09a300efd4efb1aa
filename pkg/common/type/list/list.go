// Released under an MIT license. See LICENSE.

// Package list provides notlisp's list type.
// Unlike the surface syntax being parsed, a list value is already evaluated.
package list

import (
	"strings"

	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
)

const name = "list"

// T (list) is an ordered sequence of cells.
type T struct {
	elements []cell.I
}

type list = T

// New creates a new list containing elements. The slice is copied.
func New(elements ...cell.I) *T {
	return &list{elements: append([]cell.I(nil), elements...)}
}

// Elements returns a copy of the elements of the list l.
func (l *list) Elements() []cell.I {
	return append([]cell.I(nil), l.elements...)
}

// Equal returns true if c is a list with equal elements in the same order.
func (l *list) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(l.elements) != len(o.elements) {
		return false
	}

	for i, e := range l.elements {
		if e == nil || !e.Equal(o.elements[i]) {
			return false
		}
	}

	return true
}

// Len returns the number of elements in the list l.
func (l *list) Len() int {
	return len(l.elements)
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	var sb strings.Builder

	sb.WriteByte('(')

	for i, e := range l.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(literal.String(e))
	}

	sb.WriteByte(')')

	return sb.String()
}

// Name returns the type name for the list l.
func (l *list) Name() string {
	return name
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)
}
