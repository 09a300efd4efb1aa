// Released under an MIT license. See LICENSE.

// Package obj provides notlisp's opaque object type.
// Objects are never produced by the parser. The host injects them.
package obj

import (
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
)

const name = "object"

// T (obj) carries an arbitrary host value and a tag describing it.
type T struct {
	tag   string
	value interface{}
}

type obj = T

// New creates a new object.
func New(tag string, v interface{}) *T {
	return &obj{tag: tag, value: v}
}

// Equal returns true if c is the same object as o.
func (o *obj) Equal(c cell.I) bool {
	return Is(c) && o == To(c)
}

// Literal returns the tag of the object o.
func (o *obj) Literal() string {
	return o.tag
}

// Name returns the type name for the object o.
func (o *obj) Name() string {
	return name
}

// Tag returns the tag of the object o.
func (o *obj) Tag() string {
	return o.tag
}

// Value returns the host value wrapped by the object o.
func (o *obj) Value() interface{} {
	return o.value
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

	panic("not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t obj

	// The object type is a cell.
	_ = cell.I(&t)

	// The object type has a literal representation.
	_ = literal.I(&t)
}
