// Released under an MIT license. See LICENSE.

// Package kwd provides notlisp's keyword type.
// Keywords evaluate to themselves and mark named arguments.
package kwd

import (
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
)

const name = "keyword"

// T (kwd) wraps the keyword's name, without the leading colon.
type T string

type kwd = T

// New creates a keyword cell.
func New(v string) *T {
	k := kwd(v)
	return &k
}

// Equal returns true if c is a keyword with the same name.
func (k *kwd) Equal(c cell.I) bool {
	return Is(c) && *k == *To(c)
}

// Literal returns the literal representation of the keyword k.
func (k *kwd) Literal() string {
	return ":" + string(*k)
}

// Name returns the type name for the keyword k.
func (k *kwd) Name() string {
	return name
}

// String returns the name of the keyword k.
func (k *kwd) String() string {
	return string(*k)
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
	var t kwd

	// The keyword type is a cell.
	_ = cell.I(&t)

	// The keyword type has a literal representation.
	_ = literal.I(&t)
}
