// Released under an MIT license. See LICENSE.

// Package float provides notlisp's real number type.
package float

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
)

const name = "real"

// T (float) wraps Go's float64 type.
type T float64

type float = T

// New creates a new real cell.
func New(v float64) *T {
	f := float(v)
	return &f
}

// Equal returns true if c is a real with the same value.
func (f *float) Equal(c cell.I) bool {
	return Is(c) && *f == *To(c)
}

// Float64 returns the value of the real f.
func (f *float) Float64() float64 {
	return float64(*f)
}

// Literal returns the literal representation of the real f.
// The result always reads back as a real, never as an integer.
func (f *float) Literal() string {
	s := strconv.FormatFloat(float64(*f), 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}

	return s + ".0"
}

// Name returns the type name for the real f.
func (f *float) Name() string {
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
	var t float

	// The real type is a cell.
	_ = cell.I(&t)

	// The real type has a literal representation.
	_ = literal.I(&t)
}
