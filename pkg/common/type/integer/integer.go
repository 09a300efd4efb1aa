// Released under an MIT license. See LICENSE.

// Package integer provides notlisp's 64-bit integer type.
package integer

import (
	"strconv"

	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
)

const name = "integer"

// T (integer) wraps Go's int64 type.
type T int64

type integer = T

// New creates a new integer cell.
func New(v int64) *T {
	i := integer(v)
	return &i
}

// Int creates a new integer cell from an int.
func Int(v int) *T {
	return New(int64(v))
}

// Equal returns true if c is an integer with the same value.
func (i *integer) Equal(c cell.I) bool {
	return Is(c) && *i == *To(c)
}

// Int64 returns the value of the integer i.
func (i *integer) Int64() int64 {
	return int64(*i)
}

// Literal returns the literal representation of the integer i.
func (i *integer) Literal() string {
	return strconv.FormatInt(int64(*i), 10)
}

// Name returns the type name for the integer i.
func (i *integer) Name() string {
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

	panic("not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t integer

	// The integer type is a cell.
	_ = cell.I(&t)

	// The integer type has a literal representation.
	_ = literal.I(&t)
}
