// Released under an MIT license. See LICENSE.

// Package str provides notlisp's string type.
package str

import (
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
	"github.com/michaelmacinnis/notlisp/pkg/reader/parser"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new string cell.
func New(v string) *T {
	s := str(v)
	return &s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the string s.
func (s *str) Literal() string {
	return parser.Quote(string(*s))
}

// Name returns the name of the string type.
func (s *str) Name() string {
	return name
}

// String returns the text of the string s.
func (s *str) String() string {
	return string(*s)
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
	var t str

	// The string type is a cell.
	_ = cell.I(&t)

	// The string type has a literal representation.
	_ = literal.I(&t)
}
