// Released under an MIT license. See LICENSE.

// Package sym provides notlisp's symbol type.
package sym

import (
	"sync"

	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
	"github.com/michaelmacinnis/notlisp/pkg/reader/parser"
)

const (
	name  = "symbol"
	short = 3
)

// T (sym) wraps Go's string type. Short strings are interned.
type T string

type sym = T

// New creates a sym cell.
func New(v string) *T {
	p, ok, cacheable := symtry(v)
	if ok {
		return p
	}

	s := sym(v)
	p = &s

	if cacheable {
		cachel.Lock()
		defer cachel.Unlock()

		if c, ok := cache[v]; ok {
			return c
		}

		cache[v] = p
	}

	return p
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
// Characters that would end or change an atom are escaped.
func (s *sym) Literal() string {
	return parser.Atom(string(*s))
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func symtry(v string) (p *sym, ok bool, cacheable bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	cacheable = len(v) <= short

	p, ok = cache[v]

	return
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
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)
}
