// Released under an MIT license. See LICENSE.

// Package fn provides notlisp's function type.
package fn

import (
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/env"
)

const name = "function"

// Closure is the implementation of a function. It receives the
// session's environment and the evaluated arguments.
type Closure func(e *env.T, args []cell.I) (cell.I, error)

// T (fn) is a named closure.
type T struct {
	closure Closure
	name    string
}

type fn = T

// New creates a new function.
func New(name string, c Closure) *T {
	return &fn{closure: c, name: name}
}

// Record creates a binding of name to a new function wrapping c.
func Record(name string, c Closure) env.Binding {
	return env.Binding{Name: name, Value: New(name, c)}
}

// Call applies the function f to args.
func (f *fn) Call(e *env.T, args []cell.I) (cell.I, error) {
	return f.closure(e, args)
}

// Equal returns true if c is the same function as f.
func (f *fn) Equal(c cell.I) bool {
	return Is(c) && f == To(c)
}

// Literal returns the name of the function f.
func (f *fn) Literal() string {
	return f.name
}

// Name returns the type name for the function f.
func (f *fn) Name() string {
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
	var t fn

	// The function type is a cell.
	_ = cell.I(&t)

	// The function type has a literal representation.
	_ = literal.I(&t)
}
