// Released under an MIT license. See LICENSE.

// Package env provides notlisp's environment, a flat mapping of names to values.
//
// There are no nested scopes. An environment is built by the host before
// evaluation starts and is owned by a single session.
package env

import (
	"sort"

	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
)

const name = "environment"

// Binding associates a name with a value.
type Binding struct {
	Name  string
	Value cell.I
}

// Const creates a binding of name to the constant v.
func Const(name string, v cell.I) Binding {
	return Binding{Name: name, Value: v}
}

// T (env) maps names to values.
type T struct {
	m map[string]cell.I
}

type env = T

// New creates a new env populated with bindings.
func New(bindings ...Binding) *T {
	e := &env{m: make(map[string]cell.I, len(bindings))}

	for _, b := range bindings {
		e.Define(b.Name, b.Value)
	}

	return e
}

// Copy creates a new env with the same bindings as e.
func (e *env) Copy() *T {
	fresh := New()
	for k, v := range e.m {
		fresh.m[k] = v
	}

	return fresh
}

// Define associates the name k with the cell v in the env e.
func (e *env) Define(k string, v cell.I) {
	e.m[k] = v
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	o, ok := c.(*T)
	return ok && e == o
}

// Lookup retrieves the value associated with the name k in the env e.
// It returns nil if k is not bound.
func (e *env) Lookup(k string) cell.I {
	if e == nil {
		return nil
	}

	return e.m[k]
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Names returns the names bound in e in sorted order.
func (e *env) Names() []string {
	names := make([]string, 0, len(e.m))
	for k := range e.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Remove frees the name k from any association in the env e.
func (e *env) Remove(k string) bool {
	if e == nil {
		return false
	}

	if _, ok := e.m[k]; !ok {
		return false
	}

	delete(e.m, k)

	return true
}

// Size returns the number of names bound in the env e.
func (e *env) Size() int {
	return len(e.m)
}
