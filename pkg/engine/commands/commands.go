// Released under an MIT license. See LICENSE.

// Package commands provides a small library of functions for notlisp hosts.
package commands

import (
	"github.com/michaelmacinnis/notlisp/pkg/common/type/env"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/fn"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/null"
)

// Functions returns a mapping of names to functions.
func Functions() map[string]fn.Closure {
	return map[string]fn.Closure{
		"*":      mul,
		"+":      add,
		"-":      sub,
		"/":      div,
		"concat": concat,
		"join":   join,
		"length": length,
		"list":   makeList,
		"match":  match,
	}
}

// Install binds every function, and the constant nil, in the env e.
func Install(e *env.T) {
	for k, v := range Functions() {
		e.Define(k, fn.New(k, v))
	}

	e.Define("nil", null.Nil)
}
