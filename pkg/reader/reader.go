// Released under an MIT license. See LICENSE.

// Package reader connects the notlisp parser to an interpreter session.
package reader

import (
	"io"
	"strings"

	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/env"
	"github.com/michaelmacinnis/notlisp/pkg/engine"
	"github.com/michaelmacinnis/notlisp/pkg/reader/parser"
)

// Evaluate parses and evaluates everything in src using the environment e.
// If emit is not nil it is called with each top-level result as it is
// produced. The top-level results are returned even if an error occurs.
func Evaluate(src io.Reader, e *env.T, emit func(cell.I)) ([]cell.I, error) {
	t := engine.New(e, nil)
	if emit != nil {
		t.Notify(emit)
	}

	err := parser.Parse(src, t)

	return t.Results(), err
}

// String parses and evaluates text using the environment e.
func String(text string, e *env.T) ([]cell.I, error) {
	return Evaluate(strings.NewReader(text), e, nil)
}
