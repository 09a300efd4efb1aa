// Released under an MIT license. See LICENSE.

// Package errs provides the two kinds of failure reported by notlisp.
package errs

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to classify an error returned by notlisp.
var (
	ErrParse = errors.New("parse error")
	ErrEval  = errors.New("evaluation error")
)

// T (errs) is a descriptive error of a particular kind.
type T struct {
	cause error
	kind  error
	msg   string
}

type errs = T

// Parse creates a new parse error.
func Parse(msg string) error {
	return &errs{kind: ErrParse, msg: msg}
}

// Eval creates a new evaluation error. The format may use %w to wrap a cause.
func Eval(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)

	return &errs{cause: errors.Unwrap(err), kind: ErrEval, msg: err.Error()}
}

// Error returns the error message.
func (e *errs) Error() string {
	return e.msg
}

// Is returns true if target is the kind of e.
func (e *errs) Is(target error) bool {
	return target == e.kind
}

// Kind returns ErrParse or ErrEval.
func (e *errs) Kind() error {
	return e.kind
}

// Unwrap returns the error wrapped by e, if any.
func (e *errs) Unwrap() error {
	return e.cause
}
