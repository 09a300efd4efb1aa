// Released under an MIT license. See LICENSE.

// Package validate binds the evaluated arguments of a function call.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/notlisp/pkg/common/errs"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/float"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/integer"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/kwd"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/str"
)

// Converter extracts a typed value from a cell.
type Converter func(c cell.I) error

// T (validate) is a forward-only cursor over a function's arguments.
type T struct {
	args []cell.I
	cur  int
	err  error
}

type accessor = T

// New creates an accessor for args.
func New(args []cell.I) *T {
	return &accessor{args: args}
}

// Err returns the first error encountered by Required.
func (a *accessor) Err() error {
	return a.err
}

// Optional stores the next argument in dst, if there is one.
func (a *accessor) Optional(dst *cell.I) bool {
	if a.cur == len(a.args) {
		return false
	}

	*dst = a.args[a.cur]
	a.cur++

	return true
}

// OptionalFunc passes the next argument to consume, if there is one.
func (a *accessor) OptionalFunc(consume func(cell.I)) bool {
	var c cell.I
	if !a.Optional(&c) {
		return false
	}

	consume(c)

	return true
}

// Remaining returns the number of arguments not yet consumed.
func (a *accessor) Remaining() int {
	return len(a.args) - a.cur
}

// Required converts the next argument with convert. It returns a so calls
// can be chained. After the first failure further calls do nothing and the
// failure is reported by Err.
func (a *accessor) Required(convert Converter) *T {
	if a.err != nil {
		return a
	}

	if a.cur == len(a.args) {
		a.err = errs.Eval("required param is absent")

		return a
	}

	a.err = convert(a.args[a.cur])
	a.cur++

	return a
}

// Rest consumes all remaining arguments. A keyword and the argument that
// follows it are passed to keyword. Every other argument is passed to
// positional. A keyword without a following argument is an error.
func (a *accessor) Rest(
	positional func(v cell.I) error,
	keyword func(name string, v cell.I) error,
) error {
	var k *kwd.T

	var v cell.I
	for a.Optional(&v) {
		var err error

		switch {
		case k != nil:
			err = keyword(k.String(), v)
			k = nil
		case kwd.Is(v):
			k = kwd.To(v)
		default:
			err = positional(v)
		}

		if err != nil {
			return err
		}
	}

	if k != nil {
		return errs.Eval("orphaned keyword %s", k.Literal())
	}

	return nil
}

// RestCells returns all remaining arguments.
func (a *accessor) RestCells() []cell.I {
	rest := a.args[a.cur:]
	a.cur = len(a.args)

	return rest
}

// Typed extractors.

// Double returns the value of c if c is a real.
func Double(c cell.I) (float64, error) {
	f, ok := c.(*float.T)
	if !ok {
		return 0, mismatch("real", c)
	}

	return f.Float64(), nil
}

// Long returns the value of c if c is an integer.
func Long(c cell.I) (int64, error) {
	i, ok := c.(*integer.T)
	if !ok {
		return 0, mismatch("integer", c)
	}

	return i.Int64(), nil
}

// String returns the value of c if c is a string.
func String(c cell.I) (string, error) {
	s, ok := c.(*str.T)
	if !ok {
		return "", mismatch("string", c)
	}

	return s.String(), nil
}

// Converters.

// ToCell stores any argument in dst.
func ToCell(dst *cell.I) Converter {
	return func(c cell.I) error {
		*dst = c
		return nil
	}
}

// ToDouble stores a real argument in dst.
func ToDouble(dst *float64) Converter {
	return func(c cell.I) (err error) {
		*dst, err = Double(c)
		return
	}
}

// ToKeyword stores the name of a keyword argument in dst.
func ToKeyword(dst *string) Converter {
	return func(c cell.I) error {
		k, ok := c.(*kwd.T)
		if !ok {
			return mismatch("keyword", c)
		}

		*dst = k.String()

		return nil
	}
}

// ToLong stores an integer argument in dst.
func ToLong(dst *int64) Converter {
	return func(c cell.I) (err error) {
		*dst, err = Long(c)
		return
	}
}

// ToString stores a string argument in dst.
func ToString(dst *string) Converter {
	return func(c cell.I) (err error) {
		*dst, err = String(c)
		return
	}
}

// Arity checks.

// Count returns n followed by label, pluralized with p if n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Fixed checks that args has at least min and at most max elements.
// A negative max means there is no upper limit.
func Fixed(args []cell.I, min, max int) error {
	n := len(args)

	if n < min {
		return errs.Eval("expected %s, passed %d", Count(min, "argument", "s"), n)
	}

	if max >= 0 && n > max {
		return errs.Eval("expected %s, passed %d", Count(max, "argument", "s"), n)
	}

	return nil
}

func mismatch(expected string, c cell.I) error {
	if c == nil {
		return errs.Eval("type mismatch: expected %s, got null", expected)
	}

	return errs.Eval(
		"type mismatch: expected %s, got %s %s",
		expected, c.Name(), literal.String(c),
	)
}
