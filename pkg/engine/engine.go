// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed notlisp code.
//
// The engine is a parser.Handler. It accumulates the elements of each open
// list and evaluates a list as soon as it is closed, replacing the list with
// its value in the enclosing list.
package engine

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/notlisp/pkg/common/errs"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/env"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/float"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/fn"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/integer"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/kwd"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/list"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/null"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/obj"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/str"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/sym"
)

// Converter turns the text of an atom into a cell.
type Converter func(text string) cell.I

// T (engine) is an interpreter session.
type T struct {
	convert Converter
	emit    func(cell.I)
	env     *env.T
	stack   [][]cell.I
}

type engine = T

// New creates a new interpreter using the environment e.
// If convert is nil, Atom is used to convert atoms.
func New(e *env.T, convert Converter) *T {
	if convert == nil {
		convert = Atom
	}

	return &engine{
		convert: convert,
		env:     e,
		stack:   [][]cell.I{nil},
	}
}

// Depth returns the number of lists opened but not yet closed.
func (t *engine) Depth() int {
	return len(t.stack) - 1
}

// Notify arranges for f to be called with each top-level result.
func (t *engine) Notify(f func(cell.I)) {
	t.emit = f
}

// Results returns the top-level results accumulated so far.
func (t *engine) Results() []cell.I {
	return append([]cell.I(nil), t.stack[0]...)
}

// Parser events.

// Atom converts text and adds the result to the current list.
func (t *engine) Atom(text string) error {
	c := t.convert(text)

	if t.Depth() == 0 {
		v, err := Eval(t.env, c)
		if err != nil {
			return err
		}

		// Unbound symbols are left as they are at the top level.
		if v != nil {
			c = v
		}
	}

	t.push(c)

	return nil
}

// Comment ignores comments.
func (t *engine) Comment(_ string) error {
	return nil
}

// EOF does nothing. Results remain available.
func (t *engine) EOF() error {
	return nil
}

// ListBegin starts a new list.
func (t *engine) ListBegin() error {
	t.stack = append(t.stack, nil)

	return nil
}

// ListEnd evaluates the list just closed.
func (t *engine) ListEnd() error {
	n := len(t.stack) - 1
	if n == 0 {
		return errs.Eval("no list to close")
	}

	form := t.stack[n]

	v, err := t.apply(form)
	if err != nil {
		return err
	}

	t.stack = t.stack[:n]
	t.push(v)

	return nil
}

// String adds a string to the current list.
func (t *engine) String(text string) error {
	t.push(str.New(text))

	return nil
}

func (t *engine) apply(form []cell.I) (cell.I, error) {
	if len(form) == 0 {
		return nil, errs.Eval("evaluation of empty expression")
	}

	head, err := Eval(t.env, form[0])
	if err != nil {
		return nil, err
	}

	if head == nil {
		return nil, errs.Eval(
			"got null evaluating %s, expecting function",
			literal.String(form[0]),
		)
	}

	f, ok := head.(*fn.T)
	if !ok {
		return nil, errs.Eval("not a function: %s", literal.String(head))
	}

	args := make([]cell.I, 0, len(form)-1)

	for _, c := range form[1:] {
		v, err := Eval(t.env, c)
		if err != nil {
			return nil, err
		}

		if v == nil {
			v = null.Nil
		}

		args = append(args, v)
	}

	slog.Debug("call",
		slog.String("function", f.Literal()),
		slog.Int("argument-count", len(args)))

	v, err := f.Call(t.env, args)
	if err != nil {
		return nil, errs.Eval("evaluating %s: %w", f.Literal(), err)
	}

	if v == nil {
		v = null.Nil
	}

	return v, nil
}

func (t *engine) push(c cell.I) {
	n := len(t.stack) - 1
	t.stack[n] = append(t.stack[n], c)

	if n == 0 && t.emit != nil {
		t.emit(c)
	}
}

// Atom is the default conversion for the text of an atom.
//
// Text starting with a colon is a keyword. Otherwise, text that is entirely
// a base 10 integer is an integer, text that is entirely a floating point
// number (decimal or hexadecimal) is a real, and anything else is a
// symbol. An integer too large for 64 bits is a real.
func Atom(text string) cell.I {
	if len(text) > 0 && text[0] == ':' {
		return kwd.New(text[1:])
	}

	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return integer.New(i)
	}

	// Out of range reals are infinite but still reals.
	if f, err := strconv.ParseFloat(text, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return float.New(f)
	}

	if f, ok := hexReal(text); ok {
		return float.New(f)
	}

	return sym.New(text)
}

// hexReal reads hexadecimal text without a binary exponent, like 0x10,
// which strconv only accepts with one.
func hexReal(text string) (float64, bool) {
	digits := text
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}

	if !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X") {
		return 0, false
	}

	if strings.ContainsAny(digits, "pP_") {
		return 0, false
	}

	f, err := strconv.ParseFloat(text+"p0", 64)

	return f, err == nil || errors.Is(err, strconv.ErrRange)
}

// Eval evaluates the expression c in the environment e.
// A symbol evaluates to its value in e or to nil if it is not bound.
// Every other expression evaluates to itself.
func Eval(e *env.T, c cell.I) (cell.I, error) {
	switch c := c.(type) {
	case *sym.T:
		return e.Lookup(c.String()), nil
	case *null.T, *kwd.T, *str.T, *integer.T, *float.T,
		*fn.T, *list.T, *obj.T:
		return c, nil
	case nil:
		return nil, errs.Eval("evaluation of missing expression")
	}

	return nil, errs.Eval("cannot evaluate %s", c.Name())
}
