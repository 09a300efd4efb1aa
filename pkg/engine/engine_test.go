package engine

import (
	"errors"
	"math"
	"strings"
	"testing"

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
	"github.com/michaelmacinnis/notlisp/pkg/common/validate"
	"github.com/michaelmacinnis/notlisp/pkg/reader/parser"
)

func run(t *testing.T, e *env.T, s string) ([]cell.I, error) {
	t.Helper()

	i := New(e, nil)
	err := parser.Parse(strings.NewReader(s), i)

	return i.Results(), err
}

func check(t *testing.T, e *env.T, s string, expected ...cell.I) {
	t.Helper()

	results, err := run(t, e, s)
	if err != nil {
		t.Fatalf("evaluating %q: %v", s, err)
	}

	if len(results) != len(expected) {
		t.Fatalf("evaluating %q: got %d results, expected %d",
			s, len(results), len(expected))
	}

	for i, c := range expected {
		if !c.Equal(results[i]) {
			t.Fatalf("evaluating %q: result %d is %s, expected %s",
				s, i, literal.String(results[i]), literal.String(c))
		}
	}
}

func failure(t *testing.T, e *env.T, s string, offset int64, msg string) error {
	t.Helper()

	_, err := run(t, e, s)
	if err == nil {
		t.Fatalf("evaluating %q: expected error %q", s, msg)
	}

	if !errors.Is(err, errs.ErrEval) {
		t.Fatalf("evaluating %q: %v is not an evaluation error", s, err)
	}

	var perr *parser.Error
	if !errors.As(err, &perr) || perr.Offset != offset {
		t.Fatalf("evaluating %q: expected error at offset %d, got %v", s, offset, err)
	}

	if !strings.Contains(err.Error(), msg) {
		t.Fatalf("evaluating %q: %q does not mention %q", s, err.Error(), msg)
	}

	return err
}

func TestValues(t *testing.T) {
	check(t, env.New(), `1.2 3 "X"`,
		float.New(1.2), integer.New(3), str.New("X"))
}

func TestNoInput(t *testing.T) {
	results, err := run(t, env.New(), "")
	if err != nil {
		t.Fatal(err)
	}

	var d int64

	err = validate.New(results).Required(validate.ToLong(&d)).Err()
	if !errors.Is(err, errs.ErrEval) {
		t.Fatalf("expected evaluation error, got %v", err)
	}
}

func TestConstants(t *testing.T) {
	e := env.New(
		env.Const("x", integer.New(3)),
		env.Const("y", float.New(1.2)),
	)

	check(t, e, "x y z", integer.New(3), float.New(1.2), sym.New("z"))
}

func TestEmptyExpression(t *testing.T) {
	failure(t, env.New(), "()", 2, "evaluation of empty expression")
}

func TestCall(t *testing.T) {
	e := env.New(fn.Record("fn", func(_ *env.T, args []cell.I) (cell.I, error) {
		var s string

		err := validate.New(args).Required(validate.ToString(&s)).Err()
		if err != nil {
			return nil, err
		}

		return str.New(s + "B"), nil
	}))

	check(t, e, `(fn "A")`, str.New("AB"))
	check(t, e, `(fn (fn "A"))`, str.New("ABB"))
}

func TestList(t *testing.T) {
	e := env.New(fn.Record("list", func(_ *env.T, args []cell.I) (cell.I, error) {
		return list.New(args...), nil
	}))

	check(t, e, "(list 1 2)", list.New(integer.New(1), integer.New(2)))
	check(t, e, "(list (list) :k (list 1.5))",
		list.New(list.New(), kwd.New("k"), list.New(float.New(1.5))))
}

func TestArgumentsEvaluated(t *testing.T) {
	var seen []cell.I

	e := env.New(
		env.Const("x", integer.New(7)),
		fn.Record("f", func(_ *env.T, args []cell.I) (cell.I, error) {
			seen = args
			return null.Nil, nil
		}),
	)

	check(t, e, "(f x unbound :k)", null.Nil)

	if len(seen) != 3 ||
		!seen[0].Equal(integer.New(7)) ||
		!null.Is(seen[1]) ||
		!seen[2].Equal(kwd.New("k")) {
		t.Fatalf("unexpected arguments %v", seen)
	}
}

func TestNotAFunction(t *testing.T) {
	e := env.New(env.Const("x", integer.New(3)))

	failure(t, e, "(x 1)", 5, "not a function: 3")
	failure(t, e, "(1 2)", 5, "not a function: 1")
	failure(t, e, "(missing)", 9, "got null evaluating missing, expecting function")
}

func TestClosureErrorAnnotated(t *testing.T) {
	cause := errors.New("device busy")

	e := env.New(fn.Record("set-mode", func(_ *env.T, _ []cell.I) (cell.I, error) {
		return nil, cause
	}))

	err := failure(t, e, "(set-mode :fast)", 16, "evaluating set-mode: device busy")
	if !errors.Is(err, cause) {
		t.Fatalf("%v does not wrap %v", err, cause)
	}
}

func TestEvaluationInterleaved(t *testing.T) {
	calls := 0

	e := env.New(fn.Record("f", func(_ *env.T, _ []cell.I) (cell.I, error) {
		calls++
		return null.Nil, nil
	}))

	// The first form is evaluated before the error in the second is seen.
	if _, err := run(t, e, "(f) (f))"); err == nil {
		t.Fatal("expected error")
	}

	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestNotify(t *testing.T) {
	e := env.New(fn.Record("list", func(_ *env.T, args []cell.I) (cell.I, error) {
		return list.New(args...), nil
	}))

	i := New(e, nil)

	var emitted []string
	i.Notify(func(c cell.I) {
		emitted = append(emitted, literal.String(c))
	})

	if err := parser.Parse(strings.NewReader(`a (list (list 1)) "s"`), i); err != nil {
		t.Fatal(err)
	}

	if got := strings.Join(emitted, "|"); got != `a|((1))|"s"` {
		t.Fatalf("emitted %s", got)
	}
}

func TestDepth(t *testing.T) {
	i := New(env.New(), nil)

	if err := parser.Parse(strings.NewReader("(a (b"), i); err != nil {
		t.Fatal(err)
	}

	if i.Depth() != 2 {
		t.Fatalf("depth %d, expected 2", i.Depth())
	}
}

func TestConverter(t *testing.T) {
	upper := func(text string) cell.I {
		return str.New(strings.ToUpper(text))
	}

	i := New(env.New(), upper)
	if err := parser.Parse(strings.NewReader("abc 12"), i); err != nil {
		t.Fatal(err)
	}

	r := i.Results()
	if len(r) != 2 || !r[0].Equal(str.New("ABC")) || !r[1].Equal(str.New("12")) {
		t.Fatalf("unexpected results %v", r)
	}
}

func TestAtom(t *testing.T) {
	for text, expected := range map[string]cell.I{
		":fast":                  kwd.New("fast"),
		":":                      kwd.New(""),
		"42":                     integer.New(42),
		"-7":                     integer.New(-7),
		"+7":                     integer.New(7),
		"1.5":                    float.New(1.5),
		"1e3":                    float.New(1000),
		"9223372036854775807":    integer.New(math.MaxInt64),
		"9223372036854775808":    float.New(9223372036854775808),
		"-99999999999999999999":  float.New(-99999999999999999999),
		"0x10":                   float.New(16),
		"-0X1.8":                 float.New(-1.5),
		"0x1p4":                  float.New(16),
		"0x":                     sym.New("0x"),
		"0xg":                    sym.New("0xg"),
		"0x_1":                   sym.New("0x_1"),
		"12abc":                  sym.New("12abc"),
		"set-mode":               sym.New("set-mode"),
		"+":                      sym.New("+"),
		"-":                      sym.New("-"),
	} {
		if c := Atom(text); !expected.Equal(c) {
			t.Fatalf("Atom(%q) = %s %s, expected %s %s",
				text, c.Name(), literal.String(c),
				expected.Name(), literal.String(expected))
		}
	}

	if f, ok := Atom("1e400").(*float.T); !ok || !math.IsInf(f.Float64(), 1) {
		t.Fatalf("expected infinite real for 1e400")
	}
}

func TestSymbolLiteral(t *testing.T) {
	results, err := run(t, env.New(), `a\ b f\(x\)`)
	if err != nil {
		t.Fatal(err)
	}

	var written []string
	for _, c := range results {
		written = append(written, literal.String(c))
	}

	// Written symbols read back as the same symbols.
	again, err := run(t, env.New(), strings.Join(written, " "))
	if err != nil {
		t.Fatal(err)
	}

	if len(again) != 2 || !again[0].Equal(sym.New("a b")) || !again[1].Equal(sym.New("f(x)")) {
		t.Fatalf("%v read back as %v", written, again)
	}
}

func TestEvalSelf(t *testing.T) {
	e := env.New()

	for _, c := range []cell.I{
		null.Nil,
		kwd.New("k"),
		str.New("s"),
		integer.New(1),
		float.New(1.5),
		fn.New("f", nil),
		list.New(sym.New("unevaluated")),
		obj.New("handle", 42),
	} {
		v, err := Eval(e, c)
		if err != nil {
			t.Fatal(err)
		}

		if v != c {
			t.Fatalf("%s did not evaluate to itself", c.Name())
		}
	}

	if v, err := Eval(e, sym.New("missing")); v != nil || err != nil {
		t.Fatalf("expected nil for unbound symbol, got %v, %v", v, err)
	}

	if _, err := Eval(e, env.New()); !errors.Is(err, errs.ErrEval) {
		t.Fatalf("expected evaluation error for environment, got %v", err)
	}
}
