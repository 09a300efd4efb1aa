package reader

import (
	"errors"
	"strings"
	"testing"

	"github.com/michaelmacinnis/notlisp/pkg/common/errs"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/env"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/fn"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/list"
	"github.com/michaelmacinnis/notlisp/pkg/reader/parser"
)

func listOf(_ *env.T, args []cell.I) (cell.I, error) {
	return list.New(args...), nil
}

func TestEvaluateEmits(t *testing.T) {
	e := env.New(fn.Record("list", listOf))

	var emitted []string

	results, err := Evaluate(strings.NewReader(`1 (list 2 3) "four"`), e, func(c cell.I) {
		emitted = append(emitted, literal.String(c))
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if got := strings.Join(emitted, " "); got != `1 (2 3) "four"` {
		t.Fatalf("emitted %s", got)
	}
}

func TestStringPartialResults(t *testing.T) {
	results, err := String(`1 2 (missing) 3`, env.New())

	if !errors.Is(err, errs.ErrEval) {
		t.Fatalf("expected evaluation error, got %v", err)
	}

	var perr *parser.Error
	if !errors.As(err, &perr) || perr.Offset != 13 {
		t.Fatalf("expected error at offset 13, got %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected the 2 results before the error, got %d", len(results))
	}
}
