// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"math"

	"github.com/michaelmacinnis/notlisp/pkg/common/errs"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/env"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/float"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/integer"
	"github.com/michaelmacinnis/notlisp/pkg/common/validate"
)

// number is an integer until it meets a real.
type number struct {
	i    int64
	f    float64
	real bool
}

// operator.integer returns errOverflow if the result does not fit in an
// int64. The operation is then repeated with reals.
type operator struct {
	integer func(a, b int64) (int64, error)
	real    func(a, b float64) float64
}

var errOverflow = errors.New("integer overflow")

func add(_ *env.T, args []cell.I) (cell.I, error) {
	return fold(args, 0, operator{
		func(a, b int64) (int64, error) {
			c := a + b
			if (b > 0 && c < a) || (b < 0 && c > a) {
				return 0, errOverflow
			}

			return c, nil
		},
		func(a, b float64) float64 { return a + b },
	})
}

func div(_ *env.T, args []cell.I) (cell.I, error) {
	return fold(args, 1, operator{
		func(a, b int64) (int64, error) {
			switch {
			case b == 0:
				return 0, errs.Eval("division by zero")
			case a == math.MinInt64 && b == -1:
				return 0, errOverflow
			}

			return a / b, nil
		},
		func(a, b float64) float64 { return a / b },
	})
}

func mul(_ *env.T, args []cell.I) (cell.I, error) {
	return fold(args, 1, operator{
		func(a, b int64) (int64, error) {
			if a == 0 || b == 0 {
				return 0, nil
			}

			c := a * b
			if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
				return 0, errOverflow
			}

			return c, nil
		},
		func(a, b float64) float64 { return a * b },
	})
}

// sub negates a single argument.
func sub(_ *env.T, args []cell.I) (cell.I, error) {
	if len(args) == 1 {
		args = []cell.I{integer.New(0), args[0]}
	}

	return fold(args, 1, operator{
		func(a, b int64) (int64, error) {
			c := a - b
			if (b > 0 && c > a) || (b < 0 && c < a) {
				return 0, errOverflow
			}

			return c, nil
		},
		func(a, b float64) float64 { return a - b },
	})
}

// fold applies op to args from left to right. The result is an integer
// unless one of args is a real or an intermediate result overflows.
func fold(args []cell.I, min int, op operator) (cell.I, error) {
	if err := validate.Fixed(args, min, -1); err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return integer.New(0), nil
	}

	acc, err := toNumber(args[0])
	if err != nil {
		return nil, err
	}

	for _, c := range args[1:] {
		n, err := toNumber(c)
		if err != nil {
			return nil, err
		}

		if acc.real || n.real {
			acc = number{f: op.real(acc.float(), n.float()), real: true}

			continue
		}

		i, err := op.integer(acc.i, n.i)
		if errors.Is(err, errOverflow) {
			acc = number{f: op.real(acc.float(), n.float()), real: true}

			continue
		} else if err != nil {
			return nil, err
		}

		acc.i = i
	}

	if acc.real {
		return float.New(acc.f), nil
	}

	return integer.New(acc.i), nil
}

func (n number) float() float64 {
	if n.real {
		return n.f
	}

	return float64(n.i)
}

func toNumber(c cell.I) (number, error) {
	switch c := c.(type) {
	case *integer.T:
		return number{i: c.Int64()}, nil
	case *float.T:
		return number{f: c.Float64(), real: true}, nil
	}

	return number{}, errs.Eval("%s is not a number", literal.String(c))
}
