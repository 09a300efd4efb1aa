// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/notlisp/pkg/common/errs"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/env"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/null"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/str"
	"github.com/michaelmacinnis/notlisp/pkg/common/validate"
)

func concat(_ *env.T, args []cell.I) (cell.I, error) {
	var sb strings.Builder

	for _, c := range args {
		s, err := validate.String(c)
		if err != nil {
			return nil, err
		}

		sb.WriteString(s)
	}

	return str.New(sb.String()), nil
}

// join joins its positional arguments with the :sep keyword argument.
func join(_ *env.T, args []cell.I) (cell.I, error) {
	sep := " "

	var parts []string

	err := validate.New(args).Rest(func(v cell.I) error {
		s, err := validate.String(v)
		parts = append(parts, s)

		return err
	}, func(k string, v cell.I) (err error) {
		if k != "sep" {
			return errs.Eval("unknown keyword :%s", k)
		}

		sep, err = validate.String(v)

		return
	})
	if err != nil {
		return nil, err
	}

	return str.New(strings.Join(parts, sep)), nil
}

func match(_ *env.T, args []cell.I) (cell.I, error) {
	var pattern, s string

	err := validate.New(args).
		Required(validate.ToString(&pattern)).
		Required(validate.ToString(&s)).
		Err()
	if err != nil {
		return nil, err
	}

	if err = validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	ok, err := adapted.Match(pattern, s)
	if err != nil {
		return nil, errs.Eval("bad pattern %q: %w", pattern, err)
	}

	if !ok {
		return null.Nil, nil
	}

	return args[1], nil
}
