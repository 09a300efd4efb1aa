// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/notlisp/pkg/common/errs"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/env"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/integer"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/list"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/str"
	"github.com/michaelmacinnis/notlisp/pkg/common/validate"
)

func length(_ *env.T, args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	switch c := args[0].(type) {
	case *list.T:
		return integer.Int(c.Len()), nil
	case *str.T:
		return integer.Int(len(c.String())), nil
	}

	return nil, errs.Eval("%s has no length", literal.String(args[0]))
}

func makeList(_ *env.T, args []cell.I) (cell.I, error) {
	return list.New(args...), nil
}
