package internal

import (
	"errors"
	"fmt"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var ErrExpression = errors.New("expression is not a list of integers")

// EvalInts evaluates a Starlark expression that produces a sequence of
// integers, such as "range(5, 10)" or "[9, 8, 7, 6, 5]".
// The defines are predeclared as integer constants.
func EvalInts(expr string, defines map[string]int64) (values []int64, err error) {
	if strings.TrimSpace(expr) == "" {
		err = ErrExpression
		return
	}

	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range defines {
		pred[key] = starlark.MakeInt64(value)
	}

	prog := "rc = list(" + expr + ")\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrExpression, err)
		return
	}

	list, ok := dict["rc"].(*starlark.List)
	if !ok {
		err = fmt.Errorf("%w: %q", ErrExpression, expr)
		return
	}

	for n := range list.Len() {
		st_int, ok := list.Index(n).(starlark.Int)
		if !ok {
			err = fmt.Errorf("%w: %q item %d", ErrExpression, expr, n)
			return
		}
		value, ok := st_int.Int64()
		if !ok {
			err = fmt.Errorf("%w: %q item %d", ErrExpression, expr, n)
			return
		}
		values = append(values, value)
	}

	return
}
