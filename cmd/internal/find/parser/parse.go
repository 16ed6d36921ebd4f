// Package parser scans find's argument vector into predicate, operator and
// negation tokens plus terminal actions, then builds the predicate
// expression tree honoring operator precedence.
package parser

import (
	"github.com/MaTriXy/just-bash/cmd/internal/find/expr"
	"github.com/MaTriXy/just-bash/cmd/internal/find/types"
)

// Result represents the result of parsing find's arguments, which are
// specified as "[path] [expression]".
type Result struct {
	// Path is the user-supplied search path, verbatim. Defaults to ".".
	Path    string
	Options types.Options
	// Expr is the predicate expression tree. nil matches everything.
	Expr expr.Expr
	// Actions are the terminal actions, in registration order.
	Actions []types.Action
}

// Parse parses find's arguments starting at args[0], returning the result.
func Parse(args []string) (Result, error) {
	r := Result{
		Path:    ".",
		Options: types.NewOptions(),
	}
	tokens, err := r.scan(args)
	if err != nil {
		return r, err
	}
	r.Expr = build(tokens)
	return r, nil
}
