package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/MaTriXy/just-bash/cmd/internal/find/expr"
	"github.com/MaTriXy/just-bash/cmd/internal/find/types"
)

type tokenKind int

const (
	tokPredicate tokenKind = iota
	tokNot
	tokAnd
	tokOr
)

type token struct {
	kind tokenKind
	pred expr.Expr
}

var sizeUnits = map[byte]expr.Unit{
	'c': expr.UnitBytes,
	'k': expr.UnitKB,
	'M': expr.UnitMB,
	'G': expr.UnitGB,
	'b': expr.UnitBlocks,
}

// scan walks the argument vector, producing the expression token stream and
// recording the search path, depth options and actions along the way.
//
// A bare argument before any expression token or action is part of path
// discovery; one encountered after tokens exist terminates scanning.
func (r *Result) scan(args []string) ([]token, error) {
	var tokens []token
	pathSet := false

	next := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%v: requires additional arguments", args[i])
		}
		return args[i+1], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-name", "-iname", "-path", "-ipath":
			pattern, err := next(i)
			if err != nil {
				return nil, err
			}
			i++
			ignoreCase := arg == "-iname" || arg == "-ipath"
			var p expr.Expr
			if arg == "-name" || arg == "-iname" {
				p, err = expr.NewName(pattern, ignoreCase)
			} else {
				p, err = expr.NewPath(pattern, ignoreCase)
			}
			if err != nil {
				return nil, fmt.Errorf("%v: invalid pattern %q: %v", arg, pattern, err)
			}
			tokens = append(tokens, token{kind: tokPredicate, pred: p})
		case "-type":
			value, err := next(i)
			if err != nil {
				return nil, err
			}
			i++
			var kind expr.FileType
			switch value {
			case "f":
				kind = expr.TypeFile
			case "d":
				kind = expr.TypeDir
			default:
				return nil, fmt.Errorf("-type: %v: unknown file type", value)
			}
			tokens = append(tokens, token{kind: tokPredicate, pred: &expr.Type{Kind: kind}})
		case "-empty":
			tokens = append(tokens, token{kind: tokPredicate, pred: &expr.Empty{}})
		case "-mtime":
			body, err := next(i)
			if err != nil {
				return nil, err
			}
			i++
			cmp, digits := splitComparison(body)
			n, err := strconv.ParseInt(digits, 10, 64)
			if err != nil {
				// A malformed numeric body drops the predicate silently
				// rather than raising an error. This leniency is kept for
				// compatibility; see DESIGN.md.
				continue
			}
			tokens = append(tokens, token{kind: tokPredicate, pred: &expr.Mtime{Days: n, Compare: cmp}})
		case "-size":
			body, err := next(i)
			if err != nil {
				return nil, err
			}
			i++
			cmp, rest := splitComparison(body)
			unit := expr.UnitBlocks
			if len(rest) > 0 {
				if u, ok := sizeUnits[rest[len(rest)-1]]; ok {
					unit = u
					rest = rest[:len(rest)-1]
				}
			}
			n, err := strconv.ParseInt(rest, 10, 64)
			if err != nil {
				// Same preserved leniency as -mtime.
				continue
			}
			tokens = append(tokens, token{kind: tokPredicate, pred: &expr.Size{Value: n, Unit: unit, Compare: cmp}})
		case "-newer":
			ref, err := next(i)
			if err != nil {
				return nil, err
			}
			i++
			tokens = append(tokens, token{kind: tokPredicate, pred: &expr.Newer{Reference: ref}})
		case "-newermt":
			value, err := next(i)
			if err != nil {
				return nil, err
			}
			i++
			t, err := dateparse.ParseAny(value)
			if err != nil {
				return nil, fmt.Errorf("-newermt: %v: invalid timestamp", value)
			}
			tokens = append(tokens, token{kind: tokPredicate, pred: &expr.NewerThan{Time: t}})
		case "-not", "!":
			tokens = append(tokens, token{kind: tokNot})
		case "-a", "-and":
			tokens = append(tokens, token{kind: tokAnd})
		case "-o", "-or":
			tokens = append(tokens, token{kind: tokOr})
		case "-maxdepth", "-mindepth":
			value, err := next(i)
			if err != nil {
				return nil, err
			}
			i++
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%v: %v: invalid depth", arg, value)
			}
			if arg == "-maxdepth" {
				r.Options.Maxdepth = n
			} else {
				r.Options.Mindepth = n
			}
		case "-print":
			r.Actions = append(r.Actions, &types.PrintAction{})
		case "-print0":
			r.Actions = append(r.Actions, &types.PrintAction{Null: true})
		case "-delete":
			r.Actions = append(r.Actions, &types.DeleteAction{})
		case "-exec":
			template, batch, rest, err := scanExecTemplate(args[i+1:])
			if err != nil {
				return nil, err
			}
			i = len(args) - len(rest) - 1
			r.Actions = append(r.Actions, &types.ExecAction{Template: template, Batch: batch})
		case "-help", "-h":
			r.Options.Help = true
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("%v: unknown predicate", arg)
			}
			if len(tokens) > 0 || len(r.Actions) > 0 {
				// A bare argument after the expression has begun
				// terminates scanning.
				return tokens, nil
			}
			if !pathSet {
				r.Path = arg
				pathSet = true
			}
		}
	}
	return tokens, nil
}

// scanExecTemplate greedily consumes the command template following -exec,
// up to a literal ";" or "+" terminator. It returns the template, whether
// the terminator selected batch mode, and the unconsumed arguments.
func scanExecTemplate(args []string) ([]string, bool, []string, error) {
	for i, arg := range args {
		if arg == ";" || arg == "+" {
			return args[:i], arg == "+", args[i+1:], nil
		}
	}
	return nil, false, nil, fmt.Errorf(`-exec: no terminating ";" or "+"`)
}

// splitComparison parses an optional leading "+" or "-" sign into a
// comparison mode, returning the mode and the numeric body.
func splitComparison(s string) (expr.Comparison, string) {
	if len(s) > 0 {
		switch s[0] {
		case '+':
			return expr.CompareGreater, s[1:]
		case '-':
			return expr.CompareLess, s[1:]
		}
	}
	return expr.CompareExact, s
}
