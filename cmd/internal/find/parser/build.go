package parser

import (
	"github.com/MaTriXy/just-bash/cmd/internal/find/expr"
)

// build folds the token stream into an expression tree. Precedence, from
// highest to lowest, is: negation, implicit/explicit conjunction,
// disjunction. An empty token stream yields a nil expression, which matches
// everything.
func build(tokens []token) expr.Expr {
	// Fold negation markers into the predicate that follows them. A
	// marker whose following token is an operator, or a trailing marker
	// with no following predicate, is dropped.
	var folded []token
	negations := 0
	for _, t := range tokens {
		switch t.kind {
		case tokNot:
			negations++
		case tokPredicate:
			if negations%2 == 1 {
				t.pred = &expr.Not{Inner: t.pred}
			}
			negations = 0
			folded = append(folded, t)
		default:
			negations = 0
			folded = append(folded, t)
		}
	}

	// Partition into disjunction groups, folding each group's predicates
	// left-to-right into a conjunction chain. Explicit conjunction markers
	// are semantically identical to adjacency, so they are elided.
	var groups []expr.Expr
	var group expr.Expr
	endGroup := func() {
		if group != nil {
			groups = append(groups, group)
			group = nil
		}
	}
	for _, t := range folded {
		switch t.kind {
		case tokPredicate:
			if group == nil {
				group = t.pred
			} else {
				group = &expr.And{Left: group, Right: t.pred}
			}
		case tokOr:
			endGroup()
		}
	}
	endGroup()

	// Fold the per-group results left-to-right into a disjunction chain.
	var e expr.Expr
	for _, g := range groups {
		if e == nil {
			e = g
		} else {
			e = &expr.Or{Left: e, Right: g}
		}
	}
	return e
}
