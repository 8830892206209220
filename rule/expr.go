// SPDX-License-Identifier: MIT
// Package rule defines the antecedent expression tree and the rules that
// pair an antecedent with weighted consequents.
//
// Expressions form a tagged union (Term, And, Or, Not). Each node owns its
// children exclusively, so an expression is a tree and cannot contain
// cycles. Evaluation uses the standard Zadeh operators:
//
//	And(l, r) = min(l, r)   (t-norm)
//	Or(l, r)  = max(l, r)   (t-conorm)
//	Not(e)    = 1 − e
//
// Rules reference variables and terms by name; the engine resolves those
// names to indices once, when it is built.
package rule

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"
)

// ErrUnknownTerm indicates a (variable, term) leaf the lookup cannot resolve.
var ErrUnknownTerm = errors.New("rule: unknown term")

// Expr is a node of an antecedent tree. The set of node types is closed.
type Expr interface {
	// String renders the node in the syntax accepted by Parse.
	String() string
	isExpr()
}

// Term is the leaf "Variable is Term".
type Term struct {
	Variable string
	Term     string
}

// And is the fuzzy conjunction of L and R.
type And struct{ L, R Expr }

// Or is the fuzzy disjunction of L and R.
type Or struct{ L, R Expr }

// Not is the fuzzy complement of X.
type Not struct{ X Expr }

func (Term) isExpr() {}
func (And) isExpr()  {}
func (Or) isExpr()   {}
func (Not) isExpr()  {}

// String renders "variable.term", or variable["term"] when the term name
// is not an identifier (e.g. "very-low" or "2nd"). Both forms parse back.
func (t Term) String() string {
	if IsIdentifier(t.Term) {
		return t.Variable + "." + t.Term
	}

	return t.Variable + "[" + strconv.Quote(t.Term) + "]"
}

func (a And) String() string  { return "(" + a.L.String() + " and " + a.R.String() + ")" }
func (o Or) String() string   { return "(" + o.L.String() + " or " + o.R.String() + ")" }
func (n Not) String() string  { return "not " + n.X.String() }

// IsIdentifier reports whether name is a letter or underscore followed by
// letters, digits and underscores. Variable names in rule text must be
// identifiers and must not be operator keywords such as "in" or "not".
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return true
}

// Is builds the leaf "variable is term".
func Is(variable, term string) Term { return Term{Variable: variable, Term: term} }

// AndOf left-folds xs with And. It panics when xs is empty.
func AndOf(xs ...Expr) Expr {
	if len(xs) == 0 {
		panic("rule: AndOf()")
	}
	out := xs[0]
	for _, x := range xs[1:] {
		out = And{L: out, R: x}
	}

	return out
}

// OrOf left-folds xs with Or. It panics when xs is empty.
func OrOf(xs ...Expr) Expr {
	if len(xs) == 0 {
		panic("rule: OrOf()")
	}
	out := xs[0]
	for _, x := range xs[1:] {
		out = Or{L: out, R: x}
	}

	return out
}

// NotOf wraps x in Not.
func NotOf(x Expr) Expr { return Not{X: x} }

// Walk calls fn for every leaf of e, left to right.
func Walk(e Expr, fn func(Term)) {
	switch n := e.(type) {
	case Term:
		fn(n)
	case And:
		Walk(n.L, fn)
		Walk(n.R, fn)
	case Or:
		Walk(n.L, fn)
		Walk(n.R, fn)
	case Not:
		Walk(n.X, fn)
	}
}

// Lookup returns the current degree of a (variable, term) leaf.
type Lookup func(variable, term string) (float64, bool)

// Evaluate folds e into a firing strength in [0,1] by name-based lookup.
// The engine evaluates compiled, index-addressed trees instead; this is
// the reference form used for diagnostics and tests.
func Evaluate(e Expr, lookup Lookup) (float64, error) {
	switch n := e.(type) {
	case Term:
		d, ok := lookup(n.Variable, n.Term)
		if !ok {
			return 0, fmt.Errorf("%s: %w", n, ErrUnknownTerm)
		}

		return d, nil
	case And:
		l, r, err := evalPair(n.L, n.R, lookup)
		if err != nil {
			return 0, err
		}

		return math.Min(l, r), nil
	case Or:
		l, r, err := evalPair(n.L, n.R, lookup)
		if err != nil {
			return 0, err
		}

		return math.Max(l, r), nil
	case Not:
		x, err := Evaluate(n.X, lookup)
		if err != nil {
			return 0, err
		}

		return 1 - x, nil
	default:
		return 0, fmt.Errorf("rule: unsupported node %T", e)
	}
}

func evalPair(l, r Expr, lookup Lookup) (float64, float64, error) {
	lv, err := Evaluate(l, lookup)
	if err != nil {
		return 0, 0, err
	}
	rv, err := Evaluate(r, lookup)
	if err != nil {
		return 0, 0, err
	}

	return lv, rv, nil
}
