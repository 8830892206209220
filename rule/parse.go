// SPDX-License-Identifier: MIT
package rule

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

// ErrSyntax indicates an antecedent source that is not a valid rule
// expression.
var ErrSyntax = errors.New("rule: invalid antecedent syntax")

// Parse reads a textual antecedent.
//
// Grammar (precedence low → high):
//
//	expr   := expr ("or" | "||") expr
//	        | expr ("and" | "&&") expr
//	        | ("not" | "!") expr
//	        | "(" expr ")"
//	        | variable "." term
//	        | variable "[" quoted-term "]"
//
// Example:
//
//	savings.high and not disposable_income.very_low
//	savings.medium and (credit_score.good or credit_score.excellent)
//
// Tokenising and precedence are delegated to the expr-lang parser; its
// AST is lowered into Expr and anything outside the grammar (literals,
// calls, arithmetic, indexing) is rejected with ErrSyntax.
func Parse(src string) (Expr, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return lower(tree.Node)
}

// MustParse is Parse for fixtures; it panics on error.
func MustParse(src string) Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}

	return e
}

func lower(n ast.Node) (Expr, error) {
	switch node := n.(type) {
	case *ast.BinaryNode:
		l, err := lower(node.Left)
		if err != nil {
			return nil, err
		}
		r, err := lower(node.Right)
		if err != nil {
			return nil, err
		}
		switch node.Operator {
		case "and", "&&":
			return And{L: l, R: r}, nil
		case "or", "||":
			return Or{L: l, R: r}, nil
		}

		return nil, fmt.Errorf("%w: operator %q", ErrSyntax, node.Operator)
	case *ast.UnaryNode:
		if node.Operator != "not" && node.Operator != "!" {
			return nil, fmt.Errorf("%w: operator %q", ErrSyntax, node.Operator)
		}
		x, err := lower(node.Node)
		if err != nil {
			return nil, err
		}

		return Not{X: x}, nil
	case *ast.ChainNode:
		return lower(node.Node)
	case *ast.MemberNode:
		return lowerTerm(node)
	default:
		return nil, fmt.Errorf("%w: unexpected %T, want variable.term", ErrSyntax, n)
	}
}

// lowerTerm accepts identifier.identifier and identifier["any term"].
func lowerTerm(m *ast.MemberNode) (Expr, error) {
	if m.Optional {
		return nil, fmt.Errorf("%w: unsupported member access", ErrSyntax)
	}
	v, ok := m.Node.(*ast.IdentifierNode)
	if !ok {
		return nil, fmt.Errorf("%w: want variable.term, got nested access", ErrSyntax)
	}
	p, ok := m.Property.(*ast.StringNode)
	if !ok || p.Value == "" {
		return nil, fmt.Errorf("%w: want variable.term", ErrSyntax)
	}

	return Term{Variable: v.Value, Term: p.Value}, nil
}
