// SPDX-License-Identifier: MIT
package engine

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/mamdani/rule"
	"github.com/katalvlaran/mamdani/variable"
)

// Config is the complete, immutable description of a rule base.
type Config struct {
	Inputs  []*variable.Variable
	Outputs []*variable.Variable
	Rules   []rule.Rule
}

// ref locates a variable: kind plus position in Inputs or Outputs.
type ref struct {
	kind variable.Kind
	idx  int
}

// opcode tags a compiled antecedent node.
type opcode uint8

const (
	opTerm opcode = iota
	opAnd
	opOr
	opNot
)

// node is an index-addressed antecedent node.
type node struct {
	op          opcode
	input, term int
	l, r        *node
}

// target is a resolved consequent.
type target struct {
	output, term int
	weight       float64
}

// compiledRule is a rule with every name resolved.
type compiledRule struct {
	src     rule.Rule
	ante    *node
	targets []target
}

// Engine is an immutable, validated Mamdani rule base.
type Engine struct {
	inputs  []*variable.Variable
	outputs []*variable.Variable
	byName  map[string]ref
	rules   []compiledRule
	points  [][]float64
	lints   []Lint
	opts    options
}

// New validates cfg and compiles it.
//
// Implementation:
//   - Stage 1: register inputs then outputs; reject nil, wrong kind and
//     duplicate names.
//   - Stage 2: compile every rule; antecedent leaves must name an input
//     term, consequents an output term with weight in (0,1].
//   - Stage 3: precompute output grids, run lints and log them at Warn.
//
// Errors wrap ErrConfiguration together with the specific sentinel and
// the position of the offending rule or variable.
//
// Complexity: O(V·T·N + R·S) for V variables of T terms on N-point
// universes and R rules of size S.
func New(cfg Config, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(cfg.Inputs) == 0 || len(cfg.Outputs) == 0 {
		return nil, configErr(ErrNoVariables, "%d inputs, %d outputs", len(cfg.Inputs), len(cfg.Outputs))
	}
	if len(cfg.Rules) == 0 {
		return nil, configErr(ErrNoRules, "empty rule base")
	}

	e := &Engine{
		inputs:  append([]*variable.Variable(nil), cfg.Inputs...),
		outputs: append([]*variable.Variable(nil), cfg.Outputs...),
		byName:  make(map[string]ref, len(cfg.Inputs)+len(cfg.Outputs)),
		rules:   make([]compiledRule, 0, len(cfg.Rules)),
		opts:    o,
	}
	if err := e.register(e.inputs, variable.Input); err != nil {
		return nil, err
	}
	if err := e.register(e.outputs, variable.Output); err != nil {
		return nil, err
	}

	for i, r := range cfg.Rules {
		cr, err := e.compileRule(r)
		if err != nil {
			return nil, fmt.Errorf("rule %d%s: %w", i, labelSuffix(r.Label), err)
		}
		e.rules = append(e.rules, cr)
	}

	e.points = make([][]float64, len(e.outputs))
	for i, v := range e.outputs {
		e.points[i] = v.Universe().Points()
	}

	e.lints = lint(e)
	for _, l := range e.lints {
		o.logger.Warn("rule base lint", slog.String("kind", l.Kind.String()), slog.String("subject", l.Subject), slog.String("detail", l.Detail))
	}
	o.logger.Debug("engine built", slog.Int("inputs", len(e.inputs)), slog.Int("outputs", len(e.outputs)), slog.Int("rules", len(e.rules)))

	return e, nil
}

func (e *Engine) register(vars []*variable.Variable, kind variable.Kind) error {
	for i, v := range vars {
		if v == nil {
			return configErr(ErrNilVariable, "%s %d", kind, i)
		}
		if v.Kind() != kind {
			return configErr(ErrWrongKind, "%s declared as %s but registered as %s", v.Name(), v.Kind(), kind)
		}
		if _, dup := e.byName[v.Name()]; dup {
			return configErr(ErrDuplicateVariable, "%s", v.Name())
		}
		e.byName[v.Name()] = ref{kind: kind, idx: i}
	}

	return nil
}

func (e *Engine) compileRule(r rule.Rule) (compiledRule, error) {
	if r.Antecedent == nil {
		return compiledRule{}, configErr(ErrNilAntecedent, "")
	}
	if len(r.Consequents) == 0 {
		return compiledRule{}, configErr(ErrNoConsequents, "")
	}
	ante, err := e.compileExpr(r.Antecedent)
	if err != nil {
		return compiledRule{}, err
	}

	targets := make([]target, len(r.Consequents))
	for i, c := range r.Consequents {
		rf, ok := e.byName[c.Output]
		if !ok {
			return compiledRule{}, configErr(ErrUnknownVariable, "consequent %s", c.Output)
		}
		if rf.kind != variable.Output {
			return compiledRule{}, configErr(ErrWrongKind, "consequent %s is an input", c.Output)
		}
		term, ok := e.outputs[rf.idx].TermIndex(c.Term)
		if !ok {
			return compiledRule{}, configErr(ErrUnknownTerm, "consequent %s.%s", c.Output, c.Term)
		}
		if math.IsNaN(c.Weight) || c.Weight <= 0 || c.Weight > 1 {
			return compiledRule{}, configErr(ErrBadWeight, "consequent %s.%s weight %g", c.Output, c.Term, c.Weight)
		}
		targets[i] = target{output: rf.idx, term: term, weight: c.Weight}
	}

	return compiledRule{src: r, ante: ante, targets: targets}, nil
}

func (e *Engine) compileExpr(x rule.Expr) (*node, error) {
	switch n := x.(type) {
	case rule.Term:
		rf, ok := e.byName[n.Variable]
		if !ok {
			return nil, configErr(ErrUnknownVariable, "antecedent %s", n.Variable)
		}
		if rf.kind != variable.Input {
			return nil, configErr(ErrWrongKind, "antecedent %s is an output", n.Variable)
		}
		term, ok := e.inputs[rf.idx].TermIndex(n.Term)
		if !ok {
			return nil, configErr(ErrUnknownTerm, "antecedent %s", n)
		}

		return &node{op: opTerm, input: rf.idx, term: term}, nil
	case rule.And:
		return e.compileBinary(opAnd, n.L, n.R)
	case rule.Or:
		return e.compileBinary(opOr, n.L, n.R)
	case rule.Not:
		if n.X == nil {
			return nil, configErr(ErrNilAntecedent, "not with nil operand")
		}
		inner, err := e.compileExpr(n.X)
		if err != nil {
			return nil, err
		}

		return &node{op: opNot, l: inner}, nil
	default:
		return nil, configErr(ErrNilAntecedent, "unsupported node %T", x)
	}
}

func (e *Engine) compileBinary(op opcode, l, r rule.Expr) (*node, error) {
	if l == nil || r == nil {
		return nil, configErr(ErrNilAntecedent, "operator with nil operand")
	}
	ln, err := e.compileExpr(l)
	if err != nil {
		return nil, err
	}
	rn, err := e.compileExpr(r)
	if err != nil {
		return nil, err
	}

	return &node{op: op, l: ln, r: rn}, nil
}

// configErr wraps both ErrConfiguration and the specific sentinel.
func configErr(kind error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%w: %w", ErrConfiguration, kind)
	}

	return fmt.Errorf("%w: %w: %s", ErrConfiguration, kind, fmt.Sprintf(format, args...))
}

func labelSuffix(label string) string {
	if label == "" {
		return ""
	}

	return " (" + label + ")"
}

// Inputs returns the input variables in registration order.
func (e *Engine) Inputs() []*variable.Variable {
	return append([]*variable.Variable(nil), e.inputs...)
}

// Outputs returns the output variables in registration order.
func (e *Engine) Outputs() []*variable.Variable {
	return append([]*variable.Variable(nil), e.outputs...)
}

// Rules returns the source rules in registration order.
func (e *Engine) Rules() []rule.Rule {
	out := make([]rule.Rule, len(e.rules))
	for i, r := range e.rules {
		out[i] = r.src
	}

	return out
}

// Lints returns the findings of the build-time lint pass.
func (e *Engine) Lints() []Lint {
	return append([]Lint(nil), e.lints...)
}
