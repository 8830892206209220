// SPDX-License-Identifier: MIT
// Package variable defines linguistic variables (a named universe with a
// set of named terms) and the fuzzification stage that maps a crisp
// value onto the degrees of those terms.
//
// A Variable is built once and is immutable afterwards: its terms keep
// declaration order (the stable integer index used by the engine), and
// every term is pre-sampled on the universe grid so implication never
// re-evaluates membership functions while computing.
package variable

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mamdani/defuzz"
	"github.com/katalvlaran/mamdani/membership"
	"github.com/katalvlaran/mamdani/universe"
)

var (
	// ErrEmptyName indicates an empty variable or term name.
	ErrEmptyName = errors.New("variable: empty name")

	// ErrNoTerms indicates a variable declared without terms.
	ErrNoTerms = errors.New("variable: no terms")

	// ErrDuplicateTerm indicates two terms sharing a name.
	ErrDuplicateTerm = errors.New("variable: duplicate term")

	// ErrNilFunc indicates a term without a membership function.
	ErrNilFunc = errors.New("variable: nil membership function")

	// ErrMethodOnInput indicates a defuzzification method set on an input.
	ErrMethodOnInput = errors.New("variable: defuzzification method on input variable")

	// ErrBadKind indicates a Kind other than Input or Output.
	ErrBadKind = errors.New("variable: unknown kind")
)

// Kind tells whether a variable is consumed (antecedent) or produced
// (consequent) by the rule base.
type Kind int

const (
	// Input is an antecedent variable.
	Input Kind = iota
	// Output is a consequent variable.
	Output
)

// String returns "input" or "output".
func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Term is one linguistic term of a variable.
type Term struct {
	Name string
	Func membership.Func
}

// Option customises a Variable at construction.
type Option func(*options)

type options struct {
	method    defuzz.Method
	methodSet bool
}

// WithMethod selects the defuzzification method of an output variable.
// Panics on an undeclared method value.
func WithMethod(m defuzz.Method) Option {
	if !m.Valid() {
		panic(fmt.Sprintf("variable: WithMethod(%d): unknown method", int(m)))
	}

	return func(o *options) { o.method, o.methodSet = m, true }
}

// Variable is an immutable linguistic variable.
type Variable struct {
	name     string
	kind     Kind
	universe universe.Universe
	terms    []Term
	index    map[string]int
	samples  [][]float64
	method   defuzz.Method
}

// New validates and builds a variable.
//
// Errors:
//   - ErrEmptyName for an empty variable or term name;
//   - ErrBadKind for an undeclared Kind;
//   - ErrNoTerms when terms is empty;
//   - ErrDuplicateTerm when two terms share a name;
//   - ErrNilFunc for a term without a function;
//   - membership.ErrBreakpointOrder or membership.ErrNonFinite for a
//     shape whose breakpoints are invalid (e.g. a struct literal);
//   - ErrMethodOnInput when WithMethod is applied to an Input.
//
// Complexity: O(T·N) for T terms on an N-point universe (pre-sampling).
func New(name string, kind Kind, u universe.Universe, terms []Term, opts ...Option) (*Variable, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if kind != Input && kind != Output {
		return nil, fmt.Errorf("%s: %w", name, ErrBadKind)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoTerms)
	}
	if u.Len() < 2 {
		return nil, fmt.Errorf("%s: %w", name, universe.ErrInvalidUniverse)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.methodSet && kind == Input {
		return nil, fmt.Errorf("%s: %w", name, ErrMethodOnInput)
	}

	v := &Variable{
		name:     name,
		kind:     kind,
		universe: u,
		terms:    make([]Term, len(terms)),
		index:    make(map[string]int, len(terms)),
		samples:  make([][]float64, len(terms)),
		method:   o.method,
	}
	points := u.Points()
	for i, t := range terms {
		if t.Name == "" {
			return nil, fmt.Errorf("%s: term %d: %w", name, i, ErrEmptyName)
		}
		if t.Func == nil {
			return nil, fmt.Errorf("%s.%s: %w", name, t.Name, ErrNilFunc)
		}
		if _, dup := v.index[t.Name]; dup {
			return nil, fmt.Errorf("%s.%s: %w", name, t.Name, ErrDuplicateTerm)
		}
		if err := membership.Validate(t.Func); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, t.Name, err)
		}
		v.terms[i] = t
		v.index[t.Name] = i
		v.samples[i] = membership.Sample(t.Func, points)
	}

	return v, nil
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// Kind returns Input or Output.
func (v *Variable) Kind() Kind { return v.kind }

// Universe returns the variable's universe.
func (v *Variable) Universe() universe.Universe { return v.universe }

// Method returns the defuzzification method (Centroid unless set).
func (v *Variable) Method() defuzz.Method { return v.method }

// Len returns the number of terms.
func (v *Variable) Len() int { return len(v.terms) }

// Terms returns a copy of the terms in declaration order.
func (v *Variable) Terms() []Term {
	out := make([]Term, len(v.terms))
	copy(out, v.terms)

	return out
}

// TermNames returns the term names in declaration order.
func (v *Variable) TermNames() []string {
	out := make([]string, len(v.terms))
	for i, t := range v.terms {
		out[i] = t.Name
	}

	return out
}

// TermIndex resolves a term name to its stable index.
func (v *Variable) TermIndex(name string) (int, bool) {
	i, ok := v.index[name]

	return i, ok
}

// Samples returns term i's membership degrees on the universe grid. The
// slice is shared and must not be modified.
func (v *Variable) Samples(i int) []float64 { return v.samples[i] }

// String renders "name(kind)[min:max:step]".
func (v *Variable) String() string {
	return fmt.Sprintf("%s(%s)%s", v.name, v.kind, v.universe)
}
