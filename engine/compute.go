// SPDX-License-Identifier: MIT
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/mamdani/defuzz"
	"github.com/katalvlaran/mamdani/variable"
)

// NOTE ON NUMERIC POLICY
// ----------------------
// Inputs must be finite; they are clipped to the universe only under
// WithClipToBounds and otherwise fuzzified as given, so a value outside
// every term fires nothing. Rule strengths and clipped levels stay in
// [0,1] because every operator (min, max, 1−x) is closed on it. An output
// whose aggregated set has zero area is reported through ErrUndefinedOutput
// rather than as NaN.

// pass holds the per-call buffers of one inference pass. Nothing in it is
// shared with the Engine or with other calls.
type pass struct {
	crisp     []float64   // per input, after optional clipping
	degrees   [][]float64 // per input, per term
	strengths []float64   // per rule; NaN for rules skipped in this pass
	sets      [][]float64 // per output aggregated set; nil if not requested
}

// Compute runs one full inference pass for every output.
//
// Errors (the call is aborted):
//   - ErrUnknownVariable: a key of inputs is not a registered input;
//   - ErrMissingInput: a registered input has no value;
//   - ErrInvalidInput: a value is NaN or ±Inf.
//
// Outputs with no conclusion carry an error wrapping ErrUndefinedOutput
// in the Result; see Result.Value.
//
// Complexity: O(I·T + R·S + O·R·N) per call.
func (e *Engine) Compute(inputs map[string]float64) (Result, error) {
	want := make([]bool, len(e.outputs))
	for i := range want {
		want[i] = true
	}

	return e.compute(inputs, want)
}

// ComputeOutputs is Compute restricted to the named outputs. Rules that
// target none of them are not evaluated. The Result lists the requested
// outputs in registration order.
func (e *Engine) ComputeOutputs(inputs map[string]float64, names ...string) (Result, error) {
	want, err := e.selectOutputs(names)
	if err != nil {
		return Result{}, err
	}

	return e.compute(inputs, want)
}

func (e *Engine) compute(inputs map[string]float64, want []bool) (Result, error) {
	p, err := e.run(inputs, want)
	if err != nil {
		return Result{}, err
	}

	return e.resolve(p, want), nil
}

func (e *Engine) selectOutputs(names []string) ([]bool, error) {
	want := make([]bool, len(e.outputs))
	for _, name := range names {
		rf, ok := e.byName[name]
		if !ok || rf.kind != variable.Output {
			return nil, fmt.Errorf("%w: output %q", ErrUnknownVariable, name)
		}
		want[rf.idx] = true
	}

	return want, nil
}

// run executes fuzzification, rule evaluation and aggregation.
func (e *Engine) run(inputs map[string]float64, want []bool) (*pass, error) {
	crisp, err := e.readInputs(inputs)
	if err != nil {
		return nil, err
	}

	p := &pass{
		crisp:     crisp,
		degrees:   make([][]float64, len(e.inputs)),
		strengths: make([]float64, len(e.rules)),
		sets:      make([][]float64, len(e.outputs)),
	}
	for i, v := range e.inputs {
		p.degrees[i] = make([]float64, v.Len())
		v.FuzzifyInto(crisp[i], p.degrees[i])
	}
	for i, v := range e.outputs {
		if want[i] {
			p.sets[i] = make([]float64, v.Universe().Len())
		}
	}

	for i := range e.rules {
		r := &e.rules[i]
		if !targetsAny(r, want) {
			p.strengths[i] = math.NaN()
			continue
		}
		s := strength(r.ante, p.degrees)
		p.strengths[i] = s
		if s <= 0 {
			continue
		}
		for _, t := range r.targets {
			if !want[t.output] {
				continue
			}
			implyInto(p.sets[t.output], e.outputs[t.output].Samples(t.term), s*t.weight)
		}
	}

	return p, nil
}

// readInputs validates the caller's map and returns values in input order.
func (e *Engine) readInputs(inputs map[string]float64) ([]float64, error) {
	var unknown []string
	for name := range inputs {
		if rf, ok := e.byName[name]; !ok || rf.kind != variable.Input {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)

		return nil, fmt.Errorf("%w: input %q", ErrUnknownVariable, unknown[0])
	}

	crisp := make([]float64, len(e.inputs))
	for i, v := range e.inputs {
		x, ok := inputs[v.Name()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, v.Name())
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: %s = %v", ErrInvalidInput, v.Name(), x)
		}
		if e.opts.clip {
			x = v.Universe().Clip(x)
		}
		crisp[i] = x
	}

	return crisp, nil
}

// strength folds a compiled antecedent over the current degrees.
func strength(n *node, degrees [][]float64) float64 {
	switch n.op {
	case opTerm:
		return degrees[n.input][n.term]
	case opAnd:
		return math.Min(strength(n.l, degrees), strength(n.r, degrees))
	case opOr:
		return math.Max(strength(n.l, degrees), strength(n.r, degrees))
	default:
		return 1 - strength(n.l, degrees)
	}
}

// implyInto clips the term samples at activation (min-implication) and
// max-aggregates the result into set.
func implyInto(set, samples []float64, activation float64) {
	for i, m := range samples {
		v := m
		if activation < v {
			v = activation
		}
		if v > set[i] {
			set[i] = v
		}
	}
}

func targetsAny(r *compiledRule, want []bool) bool {
	for _, t := range r.targets {
		if want[t.output] {
			return true
		}
	}

	return false
}

// resolve defuzzifies every requested output of a finished pass.
func (e *Engine) resolve(p *pass, want []bool) Result {
	res := Result{Outputs: make([]Output, 0, len(e.outputs))}
	for i, v := range e.outputs {
		if !want[i] {
			continue
		}
		out := Output{Name: v.Name()}
		value, err := defuzz.Defuzzify(e.points[i], p.sets[i], v.Method())
		switch {
		case err == nil:
			out.Value = value
		case errors.Is(err, defuzz.ErrEmptySet), errors.Is(err, defuzz.ErrZeroArea):
			out.Err = fmt.Errorf("%w: %s: %w", ErrUndefinedOutput, v.Name(), err)
			e.opts.logger.Debug("output undefined", slog.String("output", v.Name()), slog.String("method", v.Method().String()))
		default:
			out.Err = fmt.Errorf("%s: %w", v.Name(), err)
		}
		res.Outputs = append(res.Outputs, out)
	}

	return res
}
