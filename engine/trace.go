// SPDX-License-Identifier: MIT
package engine

import (
	"math"
)

// Activation records how strongly one rule fired in a traced pass.
type Activation struct {
	Index    int
	Label    string
	Rule     string
	Strength float64
}

// Fired reports whether the rule contributed to any output.
func (a Activation) Fired() bool { return a.Strength > 0 }

// OutputSet is the aggregated fuzzy set of one output over its universe.
type OutputSet struct {
	Name       string
	Points     []float64
	Membership []float64
}

// Trace is the full record of one inference pass, for explaining a result.
type Trace struct {
	// Inputs holds the crisp values actually fuzzified (after clipping).
	Inputs map[string]float64
	// Degrees holds input → term → membership degree.
	Degrees map[string]map[string]float64
	// Rules lists every rule in registration order.
	Rules []Activation
	// Sets lists the aggregated set of every output in registration order.
	Sets   []OutputSet
	Result Result
}

// Trace runs Compute and keeps every intermediate value. It is slower
// than Compute and intended for diagnostics.
func (e *Engine) Trace(inputs map[string]float64) (*Trace, error) {
	want := make([]bool, len(e.outputs))
	for i := range want {
		want[i] = true
	}
	p, err := e.run(inputs, want)
	if err != nil {
		return nil, err
	}

	t := &Trace{
		Inputs:  make(map[string]float64, len(e.inputs)),
		Degrees: make(map[string]map[string]float64, len(e.inputs)),
		Rules:   make([]Activation, len(e.rules)),
		Sets:    make([]OutputSet, len(e.outputs)),
		Result:  e.resolve(p, want),
	}
	for i, v := range e.inputs {
		t.Inputs[v.Name()] = p.crisp[i]
		d := make(map[string]float64, v.Len())
		for j, name := range v.TermNames() {
			d[name] = p.degrees[i][j]
		}
		t.Degrees[v.Name()] = d
	}
	for i, cr := range e.rules {
		s := p.strengths[i]
		if math.IsNaN(s) {
			s = 0
		}
		t.Rules[i] = Activation{Index: i, Label: cr.src.Label, Rule: cr.src.String(), Strength: s}
	}
	for i, v := range e.outputs {
		t.Sets[i] = OutputSet{
			Name:       v.Name(),
			Points:     append([]float64(nil), e.points[i]...),
			Membership: p.sets[i],
		}
	}

	return t, nil
}

// Fired returns the activations with positive strength, in rule order.
func (t *Trace) Fired() []Activation {
	var out []Activation
	for _, a := range t.Rules {
		if a.Fired() {
			out = append(out, a)
		}
	}

	return out
}
