// SPDX-License-Identifier: MIT
package engine

// Simulation is the caller-owned state of a sequence of computations: a
// set of crisp inputs and, after Compute, the latest outputs. The Engine
// itself keeps no state between calls. A Simulation is not safe for
// concurrent use; create one per goroutine.
type Simulation struct {
	engine   *Engine
	inputs   map[string]float64
	result   Result
	computed bool
}

// NewSimulation returns an empty simulation bound to e.
func NewSimulation(e *Engine) *Simulation {
	return &Simulation{engine: e, inputs: make(map[string]float64)}
}

// SetInput stores the crisp value of one input variable.
func (s *Simulation) SetInput(name string, value float64) {
	s.inputs[name] = value
}

// SetInputs stores several inputs at once.
func (s *Simulation) SetInputs(values map[string]float64) {
	for k, v := range values {
		s.inputs[k] = v
	}
}

// Inputs returns a copy of the current inputs.
func (s *Simulation) Inputs() map[string]float64 {
	out := make(map[string]float64, len(s.inputs))
	for k, v := range s.inputs {
		out[k] = v
	}

	return out
}

// Compute runs the engine on the current inputs and replaces the stored
// outputs. On error the previous outputs are discarded as well, so a
// failed call never leaves stale values readable.
func (s *Simulation) Compute() error {
	res, err := s.engine.Compute(s.inputs)
	if err != nil {
		s.result, s.computed = Result{}, false

		return err
	}
	s.result, s.computed = res, true

	return nil
}

// Output returns the crisp value of an output from the last Compute.
func (s *Simulation) Output(name string) (float64, error) {
	if !s.computed {
		return 0, ErrNotComputed
	}

	return s.result.Value(name)
}

// Result returns the full result of the last successful Compute.
func (s *Simulation) Result() (Result, error) {
	if !s.computed {
		return Result{}, ErrNotComputed
	}

	return s.result, nil
}

// Reset clears inputs and outputs.
func (s *Simulation) Reset() {
	s.inputs = make(map[string]float64)
	s.result, s.computed = Result{}, false
}
