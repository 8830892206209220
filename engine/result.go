// SPDX-License-Identifier: MIT
package engine

import (
	"errors"
	"fmt"
)

// Output is the outcome for one output variable. Err is non-nil (and
// wraps ErrUndefinedOutput) when the rule base reached no conclusion; in
// that case Value is meaningless and left at zero.
type Output struct {
	Name  string
	Value float64
	Err   error
}

// Defined reports whether the output has a crisp value.
func (o Output) Defined() bool { return o.Err == nil }

// Result lists the outputs of one Compute call in registration order.
type Result struct {
	Outputs []Output
}

// Get returns the named Output.
func (r Result) Get(name string) (Output, bool) {
	for _, o := range r.Outputs {
		if o.Name == name {
			return o, true
		}
	}

	return Output{}, false
}

// Value returns the crisp value of the named output, or an error that
// wraps ErrUndefinedOutput (no conclusion) or ErrUnknownVariable (not
// part of this result).
func (r Result) Value(name string) (float64, error) {
	o, ok := r.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: output %q not in result", ErrUnknownVariable, name)
	}
	if o.Err != nil {
		return 0, o.Err
	}

	return o.Value, nil
}

// Defined reports whether the named output is present and has a value.
func (r Result) Defined(name string) bool {
	o, ok := r.Get(name)

	return ok && o.Defined()
}

// Map returns the defined outputs only, keyed by name.
func (r Result) Map() map[string]float64 {
	m := make(map[string]float64, len(r.Outputs))
	for _, o := range r.Outputs {
		if o.Defined() {
			m[o.Name] = o.Value
		}
	}

	return m
}

// Err joins the errors of every undefined output; nil when all resolved.
func (r Result) Err() error {
	var errs []error
	for _, o := range r.Outputs {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}

	return errors.Join(errs...)
}
