// SPDX-License-Identifier: MIT
package membership

import (
	"fmt"
	"strings"
)

// Shape names accepted by Spec.
const (
	ShapeTriangular  = "trimf"
	ShapeTrapezoidal = "trapmf"
)

// Spec is the declarative, serialisable form of a membership function.
type Spec struct {
	Shape  string    `yaml:"shape" json:"shape"`
	Params []float64 `yaml:"params" json:"params"`
}

// Build validates the spec and returns the concrete Func.
//
// Errors:
//   - ErrUnknownShape for anything other than trimf/triangular and
//     trapmf/trapezoidal (case-insensitive);
//   - ErrParamCount when len(Params) is not 3 (triangular) or 4
//     (trapezoidal);
//   - ErrBreakpointOrder / ErrNonFinite from the constructors.
func (s Spec) Build() (Func, error) {
	switch strings.ToLower(strings.TrimSpace(s.Shape)) {
	case ShapeTriangular, "triangular", "tri":
		if len(s.Params) != 3 {
			return nil, fmt.Errorf("%s: got %d params, want 3: %w", ShapeTriangular, len(s.Params), ErrParamCount)
		}

		return NewTriangular(s.Params[0], s.Params[1], s.Params[2])
	case ShapeTrapezoidal, "trapezoidal", "trap":
		if len(s.Params) != 4 {
			return nil, fmt.Errorf("%s: got %d params, want 4: %w", ShapeTrapezoidal, len(s.Params), ErrParamCount)
		}

		return NewTrapezoidal(s.Params[0], s.Params[1], s.Params[2], s.Params[3])
	default:
		return nil, fmt.Errorf("%q: %w", s.Shape, ErrUnknownShape)
	}
}

// SpecOf returns the declarative form of a built-in Func. The second
// result is false for foreign implementations.
func SpecOf(f Func) (Spec, bool) {
	switch v := f.(type) {
	case Triangular:
		return Spec{Shape: ShapeTriangular, Params: []float64{v.A, v.B, v.C}}, true
	case Trapezoidal:
		return Spec{Shape: ShapeTrapezoidal, Params: []float64{v.A, v.B, v.C, v.D}}, true
	default:
		return Spec{}, false
	}
}
