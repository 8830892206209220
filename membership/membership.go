// SPDX-License-Identifier: MIT
package membership

import (
	"fmt"
	"math"
)

// Func is a membership function. Implementations must be pure and total.
type Func interface {
	// Evaluate returns the degree of x, always in [0,1].
	Evaluate(x float64) float64

	// Support returns the closed interval outside which Evaluate is 0.
	Support() (lo, hi float64)

	// String renders the function, e.g. "trimf(0,50,100)".
	String() string
}

// Validator is implemented by functions that can check their own
// parameters. Triangular and Trapezoidal implement it.
type Validator interface {
	Validate() error
}

// Validate runs f's Validate method when it has one and returns nil
// otherwise.
func Validate(f Func) error {
	if v, ok := f.(Validator); ok {
		return v.Validate()
	}

	return nil
}

// Triangular is the membership function rising from A to a peak at B and
// falling back to zero at C. A == B or B == C gives a vertical edge.
type Triangular struct {
	A, B, C float64
}

// NewTriangular validates a ≤ b ≤ c and finiteness.
func NewTriangular(a, b, c float64) (Triangular, error) {
	if err := checkBreakpoints(a, b, c); err != nil {
		return Triangular{}, fmt.Errorf("trimf(%g,%g,%g): %w", a, b, c, err)
	}

	return Triangular{A: a, B: b, C: c}, nil
}

// Validate reports whether the breakpoints satisfy A ≤ B ≤ C and are
// finite. It catches struct literals that bypassed NewTriangular.
func (t Triangular) Validate() error {
	if err := checkBreakpoints(t.A, t.B, t.C); err != nil {
		return fmt.Errorf("%s: %w", t, err)
	}

	return nil
}

// Evaluate implements Func.
//
// Stages:
//  1. Outside [A, C] (or NaN) → 0.
//  2. x == B → 1, which also covers the degenerate A == B / B == C edges.
//  3. Otherwise linear interpolation on the ramp containing x. The ramp
//     containing x has non-zero width because x lies strictly inside it.
func (t Triangular) Evaluate(x float64) float64 {
	if !(x >= t.A && x <= t.C) {
		return 0
	}
	if x == t.B {
		return 1
	}
	if x < t.B {
		return clamp01((x - t.A) / (t.B - t.A))
	}

	return clamp01((t.C - x) / (t.C - t.B))
}

// Support implements Func.
func (t Triangular) Support() (lo, hi float64) { return t.A, t.C }

// String implements Func.
func (t Triangular) String() string {
	return fmt.Sprintf("trimf(%g,%g,%g)", t.A, t.B, t.C)
}

// Trapezoidal is the membership function rising A→B, holding 1 on [B, C]
// and falling C→D. Equal neighbouring breakpoints give vertical edges.
type Trapezoidal struct {
	A, B, C, D float64
}

// NewTrapezoidal validates a ≤ b ≤ c ≤ d and finiteness.
func NewTrapezoidal(a, b, c, d float64) (Trapezoidal, error) {
	if err := checkBreakpoints(a, b, c, d); err != nil {
		return Trapezoidal{}, fmt.Errorf("trapmf(%g,%g,%g,%g): %w", a, b, c, d, err)
	}

	return Trapezoidal{A: a, B: b, C: c, D: d}, nil
}

// Validate reports whether the breakpoints satisfy A ≤ B ≤ C ≤ D and are
// finite. The open shoulders are the exception: A == B == -Inf and
// C == D == +Inf are accepted, as built by LeftShoulder and RightShoulder.
func (t Trapezoidal) Validate() error {
	p := []float64{t.A, t.B, t.C, t.D}
	if math.IsInf(t.A, -1) && math.IsInf(t.B, -1) {
		p = p[2:]
	}
	if n := len(p); math.IsInf(t.C, 1) && math.IsInf(t.D, 1) {
		p = p[:n-2]
	}
	if err := checkBreakpoints(p...); err != nil {
		return fmt.Errorf("%s: %w", t, err)
	}

	return nil
}

// Evaluate implements Func. The plateau test runs before the ramps so a
// zero-width ramp never reaches the division.
func (t Trapezoidal) Evaluate(x float64) float64 {
	if !(x >= t.A && x <= t.D) {
		return 0
	}
	if x >= t.B && x <= t.C {
		return 1
	}
	if x < t.B {
		return clamp01((x - t.A) / (t.B - t.A))
	}

	return clamp01((t.D - x) / (t.D - t.C))
}

// Support implements Func.
func (t Trapezoidal) Support() (lo, hi float64) { return t.A, t.D }

// String implements Func.
func (t Trapezoidal) String() string {
	return fmt.Sprintf("trapmf(%g,%g,%g,%g)", t.A, t.B, t.C, t.D)
}

// LeftShoulder returns a trapezoid that is 1 on (-∞, c] and falls to 0
// at d. Its support is unbounded on the left.
func LeftShoulder(c, d float64) (Trapezoidal, error) {
	return LeftShoulderFrom(math.Inf(-1), c, d)
}

// LeftShoulderFrom is LeftShoulder with the plateau pinned to start at lo
// (usually the universe minimum): trapmf(lo, lo, c, d).
func LeftShoulderFrom(lo, c, d float64) (Trapezoidal, error) {
	if math.IsInf(lo, -1) {
		if err := checkBreakpoints(c, c, d); err != nil {
			return Trapezoidal{}, fmt.Errorf("left shoulder(%g,%g): %w", c, d, err)
		}

		return Trapezoidal{A: lo, B: lo, C: c, D: d}, nil
	}

	return NewTrapezoidal(lo, lo, c, d)
}

// RightShoulder returns a trapezoid rising from a to 1 at b and staying at
// 1 on [b, +∞).
func RightShoulder(a, b float64) (Trapezoidal, error) {
	return RightShoulderTo(a, b, math.Inf(1))
}

// RightShoulderTo is RightShoulder with the plateau ending at hi:
// trapmf(a, b, hi, hi).
func RightShoulderTo(a, b, hi float64) (Trapezoidal, error) {
	if math.IsInf(hi, 1) {
		if err := checkBreakpoints(a, b, b); err != nil {
			return Trapezoidal{}, fmt.Errorf("right shoulder(%g,%g): %w", a, b, err)
		}

		return Trapezoidal{A: a, B: b, C: hi, D: hi}, nil
	}

	return NewTrapezoidal(a, b, hi, hi)
}

// Sample evaluates f at every point and returns the degrees in a fresh
// slice of the same length.
func Sample(f Func, points []float64) []float64 {
	out := make([]float64, len(points))
	for i, x := range points {
		out[i] = f.Evaluate(x)
	}

	return out
}

// checkBreakpoints enforces finiteness and non-decreasing order.
func checkBreakpoints(p ...float64) error {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	for i := 1; i < len(p); i++ {
		if p[i] < p[i-1] {
			return ErrBreakpointOrder
		}
	}

	return nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
