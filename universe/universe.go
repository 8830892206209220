// SPDX-License-Identifier: MIT
// Package universe defines the discretised numeric domain of a linguistic
// variable: an ordered, finite grid of sample points over [min, max].
//
// A Universe{min, max, step} holds N = floor((max-min)/step)+1 points,
// point i being min + i·step. Values are computed by multiplication, not
// by repeated addition, so the grid is free of accumulated drift and two
// universes built from the same triple are bit-identical.
//
// Universes are immutable values; copying one is cheap and safe.
package universe

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidUniverse is returned by New when the triple cannot describe a
// grid of at least two ordered points.
var ErrInvalidUniverse = errors.New("universe: invalid universe")

// gridTol absorbs floating error when (max-min)/step is an integer in
// exact arithmetic but lands a hair below it in float64
// (e.g. (1-0)/0.1 = 9.999999999999998).
const gridTol = 1e-9

// MaxPoints caps the number of sample points of a universe. Every term of
// a variable is pre-sampled over the whole grid, so the cap bounds memory
// at build time.
const MaxPoints = 1 << 24

// Universe is an immutable discretisation of [min, max] with a fixed step.
type Universe struct {
	min, max, step float64
	n              int
}

// New validates the triple and returns the universe.
//
// Errors (all wrap ErrInvalidUniverse):
//   - any of min/max/step is NaN or ±Inf;
//   - step <= 0;
//   - min >= max;
//   - fewer than two sample points (step larger than the interval);
//   - more than MaxPoints sample points, or a point count that does not
//     fit a float64 (e.g. New(0, 1e300, 1e-300)).
//
// Complexity: O(1).
func New(min, max, step float64) (Universe, error) {
	if isNonFinite(min) || isNonFinite(max) || isNonFinite(step) {
		return Universe{}, fmt.Errorf("%w: non-finite bound or step", ErrInvalidUniverse)
	}
	if step <= 0 {
		return Universe{}, fmt.Errorf("%w: step %g must be > 0", ErrInvalidUniverse, step)
	}
	if min >= max {
		return Universe{}, fmt.Errorf("%w: min %g must be < max %g", ErrInvalidUniverse, min, max)
	}
	q := math.Floor((max-min)/step + gridTol)
	if isNonFinite(q) || q+1 > MaxPoints {
		return Universe{}, fmt.Errorf("%w: step %g over [%g, %g] exceeds %d points", ErrInvalidUniverse, step, min, max, MaxPoints)
	}
	n := int(q) + 1
	if n < 2 {
		return Universe{}, fmt.Errorf("%w: step %g leaves fewer than 2 points in [%g, %g]", ErrInvalidUniverse, step, min, max)
	}

	return Universe{min: min, max: max, step: step, n: n}, nil
}

// MustNew is New for package-level fixtures; it panics on error.
func MustNew(min, max, step float64) Universe {
	u, err := New(min, max, step)
	if err != nil {
		panic(err)
	}

	return u
}

// Min returns the lower bound.
func (u Universe) Min() float64 { return u.min }

// Max returns the configured upper bound. The last sample point may be
// smaller when (max-min) is not a multiple of step.
func (u Universe) Max() float64 { return u.max }

// Step returns the grid spacing.
func (u Universe) Step() float64 { return u.step }

// Len returns the number of sample points N.
func (u Universe) Len() int { return u.n }

// At returns sample point i. It panics if i is outside [0, Len()).
func (u Universe) At(i int) float64 {
	if i < 0 || i >= u.n {
		panic(fmt.Sprintf("universe: index %d out of range [0,%d)", i, u.n))
	}

	return u.min + float64(i)*u.step
}

// Points returns a freshly allocated slice with all N sample points.
func (u Universe) Points() []float64 {
	pts := make([]float64, u.n)
	for i := range pts {
		pts[i] = u.min + float64(i)*u.step
	}

	return pts
}

// Contains reports whether x lies in the closed interval [min, max].
func (u Universe) Contains(x float64) bool {
	return x >= u.min && x <= u.max
}

// Clip clamps x into [min, max]. NaN is returned unchanged.
func (u Universe) Clip(x float64) float64 {
	switch {
	case x < u.min:
		return u.min
	case x > u.max:
		return u.max
	default:
		return x
	}
}

// String renders the universe as "[min:max:step]".
func (u Universe) String() string {
	return fmt.Sprintf("[%g:%g:%g]", u.min, u.max, u.step)
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
