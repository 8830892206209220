// SPDX-License-Identifier: MIT
package defuzz

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Defuzzify dispatches to the function implementing m.
//
// xs are the universe sample points in increasing order, mu the
// aggregated degrees at those points. The slices are not modified.
func Defuzzify(xs, mu []float64, m Method) (float64, error) {
	switch m {
	case Centroid:
		return CentroidOf(xs, mu)
	case Bisector:
		return BisectorOf(xs, mu)
	case MeanOfMaximum:
		return MeanOfMax(xs, mu)
	case SmallestOfMaximum:
		return SmallestOfMax(xs, mu)
	case LargestOfMaximum:
		return LargestOfMax(xs, mu)
	default:
		return 0, ErrUnknownMethod
	}
}

// CentroidOf returns ∫x·μ(x)dx / ∫μ(x)dx over the piecewise-linear set.
//
// Implementation:
//   - Stage 1: validate shapes, reject the empty set.
//   - Stage 2: per segment [x1,x2] with linear μ from y1 to y2:
//     area   = w·(y1+y2)/2
//     moment = w·(y1·(2x1+x2) + y2·(x1+2x2))/6
//   - Stage 3: ratio of the sums; ErrZeroArea when the area vanishes.
//
// A single-sample set with a positive degree returns that sample.
func CentroidOf(xs, mu []float64) (float64, error) {
	if err := checkSet(xs, mu); err != nil {
		return 0, err
	}
	if len(xs) == 1 {
		return xs[0], nil
	}

	area, moment := 0.0, 0.0
	for i := 1; i < len(xs); i++ {
		x1, x2, y1, y2 := xs[i-1], xs[i], mu[i-1], mu[i]
		w := x2 - x1
		if w <= 0 || (y1 == 0 && y2 == 0) {
			continue
		}
		area += w * (y1 + y2) / 2
		moment += w * (y1*(2*x1+x2) + y2*(x1+2*x2)) / 6
	}
	if area <= 0 {
		return 0, ErrZeroArea
	}

	return moment / area, nil
}

// DiscreteCentroid returns the sampled weighted mean Σ x_i·μ_i / Σ μ_i.
func DiscreteCentroid(xs, mu []float64) (float64, error) {
	if err := checkSet(xs, mu); err != nil {
		return 0, err
	}
	total := floats.Sum(mu)
	if total <= 0 {
		return 0, ErrZeroArea
	}

	return floats.Dot(xs, mu) / total, nil
}

// BisectorOf returns the x at which the area under the piecewise-linear
// set splits into two equal halves.
//
// The crossing segment is located from cumulative trapezoid areas; inside
// it the partial area from x1 to x1+t is y1·t + s·t²/2 with slope
// s = (y2-y1)/w, solved exactly for t.
func BisectorOf(xs, mu []float64) (float64, error) {
	if err := checkSet(xs, mu); err != nil {
		return 0, err
	}
	if len(xs) == 1 {
		return xs[0], nil
	}

	areas := make([]float64, len(xs)-1)
	for i := 1; i < len(xs); i++ {
		if w := xs[i] - xs[i-1]; w > 0 {
			areas[i-1] = w * (mu[i-1] + mu[i]) / 2
		}
	}
	total := floats.Sum(areas)
	if total <= 0 {
		return 0, ErrZeroArea
	}

	half := total / 2
	acc := 0.0
	for i, a := range areas {
		if a == 0 || acc+a < half {
			acc += a
			continue
		}
		x1, w := xs[i], xs[i+1]-xs[i]
		y1, y2 := mu[i], mu[i+1]
		rest := half - acc
		if y1 == y2 {
			return x1 + rest/y1, nil
		}
		s := (y2 - y1) / w
		t := (-y1 + math.Sqrt(math.Max(y1*y1+2*s*rest, 0))) / s

		return x1 + math.Min(math.Max(t, 0), w), nil
	}

	// Unreachable for a positive total; guards accumulated rounding.
	return xs[len(xs)-1], nil
}

// MeanOfMax returns the arithmetic mean of every sample point whose degree
// equals the global maximum.
func MeanOfMax(xs, mu []float64) (float64, error) {
	peak, err := maxDegree(xs, mu)
	if err != nil {
		return 0, err
	}
	sum, n := 0.0, 0
	for i, d := range mu {
		if d == peak {
			sum += xs[i]
			n++
		}
	}

	return sum / float64(n), nil
}

// SmallestOfMax returns the first maximising sample point.
func SmallestOfMax(xs, mu []float64) (float64, error) {
	peak, err := maxDegree(xs, mu)
	if err != nil {
		return 0, err
	}
	for i, d := range mu {
		if d == peak {
			return xs[i], nil
		}
	}

	return 0, ErrEmptySet
}

// LargestOfMax returns the last maximising sample point.
func LargestOfMax(xs, mu []float64) (float64, error) {
	peak, err := maxDegree(xs, mu)
	if err != nil {
		return 0, err
	}
	for i := len(mu) - 1; i >= 0; i-- {
		if mu[i] == peak {
			return xs[i], nil
		}
	}

	return 0, ErrEmptySet
}

// IsEmpty reports whether every degree is zero (or there are none).
func IsEmpty(mu []float64) bool {
	return len(mu) == 0 || floats.Max(mu) <= 0
}

func maxDegree(xs, mu []float64) (float64, error) {
	if err := checkSet(xs, mu); err != nil {
		return 0, err
	}

	return floats.Max(mu), nil
}

// checkSet validates lengths and rejects the empty set.
func checkSet(xs, mu []float64) error {
	if len(xs) != len(mu) {
		return ErrLengthMismatch
	}
	if IsEmpty(mu) {
		return ErrEmptySet
	}

	return nil
}
