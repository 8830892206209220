// SPDX-License-Identifier: MIT
package variable

// Fuzzify evaluates every term at x independently and returns
// term name → degree. Degrees are not normalised and need not sum to 1.
// Any crisp value is accepted, including values outside the universe.
func (v *Variable) Fuzzify(x float64) map[string]float64 {
	out := make(map[string]float64, len(v.terms))
	for _, t := range v.terms {
		out[t.Name] = t.Func.Evaluate(x)
	}

	return out
}

// FuzzifyInto writes the degree of term i into dst[i]. dst must hold at
// least Len() elements; it is the allocation-free path used per compute.
func (v *Variable) FuzzifyInto(x float64, dst []float64) {
	for i, t := range v.terms {
		dst[i] = t.Func.Evaluate(x)
	}
}

// Gaps returns the universe sample points at which every term has degree
// 0. A non-empty result means some inputs make every "v is t" leaf false
// at once, which is the only way a rule of the form "not (any term of v)"
// can fire.
func (v *Variable) Gaps() []float64 {
	var gaps []float64
	for i := 0; i < v.universe.Len(); i++ {
		covered := false
		for _, s := range v.samples {
			if s[i] > 0 {
				covered = true
				break
			}
		}
		if !covered {
			gaps = append(gaps, v.universe.At(i))
		}
	}

	return gaps
}
