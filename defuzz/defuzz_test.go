// SPDX-License-Identifier: MIT
package defuzz_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mamdani/defuzz"
	"github.com/katalvlaran/mamdani/membership"
	"github.com/katalvlaran/mamdani/universe"
)

const tol = 1e-9

// sampled returns the grid and degrees of f on [min,max] with the given step.
func sampled(t *testing.T, f membership.Func, min, max, step float64) ([]float64, []float64) {
	t.Helper()
	u, err := universe.New(min, max, step)
	require.NoError(t, err)
	xs := u.Points()

	return xs, membership.Sample(f, xs)
}

// TestSymmetricTriangle_AllMethodsAgree: a symmetric triangle on a
// symmetric universe defuzzifies to its peak under every method.
func TestSymmetricTriangle_AllMethodsAgree(t *testing.T) {
	xs, mu := sampled(t, membership.Triangular{A: 0, B: 50, C: 100}, 0, 100, 1)
	for _, m := range defuzz.Methods() {
		got, err := defuzz.Defuzzify(xs, mu, m)
		require.NoError(t, err, m.String())
		assert.InDelta(t, 50.0, got, tol, m.String())
	}
}

// TestCentroid_RightTriangle checks the exact 10/3 centroid of
// trimf(0,0,10) independent of the grid step.
func TestCentroid_RightTriangle(t *testing.T) {
	f := membership.Triangular{A: 0, B: 0, C: 10}
	for _, step := range []float64{1, 0.5, 0.01} {
		xs, mu := sampled(t, f, 0, 10, step)
		got, err := defuzz.CentroidOf(xs, mu)
		require.NoError(t, err)
		assert.InDelta(t, 10.0/3.0, got, tol, "step %v", step)
	}

	xs, mu := sampled(t, f, 0, 10, 1)
	got, err := defuzz.DiscreteCentroid(xs, mu)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, tol, "sampled mean on a unit grid")
}

// TestMaximumFamily_Plateau: MoM of a plateau [b,c] is (b+c)/2; SoM/LoM
// are its ends.
func TestMaximumFamily_Plateau(t *testing.T) {
	xs, mu := sampled(t, membership.Trapezoidal{A: 10, B: 20, C: 40, D: 90}, 0, 100, 1)

	mom, err := defuzz.MeanOfMax(xs, mu)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, mom, tol)

	som, err := defuzz.SmallestOfMax(xs, mu)
	require.NoError(t, err)
	assert.Equal(t, 20.0, som)

	lom, err := defuzz.LargestOfMax(xs, mu)
	require.NoError(t, err)
	assert.Equal(t, 40.0, lom)
}

// TestMaximumFamily_ClippedSet: after clipping at 0.4 the maximum is the
// flat top of the clipped triangle.
func TestMaximumFamily_ClippedSet(t *testing.T) {
	xs, mu := sampled(t, membership.Triangular{A: 0, B: 50, C: 100}, 0, 100, 1)
	for i := range mu {
		mu[i] = math.Min(mu[i], 0.4)
	}
	mom, err := defuzz.MeanOfMax(xs, mu)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, mom, tol)

	som, _ := defuzz.SmallestOfMax(xs, mu)
	lom, _ := defuzz.LargestOfMax(xs, mu)
	assert.Equal(t, 20.0, som)
	assert.Equal(t, 80.0, lom)
}

// TestBisector_Shapes checks exact bisectors for a rectangle and a ramp.
func TestBisector_Shapes(t *testing.T) {
	xs, mu := sampled(t, membership.Trapezoidal{A: 0, B: 0, C: 10, D: 10}, 0, 10, 1)
	got, err := defuzz.BisectorOf(xs, mu)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, tol)

	xs, mu = sampled(t, membership.Triangular{A: 0, B: 0, C: 10}, 0, 10, 1)
	got, err = defuzz.BisectorOf(xs, mu)
	require.NoError(t, err)
	assert.InDelta(t, 10-math.Sqrt(50), got, tol)

	xs, mu = sampled(t, membership.Triangular{A: 0, B: 10, C: 10}, 0, 10, 1)
	got, err = defuzz.BisectorOf(xs, mu)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(50), got, tol)
}

// TestEmptySet_NoConclusion: every method reports ErrEmptySet on an
// all-zero set rather than a number.
func TestEmptySet_NoConclusion(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	mu := []float64{0, 0, 0, 0}
	for _, m := range defuzz.Methods() {
		_, err := defuzz.Defuzzify(xs, mu, m)
		assert.ErrorIs(t, err, defuzz.ErrEmptySet, m.String())
	}
	_, err := defuzz.Defuzzify(nil, nil, defuzz.Centroid)
	assert.ErrorIs(t, err, defuzz.ErrEmptySet)
	assert.True(t, defuzz.IsEmpty(mu))
}

func TestDefuzzify_BadInput(t *testing.T) {
	_, err := defuzz.Defuzzify([]float64{0, 1}, []float64{1}, defuzz.Centroid)
	assert.ErrorIs(t, err, defuzz.ErrLengthMismatch)

	_, err = defuzz.Defuzzify([]float64{0, 1}, []float64{1, 1}, defuzz.Method(42))
	assert.ErrorIs(t, err, defuzz.ErrUnknownMethod)

	got, err := defuzz.CentroidOf([]float64{7}, []float64{0.3})
	require.NoError(t, err)
	assert.Equal(t, 7.0, got, "single positive sample is its own centroid")
}

func TestParseMethod(t *testing.T) {
	cases := map[string]defuzz.Method{
		"":                   defuzz.Centroid,
		"Centroid":           defuzz.Centroid,
		"bisector":           defuzz.Bisector,
		"mom":                defuzz.MeanOfMaximum,
		"SOM":                defuzz.SmallestOfMaximum,
		"largest_of_maximum": defuzz.LargestOfMaximum,
	}
	for in, want := range cases {
		got, err := defuzz.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := defuzz.ParseMethod("wtaver")
	assert.ErrorIs(t, err, defuzz.ErrUnknownMethod)
	assert.Equal(t, "Method(9)", defuzz.Method(9).String())
}

func TestMethod_YAML(t *testing.T) {
	var doc struct {
		Method defuzz.Method `yaml:"method"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("method: mom\n"), &doc))
	assert.Equal(t, defuzz.MeanOfMaximum, doc.Method)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "method: mom\n", string(out))

	err = yaml.Unmarshal([]byte("method: median\n"), &doc)
	assert.ErrorIs(t, err, defuzz.ErrUnknownMethod)
}
