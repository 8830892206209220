// SPDX-License-Identifier: MIT
package universe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mamdani/universe"
)

// TestNew_Invalid covers every rejected triple.
func TestNew_Invalid(t *testing.T) {
	cases := []struct {
		name           string
		min, max, step float64
	}{
		{"zero step", 0, 10, 0},
		{"negative step", 0, 10, -1},
		{"min equals max", 5, 5, 1},
		{"min above max", 10, 0, 1},
		{"step wider than interval", 0, 1, 2},
		{"nan bound", math.NaN(), 1, 0.1},
		{"inf step", 0, 1, math.Inf(1)},
		{"point count overflows", 0, 1e300, 1e-300},
		{"span overflows", -math.MaxFloat64, math.MaxFloat64, 1},
		{"above point cap", 0, 1e12, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := universe.New(tc.min, tc.max, tc.step)
			assert.ErrorIs(t, err, universe.ErrInvalidUniverse)
		})
	}
}

// TestNew_PointCap accepts exactly MaxPoints and names the cap on rejection.
func TestNew_PointCap(t *testing.T) {
	u, err := universe.New(0, universe.MaxPoints-1, 1)
	require.NoError(t, err)
	assert.Equal(t, universe.MaxPoints, u.Len())

	_, err = universe.New(0, universe.MaxPoints, 1)
	require.ErrorIs(t, err, universe.ErrInvalidUniverse)
	assert.Contains(t, err.Error(), "exceeds")

	_, err = universe.New(0, 1e300, 1e-300)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "fewer than 2 points")
}

// TestNew_PointCount checks N = floor((max-min)/step)+1, including the
// float case where the quotient is a hair below an integer.
func TestNew_PointCount(t *testing.T) {
	u, err := universe.New(0, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 11, u.Len())

	u, err = universe.New(0, 1, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 11, u.Len(), "0.1 grid must keep its final point")

	u, err = universe.New(0, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, u.Len())
	assert.Equal(t, 9.0, u.At(3), "last point may fall short of max")
}

// TestUniverse_PointsAreDriftFree compares Points with At and the bounds.
func TestUniverse_PointsAreDriftFree(t *testing.T) {
	u := universe.MustNew(-10, 101, 1)
	pts := u.Points()
	require.Len(t, pts, 112)
	assert.Equal(t, -10.0, pts[0])
	assert.Equal(t, 101.0, pts[len(pts)-1])
	for i, p := range pts {
		assert.Equal(t, u.At(i), p)
	}

	pts[0] = 999
	assert.Equal(t, -10.0, u.Points()[0], "Points must return a copy")
}

// TestUniverse_ClipContains checks clamping on both sides.
func TestUniverse_ClipContains(t *testing.T) {
	u := universe.MustNew(300, 850, 1)
	assert.True(t, u.Contains(300))
	assert.True(t, u.Contains(850))
	assert.False(t, u.Contains(851))
	assert.Equal(t, 300.0, u.Clip(-5))
	assert.Equal(t, 850.0, u.Clip(900))
	assert.Equal(t, 512.5, u.Clip(512.5))
	assert.Equal(t, "[300:850:1]", u.String())
}

func TestUniverse_AtPanicsOutOfRange(t *testing.T) {
	u := universe.MustNew(0, 1, 0.5)
	assert.Panics(t, func() { u.At(3) })
	assert.Panics(t, func() { universe.MustNew(1, 0, 1) })
}
