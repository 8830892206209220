// SPDX-License-Identifier: MIT
// Package defuzz collapses an aggregated fuzzy set, sampled on a universe
// grid, into a single crisp value.
//
// Methods:
//
//	Centroid           — centre of gravity of the area under μ.
//	Bisector           — the x splitting the area under μ into two halves.
//	MeanOfMaximum      — mean of the sample points where μ is maximal.
//	SmallestOfMaximum  — smallest such sample point.
//	LargestOfMaximum   — largest such sample point.
//
// Integration model:
//
//	The set is treated as the piecewise-linear curve through the samples
//	(x_i, μ_i). Area and first moment are integrated exactly segment by
//	segment, so a clipped triangle or trapezoid whose breakpoints sit on
//	the grid defuzzifies to the same value whatever the step:
//
//	  centroid(trimf(0,0,10)) = 10/3 on a grid of step 1 or 0.001.
//
//	DiscreteCentroid provides the plain Σ x_i·μ_i / Σ μ_i for callers who
//	want the sampled weighted mean instead.
//
// No conclusion:
//
//	An all-zero set has no defuzzified value. Every method reports it with
//	ErrEmptySet instead of returning 0 or NaN, which would be
//	indistinguishable from a real result.
//
// Complexity: O(N) time for every method, O(1) extra memory.
package defuzz
