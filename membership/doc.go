// SPDX-License-Identifier: MIT
// Package membership implements the membership functions of linguistic
// terms: pure maps from a crisp value to a degree of truth in [0,1].
//
// What is provided?
//
//	Triangular(a,b,c)     — rises a→b, falls b→c.
//	Trapezoidal(a,b,c,d)  — rises a→b, plateau b..c at 1, falls c→d.
//	LeftShoulder / RightShoulder — single-shoulder trapezoids.
//
// Contract:
//   - Evaluate is total: defined for every float64, including values far
//     outside the universe the term is attached to; it saturates to 0
//     outside the support.
//   - Equal breakpoints produce a vertical edge, never a division by zero:
//     Triangular(0,0,10) is 1 at x=0, Trapezoidal(60,80,100,100) is 1 at
//     x=100 and 0 just past it.
//   - Results are always in [0,1]; NaN input yields 0.
//
// Declarative form:
//
//	spec := membership.Spec{Shape: "trapmf", Params: []float64{20000, 40000, 60000, 100000}}
//	f, err := spec.Build()
//
// Shapes are named like the reference toolkit (trimf, trapmf) with the
// long forms (triangular, trapezoidal) accepted as aliases.
package membership
