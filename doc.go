// SPDX-License-Identifier: MIT
// Package mamdani is a Mamdani fuzzy inference library: it turns crisp
// numbers into crisp decisions through linguistic variables and
// IF/THEN rules.
//
// What is in the box?
//
//	universe/    — sampled, inclusive numeric ranges
//	membership/  — triangular and trapezoidal membership functions
//	variable/    — linguistic variables (named terms over a universe)
//	rule/        — antecedent trees, consequents and a textual rule parser
//	defuzz/      — centroid, bisector, mean/smallest/largest of maximum
//	engine/      — validated rule bases, Compute, Trace, batches, lints
//	config/      — YAML rule base documents
//	finance/     — a ready-made affordability and risk model
//	logging/     — slog setup for the command-line tools
//	cmd/fincalc  — interactive affordability and risk calculator
//
// Inference pass:
//
//	crisp → fuzzify → rule strength (min/max/1−x) → clip → max → defuzzify → crisp
//
// Quick example:
//
//	doc, _ := config.Parse(yamlBytes)
//	eng, _ := doc.Engine()
//	res, _ := eng.Compute(map[string]float64{"service": 7.5, "food": 9})
//	tip, err := res.Value("tip") // err wraps engine.ErrUndefinedOutput if nothing fired
//
// An Engine is immutable once built and safe for concurrent use; every
// call owns its own buffers.
//
//	go get github.com/katalvlaran/mamdani
package mamdani
