// SPDX-License-Identifier: MIT
// Package engine is the Mamdani inference engine: it turns crisp inputs
// into crisp outputs through a rule base of linguistic variables.
//
// Pipeline (one deterministic pass per Compute):
//
//	crisp inputs
//	  → fuzzify every input once              (variable.FuzzifyInto)
//	  → firing strength of every rule         (min / max / 1−x over the tree)
//	  → implication: clip each consequent term at strength × weight
//	  → aggregation: pointwise max per output
//	  → defuzzification per output            (defuzz.Defuzzify)
//	crisp outputs
//
// Building:
//
//	eng, err := engine.New(engine.Config{
//	    Inputs:  []*variable.Variable{income, price},
//	    Outputs: []*variable.Variable{affordability},
//	    Rules:   rules,
//	}, engine.WithClipToBounds())
//
// New validates the whole configuration eagerly and fails with an error
// wrapping ErrConfiguration (plus a specific sentinel) on the first
// problem: no partial rule base is ever returned. Variable and term names
// in rules are resolved to integer indices here, so computing never looks
// anything up by name. Universes, membership functions and variables are
// validated earlier, by their own constructors, with their own sentinels;
// IsConfigurationError groups those with ErrConfiguration.
//
// Computing:
//
//	res, err := eng.Compute(map[string]float64{"income": 4200, "price": 900})
//	v, err := res.Value("affordability")
//
// Per-call failures (ErrMissingInput, ErrInvalidInput, ErrUnknownVariable)
// abort that call only. An output whose aggregated set is empty is not a
// call failure: it is reported per output with an error wrapping
// ErrUndefinedOutput, and the other outputs still resolve.
//
// Concurrency:
//
//	An Engine is immutable after New and safe for concurrent use; each
//	call owns its fuzzification and aggregation buffers. ComputeBatch
//	fans independent requests out over a bounded errgroup. Simulation is
//	a caller-owned state holder and is not safe for concurrent use.
package engine
