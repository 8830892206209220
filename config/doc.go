// SPDX-License-Identifier: MIT
// Package config loads rule bases from YAML documents.
//
// A document lists variables, rules and engine options:
//
//	variables:
//	  - name: service
//	    kind: input
//	    universe: {min: 0, max: 10, step: 0.5}
//	    terms:
//	      poor: {shape: trimf, params: [0, 0, 5]}
//	      good: {shape: trimf, params: [0, 5, 10]}
//	  - name: tip
//	    kind: output
//	    universe: {min: 0, max: 30, step: 0.5}
//	    defuzzify: centroid
//	    terms:
//	      low:  {shape: trimf, params: [0, 5, 13]}
//	      high: {shape: trapmf, params: [13, 25, 30, 30]}
//	rules:
//	  - label: stingy
//	    if: service.poor
//	    then: [{output: tip, term: low}]
//	  - if: service.good and not service.poor
//	    then: [{output: tip, term: high, weight: 0.8}]
//	options:
//	  clip_to_bounds: true
//
// Terms are a mapping whose key order is the term order. Antecedents use
// the rule.Parse grammar. Decoding rejects unknown fields; building wraps
// document problems in ErrDocument and leaves rule-base problems to the
// engine's ErrConfiguration family.
package config
