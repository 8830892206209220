// SPDX-License-Identifier: MIT
package engine

import (
	"errors"

	"github.com/katalvlaran/mamdani/membership"
	"github.com/katalvlaran/mamdani/rule"
	"github.com/katalvlaran/mamdani/universe"
	"github.com/katalvlaran/mamdani/variable"
)

// NOTE ON CONFIGURATION ERRORS
// ----------------------------
// A rule base is assembled in two steps, and each step has its own
// sentinels:
//
//	universe.New   → universe.ErrInvalidUniverse
//	membership.New* / variable.New
//	               → membership.ErrBreakpointOrder, membership.ErrNonFinite,
//	                 variable.ErrEmptyName, ErrNoTerms, ErrDuplicateTerm,
//	                 ErrNilFunc, ErrBadKind, ErrMethodOnInput
//	engine.New     → ErrConfiguration plus one sentinel below
//
// IsConfigurationError matches all of them, so callers that only need the
// class ("the rule base is wrong, not the inputs") need not list them.
//
// ERROR PRIORITY in New (first failure wins):
// empty inputs/outputs -> empty rule base -> inputs (nil, kind, duplicate)
// -> outputs (nil, kind, duplicate) -> rules in order. Within a rule:
// nil antecedent -> no consequents -> antecedent leaves left to right
// (unknown variable, wrong kind, unknown term) -> consequents in order
// (unknown variable, wrong kind, unknown term, weight).
//
// Call-time errors never wrap ErrConfiguration.

// Build-time errors. Every error returned by New wraps ErrConfiguration
// and, where one applies, one of the more specific sentinels below.
var (
	// ErrConfiguration classifies every rejected configuration.
	ErrConfiguration = errors.New("engine: invalid configuration")

	// ErrNoVariables indicates a configuration without inputs or outputs.
	ErrNoVariables = errors.New("engine: inputs and outputs are required")

	// ErrNilVariable indicates a nil *variable.Variable in Config.
	ErrNilVariable = errors.New("engine: nil variable")

	// ErrDuplicateVariable indicates two variables sharing a name.
	ErrDuplicateVariable = errors.New("engine: duplicate variable")

	// ErrWrongKind indicates an input used as an output or vice versa.
	ErrWrongKind = errors.New("engine: variable used with the wrong kind")

	// ErrNoRules indicates an empty rule base.
	ErrNoRules = errors.New("engine: no rules")

	// ErrNilAntecedent indicates a rule without an antecedent.
	ErrNilAntecedent = errors.New("engine: rule has no antecedent")

	// ErrNoConsequents indicates a rule without consequents.
	ErrNoConsequents = errors.New("engine: rule has no consequents")

	// ErrBadWeight indicates a consequent weight outside (0,1].
	ErrBadWeight = errors.New("engine: consequent weight must be in (0,1]")
)

// ErrUnknownTerm indicates a term not defined on the referenced variable.
// It is the same sentinel as rule.ErrUnknownTerm.
var ErrUnknownTerm = rule.ErrUnknownTerm

// Errors shared by build time and call time.
var (
	// ErrUnknownVariable indicates a name that is not a registered
	// variable of the expected kind.
	ErrUnknownVariable = errors.New("engine: unknown variable")
)

// Call-time errors.
var (
	// ErrMissingInput indicates a registered input without a crisp value.
	ErrMissingInput = errors.New("engine: missing input")

	// ErrInvalidInput indicates a NaN or infinite crisp value.
	ErrInvalidInput = errors.New("engine: invalid input value")

	// ErrUndefinedOutput marks an output with no conclusion: its
	// aggregated set is empty or has zero area. It is attached to the
	// individual Output and never aborts the call.
	ErrUndefinedOutput = errors.New("engine: output undefined (no rule fired)")

	// ErrNotComputed indicates a Simulation read before a successful Compute.
	ErrNotComputed = errors.New("engine: simulation not computed")
)

// configurationSentinels are the build-time sentinels of the packages a
// Config is assembled from.
var configurationSentinels = []error{
	ErrConfiguration,
	universe.ErrInvalidUniverse,
	membership.ErrBreakpointOrder,
	membership.ErrNonFinite,
	membership.ErrUnknownShape,
	membership.ErrParamCount,
	variable.ErrEmptyName,
	variable.ErrNoTerms,
	variable.ErrDuplicateTerm,
	variable.ErrNilFunc,
	variable.ErrBadKind,
	variable.ErrMethodOnInput,
}

// IsConfigurationError reports whether err describes a bad rule base,
// whether it was raised by New or while building its universes, membership
// functions or variables.
func IsConfigurationError(err error) bool {
	for _, s := range configurationSentinels {
		if errors.Is(err, s) {
			return true
		}
	}

	return false
}
