// SPDX-License-Identifier: MIT
package engine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mamdani/rule"
)

// LintKind classifies a build-time finding. Lints never reject a
// configuration; New logs them at Warn and Lints returns them.
type LintKind int

const (
	// LintDuplicateRule marks a rule identical to an earlier one apart
	// from its label. Duplicates are harmless under max-aggregation.
	LintDuplicateRule LintKind = iota

	// LintUntargetedOutput marks an output no rule concludes on; it is
	// undefined for every input.
	LintUntargetedOutput

	// LintUnusedInput marks an input no antecedent references.
	LintUnusedInput

	// LintCoverageGap marks an input whose terms are all zero at some
	// universe points.
	LintCoverageGap
)

var lintNames = [...]string{"duplicate-rule", "untargeted-output", "unused-input", "coverage-gap"}

// String returns the kebab-case name of k.
func (k LintKind) String() string {
	if k < 0 || int(k) >= len(lintNames) {
		return fmt.Sprintf("LintKind(%d)", int(k))
	}

	return lintNames[k]
}

// Lint is a single finding: Subject names the rule or variable.
type Lint struct {
	Kind    LintKind
	Subject string
	Detail  string
}

func (l Lint) String() string {
	return l.Kind.String() + ": " + l.Subject + ": " + l.Detail
}

// maxGapPoints bounds how many gap points a lint detail lists.
const maxGapPoints = 5

func lint(e *Engine) []Lint {
	var out []Lint

	seen := make(map[string]int, len(e.rules))
	targeted := make([]bool, len(e.outputs))
	used := make(map[string]bool, len(e.inputs))
	for i, cr := range e.rules {
		key := cr.src.Key()
		if first, dup := seen[key]; dup {
			out = append(out, Lint{
				Kind:    LintDuplicateRule,
				Subject: ruleName(i, cr.src),
				Detail:  "duplicates " + ruleName(first, e.rules[first].src),
			})
		} else {
			seen[key] = i
		}
		for _, t := range cr.targets {
			targeted[t.output] = true
		}
		rule.Walk(cr.src.Antecedent, func(t rule.Term) { used[t.Variable] = true })
	}

	for i, v := range e.outputs {
		if !targeted[i] {
			out = append(out, Lint{Kind: LintUntargetedOutput, Subject: v.Name(), Detail: "no rule concludes on this output"})
		}
	}
	for _, v := range e.inputs {
		if !used[v.Name()] {
			out = append(out, Lint{Kind: LintUnusedInput, Subject: v.Name(), Detail: "not referenced by any antecedent"})
		}
		if gaps := v.Gaps(); len(gaps) > 0 {
			out = append(out, Lint{Kind: LintCoverageGap, Subject: v.Name(), Detail: describeGaps(gaps)})
		}
	}

	return out
}

func ruleName(i int, r rule.Rule) string {
	if r.Label != "" {
		return r.Label
	}

	return fmt.Sprintf("rule %d", i)
}

func describeGaps(gaps []float64) string {
	shown := gaps
	if len(shown) > maxGapPoints {
		shown = shown[:maxGapPoints]
	}
	parts := make([]string, len(shown))
	for i, g := range shown {
		parts[i] = fmt.Sprintf("%g", g)
	}
	s := fmt.Sprintf("%d uncovered point(s): %s", len(gaps), strings.Join(parts, ", "))
	if len(gaps) > len(shown) {
		s += ", ..."
	}

	return s
}
