// SPDX-License-Identifier: MIT
package rule

import (
	"fmt"
	"sort"
	"strings"
)

// Consequent is one "THEN Output is Term" target with a weight in (0,1].
type Consequent struct {
	Output string
	Term   string
	Weight float64
}

// Then returns a consequent with weight 1.
func Then(output, term string) Consequent {
	return Consequent{Output: output, Term: term, Weight: 1}
}

// WithWeight returns a copy of c with the given weight. The value is
// validated when the rule base is built, not here.
func (c Consequent) WithWeight(w float64) Consequent {
	c.Weight = w

	return c
}

// String renders "output.term" with an "@weight" suffix when weight != 1.
func (c Consequent) String() string {
	if c.Weight == 1 {
		return c.Output + "." + c.Term
	}

	return fmt.Sprintf("%s.%s@%g", c.Output, c.Term, c.Weight)
}

// Rule pairs an antecedent with one or more consequents. Label is free
// text used only in diagnostics.
type Rule struct {
	Label       string
	Antecedent  Expr
	Consequents []Consequent
}

// New builds an unlabelled rule.
func New(antecedent Expr, consequents ...Consequent) Rule {
	return Rule{Antecedent: antecedent, Consequents: consequents}
}

// Labeled returns a copy of r carrying label.
func (r Rule) Labeled(label string) Rule {
	r.Label = label

	return r
}

// String renders "IF <antecedent> THEN <c1>, <c2>".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString("IF ")
	if r.Antecedent != nil {
		b.WriteString(r.Antecedent.String())
	}
	b.WriteString(" THEN ")
	for i, c := range r.Consequents {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}

	return b.String()
}

// Key is a canonical form of the rule that ignores the label and the
// order of consequents. Two rules with equal keys are exact duplicates.
func (r Rule) Key() string {
	cs := make([]string, len(r.Consequents))
	for i, c := range r.Consequents {
		cs[i] = fmt.Sprintf("%s.%s@%g", c.Output, c.Term, c.Weight)
	}
	sort.Strings(cs)
	ante := ""
	if r.Antecedent != nil {
		ante = r.Antecedent.String()
	}

	return ante + " => " + strings.Join(cs, ",")
}
