// SPDX-License-Identifier: MIT
package rule_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mamdani/rule"
)

// table returns a Lookup over a fixed (variable.term → degree) map.
func table(m map[string]float64) rule.Lookup {
	return func(v, t string) (float64, bool) {
		d, ok := m[v+"."+t]

		return d, ok
	}
}

// TestOperators_ZadehLaws checks min/max/complement over a grid of degree pairs.
func TestOperators_ZadehLaws(t *testing.T) {
	a, b := rule.Is("x", "a"), rule.Is("y", "b")
	for da := 0.0; da <= 1.0; da += 0.125 {
		for db := 0.0; db <= 1.0; db += 0.125 {
			lk := table(map[string]float64{"x.a": da, "y.b": db})

			and, err := rule.Evaluate(rule.And{L: a, R: b}, lk)
			require.NoError(t, err)
			assert.Equal(t, math.Min(da, db), and)

			or, err := rule.Evaluate(rule.Or{L: a, R: b}, lk)
			require.NoError(t, err)
			assert.Equal(t, math.Max(da, db), or)

			not, err := rule.Evaluate(rule.Not{X: a}, lk)
			require.NoError(t, err)
			assert.Equal(t, 1-da, not)
		}
	}
}

func TestEvaluate_UnknownTerm(t *testing.T) {
	e := rule.AndOf(rule.Is("x", "a"), rule.NotOf(rule.Is("y", "missing")))
	_, err := rule.Evaluate(e, table(map[string]float64{"x.a": 1}))
	assert.ErrorIs(t, err, rule.ErrUnknownTerm)
}

// TestBuilders_FoldLeft: n-ary builders fold left and Walk visits leaves in order.
func TestBuilders_FoldLeft(t *testing.T) {
	e := rule.AndOf(rule.Is("a", "x"), rule.Is("b", "y"), rule.OrOf(rule.Is("c", "z"), rule.Is("d", "w")))
	assert.Equal(t, "((a.x and b.y) and (c.z or d.w))", e.String())

	var leaves []string
	rule.Walk(e, func(t rule.Term) { leaves = append(leaves, t.String()) })
	assert.Equal(t, []string{"a.x", "b.y", "c.z", "d.w"}, leaves)

	assert.Equal(t, rule.Is("a", "x"), rule.AndOf(rule.Is("a", "x")))
	assert.Panics(t, func() { rule.OrOf() })
}

// TestParse_Grammar covers operators, precedence and parentheses.
func TestParse_Grammar(t *testing.T) {
	cases := []struct {
		src  string
		want rule.Expr
	}{
		{"income.low", rule.Is("income", "low")},
		{"a.x and b.y", rule.And{L: rule.Is("a", "x"), R: rule.Is("b", "y")}},
		{"a.x && b.y || c.z", rule.Or{L: rule.And{L: rule.Is("a", "x"), R: rule.Is("b", "y")}, R: rule.Is("c", "z")}},
		{"a.x and (b.y or c.z)", rule.And{L: rule.Is("a", "x"), R: rule.Or{L: rule.Is("b", "y"), R: rule.Is("c", "z")}}},
		{"not a.x and b.y", rule.And{L: rule.Not{X: rule.Is("a", "x")}, R: rule.Is("b", "y")}},
		{"!(a.x or b.y)", rule.Not{X: rule.Or{L: rule.Is("a", "x"), R: rule.Is("b", "y")}}},
		{"disposable_income.very_low", rule.Is("disposable_income", "very_low")},
		{`income["very-low"]`, rule.Is("income", "very-low")},
		{`a["2nd"] or a.in`, rule.Or{L: rule.Is("a", "2nd"), R: rule.Is("a", "in")}},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			got, err := rule.Parse(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParse_RoundTrip: String renders source Parse accepts back unchanged.
func TestParse_RoundTrip(t *testing.T) {
	e := rule.AndOf(
		rule.Is("savings", "high"),
		rule.NotOf(rule.OrOf(rule.Is("income", "low"), rule.Is("income", "very_low"))),
	)
	back, err := rule.Parse(e.String())
	require.NoError(t, err)
	assert.Equal(t, e, back)
}

// TestTerm_StringQuotesNonIdentifiers: any term name survives String/Parse.
func TestTerm_StringQuotesNonIdentifiers(t *testing.T) {
	cases := map[string]string{
		"low":      "x.low",
		"very_low": "x.very_low",
		"in":       "x.in",
		"very-low": `x["very-low"]`,
		"2nd":      `x["2nd"]`,
		"a b":      `x["a b"]`,
		`say "hi"`: `x["say \"hi\""]`,
	}
	for term, want := range cases {
		t.Run(term, func(t *testing.T) {
			leaf := rule.Is("x", term)
			assert.Equal(t, want, leaf.String())

			back, err := rule.Parse(rule.NotOf(leaf).String())
			require.NoError(t, err)
			assert.Equal(t, rule.NotOf(leaf), back)
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	for _, name := range []string{"a", "_x", "credit_score", "x2", "ñame"} {
		assert.True(t, rule.IsIdentifier(name), name)
	}
	for _, name := range []string{"", "2nd", "very-low", "a b", "a.b"} {
		assert.False(t, rule.IsIdentifier(name), name)
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, src := range []string{
		"income",
		"income.low + 1",
		"income.low and true",
		"len(income.low)",
		"a.b.c",
		"a.x and",
		"-a.x",
	} {
		_, err := rule.Parse(src)
		assert.ErrorIs(t, err, rule.ErrSyntax, src)
	}
	assert.Panics(t, func() { rule.MustParse("a.x or") })
}

func TestRule_StringAndKey(t *testing.T) {
	r := rule.New(rule.Is("a", "x"), rule.Then("out", "high"), rule.Then("risk", "low").WithWeight(0.5)).Labeled("r1")
	assert.Equal(t, "IF a.x THEN out.high, risk.low@0.5", r.String())

	swapped := rule.New(rule.Is("a", "x"), rule.Then("risk", "low").WithWeight(0.5), rule.Then("out", "high"))
	assert.Equal(t, r.Key(), swapped.Key(), "label and consequent order do not matter")

	other := rule.New(rule.Is("a", "x"), rule.Then("out", "high"))
	assert.NotEqual(t, r.Key(), other.Key())
}
