// SPDX-License-Identifier: MIT
// Package finance is a ready-made rule base that scores how affordable a
// purchase is and how risky it is for the buyer, from four crisp figures:
// monthly disposable income, item price, savings and credit score.
//
//	m, err := finance.NewModel()
//	a, err := m.Assess(finance.Applicant{
//	    DisposableIncome: 8000, ItemPrice: 15000, Savings: 2000, CreditScore: 680,
//	})
//	fmt.Println(a.Affordability.Value, a.Risk.Value)
//
// Affordability is an index on [-10, 100] (centroid); risk is a level on
// [0, 100] (mean of maximum). Inputs are clipped to their universes.
package finance

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/katalvlaran/mamdani/config"
	"github.com/katalvlaran/mamdani/engine"
)

// Variable names used by the model.
const (
	DisposableIncome = "disposable_income"
	ItemPrice        = "item_price"
	Savings          = "savings"
	CreditScore      = "credit_score"
	Affordability    = "affordability"
	Risk             = "risk"
)

//go:embed model.yaml
var modelYAML []byte

// ModelYAML returns a copy of the embedded model document.
func ModelYAML() []byte {
	return append([]byte(nil), modelYAML...)
}

// Applicant holds the crisp inputs of one assessment.
type Applicant struct {
	DisposableIncome float64
	ItemPrice        float64
	Savings          float64
	CreditScore      float64
}

// Inputs returns a as an engine input map.
func (a Applicant) Inputs() map[string]float64 {
	return map[string]float64{
		DisposableIncome: a.DisposableIncome,
		ItemPrice:        a.ItemPrice,
		Savings:          a.Savings,
		CreditScore:      a.CreditScore,
	}
}

// Score is one output. Defined is false when no rule reached a
// conclusion; Value is then zero and must not be used.
type Score struct {
	Value   float64
	Defined bool
}

func (s Score) String() string {
	if !s.Defined {
		return "no conclusion"
	}

	return fmt.Sprintf("%.2f", s.Value)
}

// Assessment is the result of one Assess call.
type Assessment struct {
	Affordability Score
	Risk          Score
}

// Model wraps the engine built from a model document.
type Model struct {
	engine *engine.Engine
}

// NewModel builds the embedded model. opts are passed to engine.New
// after the model's own options.
func NewModel(opts ...engine.Option) (*Model, error) {
	d, err := config.Parse(modelYAML)
	if err != nil {
		return nil, fmt.Errorf("finance: embedded model: %w", err)
	}

	return FromDocument(d, opts...)
}

// FromDocument builds a model from an alternative document. It must
// declare the four inputs and two outputs named by this package.
func FromDocument(d *config.Document, opts ...engine.Option) (*Model, error) {
	e, err := d.Engine(opts...)
	if err != nil {
		return nil, fmt.Errorf("finance: %w", err)
	}
	for _, name := range []string{Affordability, Risk} {
		found := false
		for _, v := range e.Outputs() {
			if v.Name() == name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("finance: %w: output %q", engine.ErrUnknownVariable, name)
		}
	}

	return &Model{engine: e}, nil
}

// Engine exposes the underlying engine, for tracing and lints.
func (m *Model) Engine() *engine.Engine { return m.engine }

// Assess computes both scores. Only input errors are returned; an
// output without a conclusion is reported through Score.Defined.
func (m *Model) Assess(a Applicant) (Assessment, error) {
	res, err := m.engine.Compute(a.Inputs())
	if err != nil {
		return Assessment{}, fmt.Errorf("finance: %w", err)
	}
	aff, err := score(res, Affordability)
	if err != nil {
		return Assessment{}, err
	}
	risk, err := score(res, Risk)
	if err != nil {
		return Assessment{}, err
	}

	return Assessment{Affordability: aff, Risk: risk}, nil
}

func score(res engine.Result, name string) (Score, error) {
	v, err := res.Value(name)
	switch {
	case err == nil:
		return Score{Value: v, Defined: true}, nil
	case errors.Is(err, engine.ErrUndefinedOutput):
		return Score{}, nil
	default:
		return Score{}, fmt.Errorf("finance: %w", err)
	}
}

// EdgeCase is a named reference scenario.
type EdgeCase struct {
	Name      string
	Applicant Applicant
}

// EdgeCases returns the reference scenarios that exercise the extremes of
// the rule base.
func EdgeCases() []EdgeCase {
	return []EdgeCase{
		{"negative income", Applicant{DisposableIncome: -2000, ItemPrice: 5000, Savings: 80000, CreditScore: 400}},
		{"high income, expensive item", Applicant{DisposableIncome: 15000, ItemPrice: 90000, Savings: 50000, CreditScore: 750}},
		{"high income, cheap item", Applicant{DisposableIncome: 18000, ItemPrice: 3000, Savings: 80000, CreditScore: 800}},
		{"low income, low savings", Applicant{DisposableIncome: 2000, ItemPrice: 1000, Savings: 5000, CreditScore: 600}},
		{"medium income, fair credit", Applicant{DisposableIncome: 8000, ItemPrice: 15000, Savings: 2000, CreditScore: 680}},
		{"low income, high savings", Applicant{DisposableIncome: 1000, ItemPrice: 40000, Savings: 80000, CreditScore: 720}},
		{"medium income, no savings", Applicant{DisposableIncome: 7000, ItemPrice: 50000, Savings: 1000, CreditScore: 850}},
	}
}
