// SPDX-License-Identifier: MIT
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mamdani/defuzz"
	"github.com/katalvlaran/mamdani/membership"
)

// Document is the YAML form of a complete rule base.
type Document struct {
	Variables []Variable `yaml:"variables"`
	Rules     []Rule     `yaml:"rules"`
	Options   Options    `yaml:"options,omitempty"`
}

// Variable declares one linguistic variable.
type Variable struct {
	Name      string         `yaml:"name"`
	Kind      string         `yaml:"kind"`
	Universe  Universe       `yaml:"universe"`
	Defuzzify *defuzz.Method `yaml:"defuzzify,omitempty"`
	Terms     Terms          `yaml:"terms"`
}

// Universe is the inclusive sampled range of a variable.
type Universe struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// Term is one named membership function.
type Term struct {
	Name string
	Spec membership.Spec
}

// Terms is written as a YAML mapping "name: {shape, params}". Declaration
// order is significant and kept.
type Terms []Term

// UnmarshalYAML reads the mapping pair by pair so the order of the source
// document survives decoding.
func (ts *Terms) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: terms must be a mapping of name to membership function", value.Line)
	}
	out := make(Terms, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, body := value.Content[i], value.Content[i+1]
		if err := checkTermFields(body); err != nil {
			return fmt.Errorf("term %q: %w", key.Value, err)
		}
		var spec membership.Spec
		if err := body.Decode(&spec); err != nil {
			return fmt.Errorf("term %q: %w", key.Value, err)
		}
		out = append(out, Term{Name: key.Value, Spec: spec})
	}
	*ts = out

	return nil
}

// checkTermFields keeps term bodies as strict as the rest of the document:
// Node.Decode does not inherit the decoder's KnownFields setting.
func checkTermFields(body *yaml.Node) error {
	if body.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(body.Content); i += 2 {
		switch k := body.Content[i]; k.Value {
		case "shape", "params":
		default:
			return fmt.Errorf("line %d: field %s not found in membership function (want shape, params)", k.Line, k.Value)
		}
	}

	return nil
}

// MarshalYAML writes the terms back as an ordered mapping.
func (ts Terms) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, t := range ts {
		var body yaml.Node
		if err := body.Encode(t.Spec); err != nil {
			return nil, fmt.Errorf("term %q: %w", t.Name, err)
		}
		body.Style = yaml.FlowStyle
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: t.Name}, &body)
	}

	return n, nil
}

// Rule is one IF/THEN rule. If holds the antecedent in the rule.Parse
// grammar.
type Rule struct {
	Label string       `yaml:"label,omitempty"`
	If    string       `yaml:"if"`
	Then  []Consequent `yaml:"then"`
}

// Consequent names an output term. Weight defaults to 1 when omitted.
type Consequent struct {
	Output string   `yaml:"output"`
	Term   string   `yaml:"term"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// Options carries engine options.
type Options struct {
	ClipToBounds bool `yaml:"clip_to_bounds"`
}
