// SPDX-License-Identifier: MIT
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mamdani/engine"
	"github.com/katalvlaran/mamdani/membership"
	"github.com/katalvlaran/mamdani/rule"
	"github.com/katalvlaran/mamdani/universe"
	"github.com/katalvlaran/mamdani/variable"
)

// ErrDocument classifies every error caused by the document itself:
// unreadable YAML, unknown fields, bad kinds, shapes or rule syntax.
var ErrDocument = errors.New("config: invalid document")

// Parse decodes a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDocument)
		}

		return nil, fmt.Errorf("%w: %w", ErrDocument, err)
	}

	return &d, nil
}

// Load reads and decodes a document from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	return Parse(data)
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Config turns the document into an engine configuration and the options
// it requests. Variables keep document order; inputs and outputs are
// split by kind.
func (d *Document) Config() (engine.Config, []engine.Option, error) {
	var cfg engine.Config
	for i, vd := range d.Variables {
		v, err := vd.build()
		if err != nil {
			return engine.Config{}, nil, fmt.Errorf("variable %d (%s): %w", i, vd.Name, err)
		}
		if v.Kind() == variable.Input {
			cfg.Inputs = append(cfg.Inputs, v)
		} else {
			cfg.Outputs = append(cfg.Outputs, v)
		}
	}

	cfg.Rules = make([]rule.Rule, 0, len(d.Rules))
	for i, rd := range d.Rules {
		r, err := rd.build()
		if err != nil {
			name := rd.Label
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}

			return engine.Config{}, nil, fmt.Errorf("rule %s: %w", name, err)
		}
		cfg.Rules = append(cfg.Rules, r)
	}

	var opts []engine.Option
	if d.Options.ClipToBounds {
		opts = append(opts, engine.WithClipToBounds())
	}

	return cfg, opts, nil
}

// Engine builds the engine described by the document. opts are applied
// after the document's own options.
func (d *Document) Engine(opts ...engine.Option) (*engine.Engine, error) {
	cfg, docOpts, err := d.Config()
	if err != nil {
		return nil, err
	}

	return engine.New(cfg, append(docOpts, opts...)...)
}

func (vd Variable) build() (*variable.Variable, error) {
	kind, err := parseKind(vd.Kind)
	if err != nil {
		return nil, err
	}
	u, err := universe.New(vd.Universe.Min, vd.Universe.Max, vd.Universe.Step)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocument, err)
	}

	terms := make([]variable.Term, len(vd.Terms))
	for i, t := range vd.Terms {
		f, err := t.Spec.Build()
		if err != nil {
			return nil, fmt.Errorf("%w: term %s: %w", ErrDocument, t.Name, err)
		}
		terms[i] = variable.Term{Name: t.Name, Func: f}
	}

	var opts []variable.Option
	if vd.Defuzzify != nil {
		opts = append(opts, variable.WithMethod(*vd.Defuzzify))
	}
	v, err := variable.New(vd.Name, kind, u, terms, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocument, err)
	}

	return v, nil
}

func parseKind(s string) (variable.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input":
		return variable.Input, nil
	case "output":
		return variable.Output, nil
	default:
		return 0, fmt.Errorf("%w: kind %q (want input or output)", ErrDocument, s)
	}
}

func (rd Rule) build() (rule.Rule, error) {
	ante, err := rule.Parse(rd.If)
	if err != nil {
		return rule.Rule{}, fmt.Errorf("%w: %w", ErrDocument, err)
	}
	cs := make([]rule.Consequent, len(rd.Then))
	for i, c := range rd.Then {
		cs[i] = rule.Then(c.Output, c.Term)
		if c.Weight != nil {
			cs[i] = cs[i].WithWeight(*c.Weight)
		}
	}

	return rule.New(ante, cs...).Labeled(rd.Label), nil
}

// FromConfig is the inverse of Config for built-in membership shapes. It
// fails with ErrDocument when a term uses a Func without a declarative
// form, or when an antecedent would not parse back to the same tree (a
// variable named "in" or "my-var", for instance). Term names are free:
// they are quoted in rule text when they are not identifiers.
func FromConfig(cfg engine.Config, clip bool) (*Document, error) {
	d := &Document{Options: Options{ClipToBounds: clip}}
	for _, v := range append(append([]*variable.Variable(nil), cfg.Inputs...), cfg.Outputs...) {
		vd := Variable{
			Name: v.Name(),
			Kind: v.Kind().String(),
			Universe: Universe{
				Min:  v.Universe().Min(),
				Max:  v.Universe().Max(),
				Step: v.Universe().Step(),
			},
		}
		if v.Kind() == variable.Output {
			m := v.Method()
			vd.Defuzzify = &m
		}
		for _, t := range v.Terms() {
			spec, ok := membership.SpecOf(t.Func)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s: no declarative form for %T", ErrDocument, v.Name(), t.Name, t.Func)
			}
			vd.Terms = append(vd.Terms, Term{Name: t.Name, Spec: spec})
		}
		d.Variables = append(d.Variables, vd)
	}
	for i, r := range cfg.Rules {
		rd := Rule{Label: r.Label}
		if r.Antecedent != nil {
			rd.If = r.Antecedent.String()
			if back, err := rule.Parse(rd.If); err != nil || back != r.Antecedent {
				return nil, fmt.Errorf("%w: rule %d: antecedent %q has no rule text form (variable names must be identifiers and not keywords)",
					ErrDocument, i, rd.If)
			}
		}
		for _, c := range r.Consequents {
			cd := Consequent{Output: c.Output, Term: c.Term}
			if c.Weight != 1 {
				w := c.Weight
				cd.Weight = &w
			}
			rd.Then = append(rd.Then, cd)
		}
		d.Rules = append(d.Rules, rd)
	}

	return d, nil
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}

	return buf.Bytes(), nil
}
