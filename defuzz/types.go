// SPDX-License-Identifier: MIT
package defuzz

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptySet indicates an aggregated set that is zero everywhere (or
	// has no samples at all): no rule concluded anything.
	ErrEmptySet = errors.New("defuzz: fuzzy set is empty")

	// ErrZeroArea indicates an area-based method met a set whose
	// integrated area is zero although some degree is positive.
	ErrZeroArea = errors.New("defuzz: fuzzy set has zero area")

	// ErrLengthMismatch indicates len(xs) != len(mu).
	ErrLengthMismatch = errors.New("defuzz: points and degrees differ in length")

	// ErrUnknownMethod indicates an unsupported Method value or name.
	ErrUnknownMethod = errors.New("defuzz: unknown method")
)

// Method selects a defuzzification strategy. The zero value is Centroid.
type Method int

const (
	// Centroid returns the centre of gravity (default).
	Centroid Method = iota

	// Bisector returns the point that halves the area.
	Bisector

	// MeanOfMaximum returns the mean of all maximising points ("mom").
	MeanOfMaximum

	// SmallestOfMaximum returns the smallest maximising point ("som").
	SmallestOfMaximum

	// LargestOfMaximum returns the largest maximising point ("lom").
	LargestOfMaximum
)

var methodNames = [...]string{
	Centroid:          "centroid",
	Bisector:          "bisector",
	MeanOfMaximum:     "mom",
	SmallestOfMaximum: "som",
	LargestOfMaximum:  "lom",
}

// Methods lists every supported method in declaration order.
func Methods() []Method {
	return []Method{Centroid, Bisector, MeanOfMaximum, SmallestOfMaximum, LargestOfMaximum}
}

// String returns the short name used in configuration files.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// Valid reports whether m is one of the declared methods.
func (m Method) Valid() bool { return m >= 0 && int(m) < len(methodNames) }

// ParseMethod maps a name to a Method. Matching is case-insensitive and
// also accepts the long forms ("mean_of_maximum", "smallest_of_maximum",
// "largest_of_maximum") and "centre". An empty name yields Centroid.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "centroid", "centre", "center", "cog":
		return Centroid, nil
	case "bisector":
		return Bisector, nil
	case "mom", "mean_of_maximum":
		return MeanOfMaximum, nil
	case "som", "smallest_of_maximum":
		return SmallestOfMaximum, nil
	case "lom", "largest_of_maximum":
		return LargestOfMaximum, nil
	default:
		return Centroid, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
	}
}

// UnmarshalYAML decodes a method name scalar.
func (m *Method) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: method must be a scalar: %w", value.Line, ErrUnknownMethod)
	}
	parsed, err := ParseMethod(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = parsed

	return nil
}

// MarshalYAML encodes the method by name.
func (m Method) MarshalYAML() (interface{}, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%d: %w", int(m), ErrUnknownMethod)
	}

	return m.String(), nil
}
