package catalog

import (
	"fmt"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
)

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the inclusive bounds.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Expectation is either an exact expected value or an inclusive range.
// Exactly one of the two fields is set.
type Expectation struct {
	Exact *models.Value
	Range *Range
}

// Matches reports whether a user value satisfies the expectation.
func (e Expectation) Matches(v models.Value) bool {
	if e.Range != nil {
		return v.Kind == models.KindNumber && e.Range.Contains(v.Number)
	}
	if e.Exact != nil {
		return v.Equal(*e.Exact)
	}
	return false
}

// Profile is one immutable reference disease pattern: expected symptom
// values, expected lab ranges or outcomes, and expected vitals ranges.
type Profile struct {
	Name     string
	Symptoms map[string]models.Value
	Tests    map[string]Expectation
	Vitals   map[string]Range
}

// Catalog is an ordered list of disease profiles. Declaration order is
// significant: the scorer breaks ties by it.
type Catalog struct {
	profiles []Profile
}

// New creates a catalog from an ordered profile list.
func New(profiles []Profile) *Catalog {
	return &Catalog{profiles: profiles}
}

// Profiles returns the profiles in declaration order.
func (c *Catalog) Profiles() []Profile {
	return c.profiles
}

// Len returns the number of profiles.
func (c *Catalog) Len() int {
	return len(c.profiles)
}

// valueFromAny converts a decoded JSON/YAML scalar into a models.Value.
func valueFromAny(raw any) (models.Value, error) {
	switch v := raw.(type) {
	case bool:
		return models.BoolValue(v), nil
	case float64:
		return models.NumberValue(v), nil
	case int:
		return models.NumberValue(float64(v)), nil
	case string:
		return models.StringValue(v), nil
	}
	return models.Value{}, fmt.Errorf("unsupported expectation value %v (%T)", raw, raw)
}

// rangeFromAny converts a decoded two-element list into a Range.
func rangeFromAny(raw []any) (Range, error) {
	if len(raw) != 2 {
		return Range{}, fmt.Errorf("range must have exactly 2 elements, got %d", len(raw))
	}
	min, err := numberFromAny(raw[0])
	if err != nil {
		return Range{}, err
	}
	max, err := numberFromAny(raw[1])
	if err != nil {
		return Range{}, err
	}
	return Range{Min: min, Max: max}, nil
}

// expectationFromAny converts a decoded scalar or two-element list into an
// Expectation.
func expectationFromAny(raw any) (Expectation, error) {
	if list, ok := raw.([]any); ok {
		r, err := rangeFromAny(list)
		if err != nil {
			return Expectation{}, err
		}
		return Expectation{Range: &r}, nil
	}
	v, err := valueFromAny(raw)
	if err != nil {
		return Expectation{}, err
	}
	return Expectation{Exact: &v}, nil
}

func numberFromAny(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("expected number, got %v (%T)", raw, raw)
}
