package triage

import (
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
)

// Section selects which record section a condition field lives in.
type Section int

const (
	SectionVitals Section = iota
	SectionSymptoms
)

// FieldRef identifies one field of a canonical record.
type FieldRef struct {
	Section Section
	Name    string
}

// Operator is a typed comparison operator for rule conditions.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpGreater
	OpLess
	OpGreaterOrEqual
	OpLessOrEqual
)

// Condition is one (field, operator, expected-value) triple.
type Condition struct {
	Field    FieldRef
	Op       Operator
	Expected models.Value
}

// Rule is a conjunction of conditions with a human-readable reason reported
// when every condition holds.
type Rule struct {
	Conditions []Condition
	Reason     string
}

// VitalsField builds a condition field reference into the basic-info section.
func VitalsField(name string) FieldRef {
	return FieldRef{Section: SectionVitals, Name: name}
}

// SymptomField builds a condition field reference into the symptoms section.
func SymptomField(name string) FieldRef {
	return FieldRef{Section: SectionSymptoms, Name: name}
}

// DefaultRules returns the fixed emergency rule list. Constructed once at
// startup and never mutated.
func DefaultRules() []Rule {
	return []Rule{
		{
			Conditions: []Condition{
				{Field: VitalsField("temperature"), Op: OpGreater, Expected: models.NumberValue(40)},
			},
			Reason: "High fever (>40°C)",
		},
		{
			Conditions: []Condition{
				{Field: SymptomField("confusion"), Op: OpEqual, Expected: models.BoolValue(true)},
				{Field: SymptomField("fever"), Op: OpEqual, Expected: models.BoolValue(true)},
			},
			Reason: "Fever with confusion",
		},
		{
			Conditions: []Condition{
				{Field: SymptomField("shortness_of_breath"), Op: OpEqual, Expected: models.BoolValue(true)},
				{Field: SymptomField("chest_pain"), Op: OpEqual, Expected: models.BoolValue(true)},
			},
			Reason: "Shortness of breath with chest pain",
		},
	}
}
