package triage

import (
	"go.uber.org/zap"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
)

// EmergencyMessage is surfaced whenever at least one rule triggers.
const EmergencyMessage = "Seek immediate medical attention"

// Checker evaluates the emergency rule list against canonical records.
// It is a pure predicate: no side effects beyond logging, deterministic.
type Checker struct {
	rules  []Rule
	logger *zap.Logger
}

// NewChecker creates a checker over a fixed rule list.
func NewChecker(rules []Rule, logger *zap.Logger) *Checker {
	return &Checker{
		rules:  rules,
		logger: logger,
	}
}

// Check evaluates every rule (rules are independent, no cross-rule
// short-circuit) and returns the triggered reasons.
func (c *Checker) Check(record *models.UserData) models.EmergencyAlert {
	var reasons []string

	for _, rule := range c.rules {
		if c.evaluateRule(rule, record) {
			reasons = append(reasons, rule.Reason)
		}
	}

	isEmergency := len(reasons) > 0
	if isEmergency {
		c.logger.Warn("Emergency symptoms detected",
			zap.Strings("reasons", reasons),
		)
	}

	alert := models.EmergencyAlert{
		IsEmergency: isEmergency,
		Reasons:     reasons,
	}
	if isEmergency {
		alert.Message = EmergencyMessage
	}
	return alert
}

// evaluateRule checks the conjunction of a rule's conditions left to right.
func (c *Checker) evaluateRule(rule Rule, record *models.UserData) bool {
	for _, cond := range rule.Conditions {
		if !evaluateCondition(cond, record) {
			return false
		}
	}
	return len(rule.Conditions) > 0
}

// evaluateCondition interprets one condition triple. Ordering comparisons on
// a missing field evaluate to false; equality treats a missing field as not
// equal to any expected value.
func evaluateCondition(cond Condition, record *models.UserData) bool {
	var (
		actual models.Value
		ok     bool
	)
	switch cond.Field.Section {
	case SectionVitals:
		actual, ok = record.BasicInfo.Value(cond.Field.Name)
	case SectionSymptoms:
		actual, ok = record.Symptoms.Value(cond.Field.Name)
	}

	switch cond.Op {
	case OpEqual:
		return ok && actual.Equal(cond.Expected)
	case OpNotEqual:
		return !ok || !actual.Equal(cond.Expected)
	case OpGreater:
		return ok && bothNumbers(actual, cond.Expected) && actual.Number > cond.Expected.Number
	case OpLess:
		return ok && bothNumbers(actual, cond.Expected) && actual.Number < cond.Expected.Number
	case OpGreaterOrEqual:
		return ok && bothNumbers(actual, cond.Expected) && actual.Number >= cond.Expected.Number
	case OpLessOrEqual:
		return ok && bothNumbers(actual, cond.Expected) && actual.Number <= cond.Expected.Number
	}
	return false
}

func bothNumbers(a, b models.Value) bool {
	return a.Kind == models.KindNumber && b.Kind == models.KindNumber
}
