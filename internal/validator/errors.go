package validator

import "fmt"

// ValidationError reports a bad field value, type, or range. Field identifies
// the offending field using its section-qualified name, e.g. "basic_info.age".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SecurityError reports suspicious string content (HTML tags, script-like
// substrings, control characters). It is a hard validation failure: input is
// rejected, never silently stripped.
type SecurityError struct {
	Field   string
	Message string
}

func (e *SecurityError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// named attaches a field name to a validation or security error that does not
// carry one yet.
func named(field string, err error) error {
	switch e := err.(type) {
	case *ValidationError:
		if e.Field == "" {
			e.Field = field
		}
		return e
	case *SecurityError:
		if e.Field == "" {
			e.Field = field
		}
		return e
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
