package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Validation bounds for vitals fields. Weight is exclusive at the lower end.
const (
	MinAge = 0
	MaxAge = 150

	MinWeight = 1.0
	MaxWeight = 500.0

	MinTemperature = 30.0
	MaxTemperature = 50.0

	// MaxInputLength caps sanitized free-form strings.
	MaxInputLength = 1000
)

var (
	durationPattern  = regexp.MustCompile(`(?i)^\d+\s*(days?|weeks?|months?|hours?)?$`)
	genderPattern    = regexp.MustCompile(`(?i)^(M|F)$`)
	coughTypePattern = regexp.MustCompile(`(?i)^(dry|productive)$`)

	// Patterns that cause a hard SecurityError rejection.
	suspiciousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`<[^>]*>`),                // HTML tags
		regexp.MustCompile(`(?i)javascript:`),        // JavaScript injection
		regexp.MustCompile(`(?i)on\w+\s*=`),          // event handlers
		regexp.MustCompile("[\x00-\x1f\x7f-]"), // control characters
	}
)

// SanitizeString rejects string input containing suspicious patterns,
// collapses runs of whitespace, and truncates to maxLength (0 = no limit).
func SanitizeString(input string, maxLength int) (string, error) {
	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(input) {
			return "", &SecurityError{Message: "invalid input detected"}
		}
	}

	sanitized := strings.Join(strings.Fields(input), " ")

	if maxLength > 0 && len(sanitized) > maxLength {
		sanitized = sanitized[:maxLength]
	}

	return sanitized, nil
}

// Age validates an age value. Accepts numbers and numeric strings; returns
// nil for absent input.
func Age(value any) (*int, error) {
	f, ok, err := toFloat(value)
	if err != nil {
		return nil, &ValidationError{Message: "age must be a valid number"}
	}
	if !ok {
		return nil, nil
	}
	age := int(f)
	if age < MinAge || age > MaxAge {
		return nil, &ValidationError{Message: fmt.Sprintf("age must be between %d and %d", MinAge, MaxAge)}
	}
	return &age, nil
}

// Weight validates a weight in kilograms. The lower bound is exclusive.
func Weight(value any) (*float64, error) {
	f, ok, err := toFloat(value)
	if err != nil {
		return nil, &ValidationError{Message: "weight must be a valid number"}
	}
	if !ok {
		return nil, nil
	}
	if f <= MinWeight || f > MaxWeight {
		return nil, &ValidationError{Message: fmt.Sprintf("weight must be between %g and %g kg", MinWeight, MaxWeight)}
	}
	return &f, nil
}

// Temperature validates a body temperature in degrees Celsius.
func Temperature(value any) (*float64, error) {
	f, ok, err := toFloat(value)
	if err != nil {
		return nil, &ValidationError{Message: "temperature must be a valid number"}
	}
	if !ok {
		return nil, nil
	}
	if f < MinTemperature || f > MaxTemperature {
		return nil, &ValidationError{Message: fmt.Sprintf("temperature must be between %g and %g°C", MinTemperature, MaxTemperature)}
	}
	return &f, nil
}

// Gender validates a gender value and canonicalizes it to uppercase M/F.
func Gender(value any) (*string, error) {
	s, ok := stringInput(value)
	if !ok {
		return nil, nil
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if !genderPattern.MatchString(s) {
		return nil, &ValidationError{Message: "gender must be 'M' or 'F'"}
	}
	return &s, nil
}

// Duration validates a free-form duration: a bare integer, optionally
// followed by a time-unit word (days, weeks, months, hours). Input is
// sanitized first, so embedded markup or control characters fail hard.
func Duration(value any) (*string, error) {
	s, ok := stringInput(value)
	if !ok {
		return nil, nil
	}
	sanitized, err := SanitizeString(s, MaxInputLength)
	if err != nil {
		return nil, err
	}
	if !durationPattern.MatchString(sanitized) {
		return nil, &ValidationError{Message: "duration must be a number or include time units (days, weeks, etc.)"}
	}
	return &sanitized, nil
}

// CoughType validates a cough type and canonicalizes it to lowercase.
func CoughType(value any) (*string, error) {
	s, ok := stringInput(value)
	if !ok {
		return nil, nil
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if !coughTypePattern.MatchString(s) {
		return nil, &ValidationError{Message: "cough type must be 'dry' or 'productive'"}
	}
	return &s, nil
}

// Boolean converts a value to bool. Accepts native booleans and the token
// sets y/yes/true/1 and n/no/false/0, case-insensitive.
func Boolean(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "y", "yes", "true", "1":
			return true, nil
		case "n", "no", "false", "0":
			return false, nil
		}
	case float64:
		if v == 1 {
			return true, nil
		}
		if v == 0 {
			return false, nil
		}
	case int:
		if v == 1 {
			return true, nil
		}
		if v == 0 {
			return false, nil
		}
	}
	return false, &ValidationError{Message: "value must be a valid boolean (y/n, yes/no, true/false, 1/0)"}
}

// booleanTests are the test outcomes that follow the positive/negative
// convention instead of the numeric one.
var booleanTests = map[string]bool{
	"Malaria": true,
	"Dengue":  true,
	"Typhoid": true,
}

// TestOutcome validates a positive/negative test result. In addition to the
// usual boolean tokens it accepts "positive" and "negative".
func TestOutcome(value any, testName string) (*bool, error) {
	if value == nil {
		return nil, nil
	}
	if s, ok := value.(string); ok {
		trimmed := strings.ToLower(strings.TrimSpace(s))
		if trimmed == "" {
			return nil, nil
		}
		switch trimmed {
		case "positive", "true", "1", "yes":
			b := true
			return &b, nil
		case "negative", "false", "0", "no":
			b := false
			return &b, nil
		}
		return nil, &ValidationError{Message: fmt.Sprintf("%s must be positive/negative", testName)}
	}
	if b, ok := value.(bool); ok {
		return &b, nil
	}
	return nil, &ValidationError{Message: fmt.Sprintf("%s must be positive/negative", testName)}
}

// LabValue validates a numeric lab value: non-negative float or absent.
func LabValue(value any, testName string) (*float64, error) {
	f, ok, err := toFloat(value)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("%s must be a valid number", testName)}
	}
	if !ok {
		return nil, nil
	}
	if f < 0 {
		return nil, &ValidationError{Message: fmt.Sprintf("%s must not be negative", testName)}
	}
	return &f, nil
}

// toFloat converts numeric input (numbers or numeric-looking strings) to
// float64. ok=false means the input was absent (nil or empty string).
func toFloat(value any) (f float64, ok bool, err error) {
	switch v := value.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false, nil
		}
		parsed, parseErr := strconv.ParseFloat(trimmed, 64)
		if parseErr != nil {
			return 0, false, parseErr
		}
		return parsed, true, nil
	}
	return 0, false, fmt.Errorf("unsupported type %T", value)
}

// stringInput normalizes raw input to a string. ok=false means absent.
func stringInput(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		if strings.TrimSpace(v) == "" {
			return "", false
		}
		return v, true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
