package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge_ValidRange(t *testing.T) {
	for _, age := range []int{0, 1, 28, 150} {
		got, err := Age(float64(age))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, age, *got)
	}
}

func TestAge_NumericString(t *testing.T) {
	got, err := Age("42")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 42, *got)
}

func TestAge_OutOfRange(t *testing.T) {
	for _, age := range []float64{-1, 151, 1000} {
		_, err := Age(age)
		assert.Error(t, err)
	}
}

func TestAge_NotANumber(t *testing.T) {
	_, err := Age("twenty")
	assert.Error(t, err)
}

func TestAge_Absent(t *testing.T) {
	got, err := Age(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Age("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWeight_Bounds(t *testing.T) {
	got, err := Weight(75.5)
	require.NoError(t, err)
	assert.Equal(t, 75.5, *got)

	// lower bound is exclusive
	_, err = Weight(1.0)
	assert.Error(t, err)

	_, err = Weight(500.1)
	assert.Error(t, err)

	got, err = Weight(500.0)
	require.NoError(t, err)
	assert.Equal(t, 500.0, *got)
}

func TestTemperature_Bounds(t *testing.T) {
	got, err := Temperature("38.5")
	require.NoError(t, err)
	assert.Equal(t, 38.5, *got)

	_, err = Temperature(29.9)
	assert.Error(t, err)

	_, err = Temperature(50.1)
	assert.Error(t, err)
}

func TestGender_Canonicalized(t *testing.T) {
	for _, input := range []string{"m", "M", " m "} {
		got, err := Gender(input)
		require.NoError(t, err)
		assert.Equal(t, "M", *got)
	}

	got, err := Gender("f")
	require.NoError(t, err)
	assert.Equal(t, "F", *got)

	_, err = Gender("male")
	assert.Error(t, err)
}

func TestDuration_Formats(t *testing.T) {
	for _, input := range []string{"3 days", "2 weeks", "5", "1 month", "12 hours", "4days"} {
		got, err := Duration(input)
		require.NoError(t, err, "input %q", input)
		require.NotNil(t, got)
	}

	_, err := Duration("three days")
	assert.Error(t, err)
}

func TestDuration_SuspiciousInputRejected(t *testing.T) {
	for _, input := range []string{
		"<script>alert(1)</script>",
		"3 days <b>",
		"javascript:void(0)",
		"onload=payload",
	} {
		_, err := Duration(input)
		require.Error(t, err, "input %q", input)
		_, isSecurity := err.(*SecurityError)
		assert.True(t, isSecurity, "input %q should be a security rejection", input)
	}
}

func TestSanitizeString_CollapsesWhitespaceAndTruncates(t *testing.T) {
	got, err := SanitizeString("  a   b \t c  ", 0)
	require.NoError(t, err)
	assert.Equal(t, "a b c", got)

	got, err = SanitizeString("abcdef", 3)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestCoughType_Canonicalized(t *testing.T) {
	got, err := CoughType("DRY")
	require.NoError(t, err)
	assert.Equal(t, "dry", *got)

	got, err = CoughType("Productive")
	require.NoError(t, err)
	assert.Equal(t, "productive", *got)

	_, err = CoughType("wet")
	assert.Error(t, err)
}

func TestBoolean_Tokens(t *testing.T) {
	for _, input := range []any{true, "y", "YES", "true", "1", 1} {
		got, err := Boolean(input)
		require.NoError(t, err, "input %v", input)
		assert.True(t, got)
	}
	for _, input := range []any{false, "n", "No", "false", "0", 0} {
		got, err := Boolean(input)
		require.NoError(t, err, "input %v", input)
		assert.False(t, got)
	}

	_, err := Boolean("maybe")
	assert.Error(t, err)
}

func TestTestOutcome_PositiveNegative(t *testing.T) {
	got, err := TestOutcome("positive", "Dengue")
	require.NoError(t, err)
	assert.True(t, *got)

	got, err = TestOutcome("Negative", "Malaria")
	require.NoError(t, err)
	assert.False(t, *got)

	got, err = TestOutcome(true, "Typhoid")
	require.NoError(t, err)
	assert.True(t, *got)

	_, err = TestOutcome("inconclusive", "Dengue")
	assert.Error(t, err)

	got, err = TestOutcome(nil, "Dengue")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLabValue_NonNegative(t *testing.T) {
	got, err := LabValue("3500", "WBC")
	require.NoError(t, err)
	assert.Equal(t, 3500.0, *got)

	_, err = LabValue(-1.0, "WBC")
	assert.Error(t, err)

	_, err = LabValue("high", "WBC")
	assert.Error(t, err)
}
