package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
)

func TestBuiltin_ProfileOrder(t *testing.T) {
	cat := Builtin()

	require.Equal(t, 5, cat.Len())

	names := make([]string, 0, cat.Len())
	for _, p := range cat.Profiles() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Viral Fever", "Dengue", "Typhoid", "Malaria", "COVID-19"}, names)
}

func TestBuiltin_DengueExpectations(t *testing.T) {
	cat := Builtin()
	dengue := cat.Profiles()[1]

	assert.Equal(t, models.BoolValue(true), dengue.Symptoms["rash"])
	assert.Equal(t, models.NumberValue(5), dengue.Symptoms["fever_duration"])

	platelets := dengue.Tests["Platelets"]
	require.NotNil(t, platelets.Range)
	assert.Equal(t, Range{Min: 20000, Max: 100000}, *platelets.Range)

	outcome := dengue.Tests["Dengue"]
	require.NotNil(t, outcome.Exact)
	assert.Equal(t, models.BoolValue(true), *outcome.Exact)

	assert.Equal(t, Range{Min: 38, Max: 40}, dengue.Vitals["temperature"])
	assert.Equal(t, Range{Min: 3, Max: 10}, dengue.Vitals["duration"])
}

func TestRange_ContainsInclusive(t *testing.T) {
	r := Range{Min: 4000, Max: 11000}

	assert.True(t, r.Contains(4000))
	assert.True(t, r.Contains(11000))
	assert.True(t, r.Contains(7000))
	assert.False(t, r.Contains(3999.9))
	assert.False(t, r.Contains(11000.1))
}

func TestExpectation_Matches(t *testing.T) {
	rangeExp := Expectation{Range: &Range{Min: 1, Max: 10}}
	assert.True(t, rangeExp.Matches(models.NumberValue(5)))
	assert.False(t, rangeExp.Matches(models.NumberValue(11)))
	assert.False(t, rangeExp.Matches(models.BoolValue(true)))

	exact := models.BoolValue(true)
	exactExp := Expectation{Exact: &exact}
	assert.True(t, exactExp.Matches(models.BoolValue(true)))
	assert.False(t, exactExp.Matches(models.BoolValue(false)))
	assert.False(t, exactExp.Matches(models.NumberValue(1)))
}

func TestNormalRanges_CoverNumericTests(t *testing.T) {
	for _, name := range []string{"WBC", "Platelets", "Hemoglobin", "Blood_Sugar", "ALT", "Creatinine"} {
		r, ok := NormalRanges[name]
		require.True(t, ok, "missing normal range for %s", name)
		assert.Less(t, r.Min, r.Max)
	}
}
