package predictor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestPredict_DengueFirst(t *testing.T) {
	record := &models.UserData{}
	record.Symptoms.Fever = true
	record.Symptoms.Rash = true
	record.Symptoms.RecentTravel = true
	record.TestResults.Dengue = boolPtr(true)
	record.TestResults.Platelets = floatPtr(80000)

	predictions := Predict(record)

	require.NotEmpty(t, predictions)
	assert.Equal(t, "Dengue", predictions[0].Disease)
	assert.Equal(t, 75, predictions[0].Confidence)
	assert.Contains(t, strings.ToLower(predictions[0].Reasoning), "platelets")
}

func TestPredict_DengueRequiresLowPlatelets(t *testing.T) {
	record := &models.UserData{}
	record.Symptoms.Fever = true
	record.Symptoms.Rash = true
	record.Symptoms.RecentTravel = true
	record.TestResults.Dengue = boolPtr(true)
	record.TestResults.Platelets = floatPtr(250000)

	for _, p := range Predict(record) {
		assert.NotEqual(t, "Dengue", p.Disease)
	}
}

func TestPredict_AbsentPlateletsDefaultBlocksDengue(t *testing.T) {
	// absent platelet count defaults to 200000, above the dengue threshold
	record := &models.UserData{}
	record.Symptoms.Fever = true
	record.Symptoms.Rash = true
	record.Symptoms.RecentTravel = true
	record.TestResults.Dengue = boolPtr(true)

	for _, p := range Predict(record) {
		assert.NotEqual(t, "Dengue", p.Disease)
	}
}

func TestPredict_ViralFever(t *testing.T) {
	record := &models.UserData{}
	record.Symptoms.Fever = true
	record.Symptoms.Fatigue = true
	record.Symptoms.Headache = true

	predictions := Predict(record)

	require.Len(t, predictions, 1)
	assert.Equal(t, "Viral Fever", predictions[0].Disease)
	assert.Equal(t, 60, predictions[0].Confidence)
}

func TestPredict_ViralFeverBlockedByPositiveMalaria(t *testing.T) {
	record := &models.UserData{}
	record.Symptoms.Fever = true
	record.Symptoms.Fatigue = true
	record.Symptoms.Headache = true
	record.Symptoms.RecentTravel = true
	record.TestResults.Malaria = boolPtr(true)

	predictions := Predict(record)

	require.Len(t, predictions, 1)
	assert.Equal(t, "Malaria", predictions[0].Disease)
	assert.Equal(t, 70, predictions[0].Confidence)
}

func TestPredict_MultipleRulesSortedByConfidence(t *testing.T) {
	record := &models.UserData{}
	record.Symptoms.Fever = true
	record.Symptoms.Rash = true
	record.Symptoms.RecentTravel = true
	record.Symptoms.Nausea = true
	record.Symptoms.Diarrhea = true
	record.TestResults.Dengue = boolPtr(true)
	record.TestResults.Typhoid = boolPtr(true)
	record.TestResults.Platelets = floatPtr(80000)

	predictions := Predict(record)

	require.Len(t, predictions, 2)
	assert.Equal(t, "Dengue", predictions[0].Disease)
	assert.Equal(t, "Typhoid", predictions[1].Disease)
	assert.Greater(t, predictions[0].Confidence, predictions[1].Confidence)
}

func TestPredict_CommonColdFallback(t *testing.T) {
	record := &models.UserData{}
	record.Symptoms.Cough = true

	predictions := Predict(record)

	require.Len(t, predictions, 1)
	assert.Equal(t, "Common Cold", predictions[0].Disease)
	assert.Equal(t, 40, predictions[0].Confidence)
	assert.NotEmpty(t, predictions[0].Reasoning)
}

func TestSuggestions_FieldChecks(t *testing.T) {
	record := &models.UserData{}
	record.BasicInfo.Temperature = floatPtr(39.5)
	record.Symptoms.Fever = true
	record.TestResults.WBC = floatPtr(9000)

	suggestions := Suggestions(record)

	assert.Equal(t, []string{
		"Monitor temperature closely",
		"Stay hydrated and rest",
		"Consult a healthcare professional for proper diagnosis",
		"Follow up with additional tests if recommended",
	}, suggestions)
}

func TestSuggestions_AlwaysRecommendsProfessional(t *testing.T) {
	suggestions := Suggestions(&models.UserData{})

	assert.Equal(t, []string{
		"Consult a healthcare professional for proper diagnosis",
	}, suggestions)
}

func TestFormatReport_Structure(t *testing.T) {
	record := &models.UserData{}
	record.Symptoms.Fever = true
	record.Symptoms.Fatigue = true
	record.Symptoms.Headache = true

	report := FormatReport(record)

	assert.Contains(t, report, "Top Possible Conditions:")
	assert.Contains(t, report, "1. Viral Fever – 60%")
	assert.Contains(t, report, "Suggested Actions:")
	assert.Contains(t, report, "- Stay hydrated and rest")
}
