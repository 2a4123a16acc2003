package predictor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
)

// maxPredictions caps the returned list.
const maxPredictions = 3

// defaultPlatelets stands in for an absent platelet count in the dengue rule.
const defaultPlatelets = 200000

// Predict returns up to three rule-based disease predictions with fixed
// confidence constants. The rules are independent of the disease catalog and
// of any external analysis backend; when none matches, a single generic
// "Common Cold" entry is returned.
func Predict(record *models.UserData) []models.Prediction {
	symptoms := &record.Symptoms
	tests := &record.TestResults

	var predictions []models.Prediction

	platelets := float64(defaultPlatelets)
	if tests.Platelets != nil {
		platelets = *tests.Platelets
	}

	// Dengue rules
	if symptoms.Fever && symptoms.Rash && symptoms.RecentTravel &&
		positive(tests.Dengue) && platelets < 100000 {
		predictions = append(predictions, models.Prediction{
			Disease:    "Dengue",
			Confidence: 75,
			Reasoning:  "High fever, rash, low platelets, positive dengue test",
		})
	}

	// Viral Fever rules
	if symptoms.Fever && symptoms.Fatigue && symptoms.Headache &&
		!positive(tests.Dengue) && !positive(tests.Malaria) {
		predictions = append(predictions, models.Prediction{
			Disease:    "Viral Fever",
			Confidence: 60,
			Reasoning:  "Common flu-like symptoms with normal test results",
		})
	}

	// Malaria rules
	if symptoms.Fever && symptoms.RecentTravel && positive(tests.Malaria) {
		predictions = append(predictions, models.Prediction{
			Disease:    "Malaria",
			Confidence: 70,
			Reasoning:  "Fever with travel history and positive malaria test",
		})
	}

	// Typhoid rules
	if symptoms.Fever && symptoms.Nausea && symptoms.Diarrhea && positive(tests.Typhoid) {
		predictions = append(predictions, models.Prediction{
			Disease:    "Typhoid",
			Confidence: 65,
			Reasoning:  "Fever with gastrointestinal symptoms and positive test",
		})
	}

	// Default fallback
	if len(predictions) == 0 {
		predictions = append(predictions, models.Prediction{
			Disease:    "Common Cold",
			Confidence: 40,
			Reasoning:  "Mild symptoms, could be various causes",
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})

	if len(predictions) > maxPredictions {
		predictions = predictions[:maxPredictions]
	}
	return predictions
}

// Suggestions returns deterministic suggested-action lines based on simple
// field checks.
func Suggestions(record *models.UserData) []string {
	var suggestions []string

	if record.BasicInfo.Temperature != nil && *record.BasicInfo.Temperature > 39 {
		suggestions = append(suggestions, "Monitor temperature closely")
	}
	if record.Symptoms.Fever {
		suggestions = append(suggestions, "Stay hydrated and rest")
	}
	suggestions = append(suggestions, "Consult a healthcare professional for proper diagnosis")
	if record.TestResults.HasAnyResult() {
		suggestions = append(suggestions, "Follow up with additional tests if recommended")
	}

	return suggestions
}

// FormatReport renders predictions and suggestions as the canned analysis
// text used when no external analysis backend is reachable.
func FormatReport(record *models.UserData) string {
	var b strings.Builder

	b.WriteString("Top Possible Conditions:\n")
	for i, p := range Predict(record) {
		fmt.Fprintf(&b, "%d. %s – %d%%\n", i+1, p.Disease, p.Confidence)
		fmt.Fprintf(&b, "   Reasoning: %s\n", p.Reasoning)
	}

	b.WriteString("\nSuggested Actions:\n")
	for _, s := range Suggestions(record) {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	return b.String()
}

func positive(outcome *bool) bool {
	return outcome != nil && *outcome
}
