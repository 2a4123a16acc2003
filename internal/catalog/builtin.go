package catalog

import (
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
)

// NormalRanges are the reference normal values for the numeric lab tests,
// for display by presentation layers.
var NormalRanges = map[string]Range{
	"WBC":         {Min: 4000, Max: 11000},
	"Platelets":   {Min: 150000, Max: 450000},
	"Hemoglobin":  {Min: 12.0, Max: 16.0}, // general, varies by gender
	"Blood_Sugar": {Min: 70, Max: 140},
	"ALT":         {Min: 7, Max: 56},
	"Creatinine":  {Min: 0.6, Max: 1.2},
}

// Builtin returns the default five-profile catalog.
func Builtin() *Catalog {
	return New([]Profile{
		{
			Name: "Viral Fever",
			Symptoms: map[string]models.Value{
				"fever":           models.BoolValue(true),
				"fatigue":         models.BoolValue(true),
				"headache":        models.BoolValue(true),
				"body_pain":       models.BoolValue(true),
				"sore_throat":     models.BoolValue(true),
				"appetite_change": models.BoolValue(true),
				"fever_duration":  models.NumberValue(3),
			},
			Tests: map[string]Expectation{
				"WBC":         rangeExpectation(4000, 11000), // normal range
				"Platelets":   rangeExpectation(150000, 450000),
				"Hemoglobin":  rangeExpectation(12, 16),
				"Blood_Sugar": rangeExpectation(70, 140),
				"ALT":         rangeExpectation(7, 56),
				"Creatinine":  rangeExpectation(0.6, 1.2),
			},
			Vitals: map[string]Range{
				"temperature": {Min: 37.5, Max: 39.5},
				"duration":    {Min: 1, Max: 7},
			},
		},
		{
			Name: "Dengue",
			Symptoms: map[string]models.Value{
				"fever":          models.BoolValue(true),
				"fatigue":        models.BoolValue(true),
				"headache":       models.BoolValue(true),
				"body_pain":      models.BoolValue(true),
				"nausea":         models.BoolValue(true),
				"rash":           models.BoolValue(true),
				"recent_travel":  models.BoolValue(true),
				"fever_duration": models.NumberValue(5),
			},
			Tests: map[string]Expectation{
				"WBC":         rangeExpectation(2000, 5000),    // low WBC
				"Platelets":   rangeExpectation(20000, 100000), // low platelets
				"Hemoglobin":  rangeExpectation(10, 14),
				"Blood_Sugar": rangeExpectation(70, 140),
				"ALT":         rangeExpectation(30, 100), // elevated
				"Creatinine":  rangeExpectation(0.6, 1.2),
				"Dengue":      exactExpectation(models.BoolValue(true)),
			},
			Vitals: map[string]Range{
				"temperature": {Min: 38, Max: 40},
				"duration":    {Min: 3, Max: 10},
			},
		},
		{
			Name: "Typhoid",
			Symptoms: map[string]models.Value{
				"fever":           models.BoolValue(true),
				"fatigue":         models.BoolValue(true),
				"headache":        models.BoolValue(true),
				"nausea":          models.BoolValue(true),
				"vomiting":        models.BoolValue(true),
				"diarrhea":        models.BoolValue(true),
				"appetite_change": models.BoolValue(true),
				"fever_duration":  models.NumberValue(7),
			},
			Tests: map[string]Expectation{
				"WBC":         rangeExpectation(3000, 8000),
				"Platelets":   rangeExpectation(100000, 300000),
				"Hemoglobin":  rangeExpectation(10, 14),
				"Blood_Sugar": rangeExpectation(70, 140),
				"ALT":         rangeExpectation(20, 80),
				"Creatinine":  rangeExpectation(0.6, 1.2),
				"Typhoid":     exactExpectation(models.BoolValue(true)),
			},
			Vitals: map[string]Range{
				"temperature": {Min: 38, Max: 40.5},
				"duration":    {Min: 5, Max: 14},
			},
		},
		{
			Name: "Malaria",
			Symptoms: map[string]models.Value{
				"fever":          models.BoolValue(true),
				"fatigue":        models.BoolValue(true),
				"headache":       models.BoolValue(true),
				"body_pain":      models.BoolValue(true),
				"nausea":         models.BoolValue(true),
				"vomiting":       models.BoolValue(true),
				"recent_travel":  models.BoolValue(true),
				"fever_duration": models.NumberValue(4),
			},
			Tests: map[string]Expectation{
				"WBC":         rangeExpectation(4000, 12000),
				"Platelets":   rangeExpectation(50000, 150000), // low platelets
				"Hemoglobin":  rangeExpectation(8, 12),         // anemia
				"Blood_Sugar": rangeExpectation(70, 140),
				"ALT":         rangeExpectation(20, 60),
				"Creatinine":  rangeExpectation(0.6, 1.2),
				"Malaria":     exactExpectation(models.BoolValue(true)),
			},
			Vitals: map[string]Range{
				"temperature": {Min: 38, Max: 40},
				"duration":    {Min: 2, Max: 10},
			},
		},
		{
			Name: "COVID-19",
			Symptoms: map[string]models.Value{
				"fever":               models.BoolValue(true),
				"cough":               models.BoolValue(true),
				"fatigue":             models.BoolValue(true),
				"shortness_of_breath": models.BoolValue(true),
				"sore_throat":         models.BoolValue(true),
				"headache":            models.BoolValue(true),
				"body_pain":           models.BoolValue(true),
				"loss_of_taste_smell": models.BoolValue(true),
				"fever_duration":      models.NumberValue(5),
				"cough_type":          models.StringValue("dry"),
			},
			Tests: map[string]Expectation{
				"WBC":         rangeExpectation(3000, 10000),
				"Platelets":   rangeExpectation(100000, 400000),
				"Hemoglobin":  rangeExpectation(11, 15),
				"Blood_Sugar": rangeExpectation(70, 140),
				"ALT":         rangeExpectation(10, 50),
				"Creatinine":  rangeExpectation(0.6, 1.2),
			},
			Vitals: map[string]Range{
				"temperature": {Min: 37.5, Max: 39},
				"duration":    {Min: 3, Max: 14},
			},
		},
	})
}

func rangeExpectation(min, max float64) Expectation {
	return Expectation{Range: &Range{Min: min, Max: max}}
}

func exactExpectation(v models.Value) Expectation {
	return Expectation{Exact: &v}
}
