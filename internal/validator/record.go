package validator

import (
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
)

// RawData is the untyped questionnaire input as received from a presentation
// layer (JSON body, CLI prompts, form widgets) before validation.
type RawData struct {
	BasicInfo   map[string]any `json:"basic_info"`
	Symptoms    map[string]any `json:"symptoms"`
	TestResults map[string]any `json:"test_results"`
}

var symptomFlags = []string{
	"fever", "fatigue", "cough", "headache", "body_pain",
	"nausea", "vomiting", "diarrhea", "rash", "sore_throat",
	"shortness_of_breath", "chest_pain", "confusion", "recent_travel",
	"medication", "appetite_change", "urine_change", "weight_loss",
	"night_sweats", "exposure",
}

var testNames = []string{
	"WBC", "Platelets", "Hemoglobin", "Blood_Sugar", "ALT", "Creatinine",
	"Malaria", "Dengue", "Typhoid",
}

// UserData validates a complete raw questionnaire into a canonical record.
// Every field is validated independently; the first violation fails the whole
// record with the offending field named in the error.
func UserData(raw RawData) (models.UserData, error) {
	var record models.UserData

	if err := validateBasicInfo(raw.BasicInfo, &record.BasicInfo); err != nil {
		return models.UserData{}, err
	}
	if err := validateSymptoms(raw.Symptoms, &record.Symptoms); err != nil {
		return models.UserData{}, err
	}
	if err := validateTestResults(raw.TestResults, &record.TestResults); err != nil {
		return models.UserData{}, err
	}

	return record, nil
}

func validateBasicInfo(raw map[string]any, out *models.BasicInfo) error {
	var err error

	if out.Age, err = Age(raw["age"]); err != nil {
		return named("basic_info.age", err)
	}
	if out.Gender, err = Gender(raw["gender"]); err != nil {
		return named("basic_info.gender", err)
	}
	if out.Weight, err = Weight(raw["weight"]); err != nil {
		return named("basic_info.weight", err)
	}
	if out.Temperature, err = Temperature(raw["temperature"]); err != nil {
		return named("basic_info.temperature", err)
	}
	if out.Duration, err = Duration(raw["duration"]); err != nil {
		return named("basic_info.duration", err)
	}

	out.ChronicDiseases = false
	if v, present := raw["chronic_diseases"]; present && v != nil {
		if out.ChronicDiseases, err = Boolean(v); err != nil {
			return named("basic_info.chronic_diseases", err)
		}
	}

	return nil
}

func validateSymptoms(raw map[string]any, out *models.Symptoms) error {
	for _, name := range symptomFlags {
		flag := false
		if v, present := raw[name]; present && v != nil {
			var err error
			if flag, err = Boolean(v); err != nil {
				return named("symptoms."+name, err)
			}
		}
		setSymptomFlag(out, name, flag)
	}

	var err error
	// fever_duration follows the same positive-integer rules as age
	if out.FeverDuration, err = Age(raw["fever_duration"]); err != nil {
		return named("symptoms.fever_duration", err)
	}
	if out.CoughType, err = CoughType(raw["cough_type"]); err != nil {
		return named("symptoms.cough_type", err)
	}

	return nil
}

func validateTestResults(raw map[string]any, out *models.TestResults) error {
	for _, name := range testNames {
		value := raw[name]
		if booleanTests[name] {
			outcome, err := TestOutcome(value, name)
			if err != nil {
				return named("test_results."+name, err)
			}
			setTestOutcome(out, name, outcome)
			continue
		}
		lab, err := LabValue(value, name)
		if err != nil {
			return named("test_results."+name, err)
		}
		setLabValue(out, name, lab)
	}
	return nil
}

func setSymptomFlag(s *models.Symptoms, name string, value bool) {
	switch name {
	case "fever":
		s.Fever = value
	case "fatigue":
		s.Fatigue = value
	case "cough":
		s.Cough = value
	case "headache":
		s.Headache = value
	case "body_pain":
		s.BodyPain = value
	case "nausea":
		s.Nausea = value
	case "vomiting":
		s.Vomiting = value
	case "diarrhea":
		s.Diarrhea = value
	case "rash":
		s.Rash = value
	case "sore_throat":
		s.SoreThroat = value
	case "shortness_of_breath":
		s.ShortnessOfBreath = value
	case "chest_pain":
		s.ChestPain = value
	case "confusion":
		s.Confusion = value
	case "recent_travel":
		s.RecentTravel = value
	case "medication":
		s.Medication = value
	case "appetite_change":
		s.AppetiteChange = value
	case "urine_change":
		s.UrineChange = value
	case "weight_loss":
		s.WeightLoss = value
	case "night_sweats":
		s.NightSweats = value
	case "exposure":
		s.Exposure = value
	}
}

func setTestOutcome(t *models.TestResults, name string, value *bool) {
	switch name {
	case "Malaria":
		t.Malaria = value
	case "Dengue":
		t.Dengue = value
	case "Typhoid":
		t.Typhoid = value
	}
}

func setLabValue(t *models.TestResults, name string, value *float64) {
	switch name {
	case "WBC":
		t.WBC = value
	case "Platelets":
		t.Platelets = value
	case "Hemoglobin":
		t.Hemoglobin = value
	case "Blood_Sugar":
		t.BloodSugar = value
	case "ALT":
		t.ALT = value
	case "Creatinine":
		t.Creatinine = value
	}
}
