package models

// BasicInfo holds the demographic and vitals section of a questionnaire.
// All fields except ChronicDiseases are nullable: nil means "unknown".
type BasicInfo struct {
	Age             *int     `json:"age"`
	Gender          *string  `json:"gender"`
	Weight          *float64 `json:"weight"`
	Temperature     *float64 `json:"temperature"`
	Duration        *string  `json:"duration"`
	ChronicDiseases bool     `json:"chronic_diseases"`
}

// Symptoms holds the fixed symptom checklist. The boolean flags default to
// false when unspecified; FeverDuration and CoughType are detail fields that
// are only present when the corresponding flag is set.
type Symptoms struct {
	Fever             bool `json:"fever"`
	Fatigue           bool `json:"fatigue"`
	Cough             bool `json:"cough"`
	Headache          bool `json:"headache"`
	BodyPain          bool `json:"body_pain"`
	Nausea            bool `json:"nausea"`
	Vomiting          bool `json:"vomiting"`
	Diarrhea          bool `json:"diarrhea"`
	Rash              bool `json:"rash"`
	SoreThroat        bool `json:"sore_throat"`
	ShortnessOfBreath bool `json:"shortness_of_breath"`
	ChestPain         bool `json:"chest_pain"`
	Confusion         bool `json:"confusion"`
	RecentTravel      bool `json:"recent_travel"`
	Medication        bool `json:"medication"`
	AppetiteChange    bool `json:"appetite_change"`
	UrineChange       bool `json:"urine_change"`
	WeightLoss        bool `json:"weight_loss"`
	NightSweats       bool `json:"night_sweats"`
	Exposure          bool `json:"exposure"`

	FeverDuration *int    `json:"fever_duration"`
	CoughType     *string `json:"cough_type"`
}

// TestResults holds lab values (nullable floats) and the three
// positive/negative test outcomes (nullable booleans).
type TestResults struct {
	WBC        *float64 `json:"WBC"`
	Platelets  *float64 `json:"Platelets"`
	Hemoglobin *float64 `json:"Hemoglobin"`
	BloodSugar *float64 `json:"Blood_Sugar"`
	ALT        *float64 `json:"ALT"`
	Creatinine *float64 `json:"Creatinine"`
	Malaria    *bool    `json:"Malaria"`
	Dengue     *bool    `json:"Dengue"`
	Typhoid    *bool    `json:"Typhoid"`
}

// UserData is the canonical, validated questionnaire record.
type UserData struct {
	BasicInfo   BasicInfo   `json:"basic_info"`
	Symptoms    Symptoms    `json:"symptoms"`
	TestResults TestResults `json:"test_results"`
}

// Value returns the symptom value for the given field name. Boolean flags are
// always present (false when unspecified); detail fields are present only
// when set. Unknown names report ok=false.
func (s *Symptoms) Value(name string) (Value, bool) {
	switch name {
	case "fever":
		return BoolValue(s.Fever), true
	case "fatigue":
		return BoolValue(s.Fatigue), true
	case "cough":
		return BoolValue(s.Cough), true
	case "headache":
		return BoolValue(s.Headache), true
	case "body_pain":
		return BoolValue(s.BodyPain), true
	case "nausea":
		return BoolValue(s.Nausea), true
	case "vomiting":
		return BoolValue(s.Vomiting), true
	case "diarrhea":
		return BoolValue(s.Diarrhea), true
	case "rash":
		return BoolValue(s.Rash), true
	case "sore_throat":
		return BoolValue(s.SoreThroat), true
	case "shortness_of_breath":
		return BoolValue(s.ShortnessOfBreath), true
	case "chest_pain":
		return BoolValue(s.ChestPain), true
	case "confusion":
		return BoolValue(s.Confusion), true
	case "recent_travel":
		return BoolValue(s.RecentTravel), true
	case "medication":
		return BoolValue(s.Medication), true
	case "appetite_change":
		return BoolValue(s.AppetiteChange), true
	case "urine_change":
		return BoolValue(s.UrineChange), true
	case "weight_loss":
		return BoolValue(s.WeightLoss), true
	case "night_sweats":
		return BoolValue(s.NightSweats), true
	case "exposure":
		return BoolValue(s.Exposure), true
	case "fever_duration":
		if s.FeverDuration == nil {
			return Value{}, false
		}
		return NumberValue(float64(*s.FeverDuration)), true
	case "cough_type":
		if s.CoughType == nil {
			return Value{}, false
		}
		return StringValue(*s.CoughType), true
	}
	return Value{}, false
}

// Value returns the basic-info value for the given field name.
// Nil fields report ok=false.
func (b *BasicInfo) Value(name string) (Value, bool) {
	switch name {
	case "age":
		if b.Age == nil {
			return Value{}, false
		}
		return NumberValue(float64(*b.Age)), true
	case "gender":
		if b.Gender == nil {
			return Value{}, false
		}
		return StringValue(*b.Gender), true
	case "weight":
		if b.Weight == nil {
			return Value{}, false
		}
		return NumberValue(*b.Weight), true
	case "temperature":
		if b.Temperature == nil {
			return Value{}, false
		}
		return NumberValue(*b.Temperature), true
	case "duration":
		if b.Duration == nil {
			return Value{}, false
		}
		return StringValue(*b.Duration), true
	case "chronic_diseases":
		return BoolValue(b.ChronicDiseases), true
	}
	return Value{}, false
}

// Value returns the test-result value for the given test name.
// Nil results report ok=false.
func (t *TestResults) Value(name string) (Value, bool) {
	switch name {
	case "WBC":
		return numberOrMissing(t.WBC)
	case "Platelets":
		return numberOrMissing(t.Platelets)
	case "Hemoglobin":
		return numberOrMissing(t.Hemoglobin)
	case "Blood_Sugar":
		return numberOrMissing(t.BloodSugar)
	case "ALT":
		return numberOrMissing(t.ALT)
	case "Creatinine":
		return numberOrMissing(t.Creatinine)
	case "Malaria":
		return boolOrMissing(t.Malaria)
	case "Dengue":
		return boolOrMissing(t.Dengue)
	case "Typhoid":
		return boolOrMissing(t.Typhoid)
	}
	return Value{}, false
}

// HasAnyResult reports whether at least one lab value or test outcome is set.
func (t *TestResults) HasAnyResult() bool {
	return t.WBC != nil || t.Platelets != nil || t.Hemoglobin != nil ||
		t.BloodSugar != nil || t.ALT != nil || t.Creatinine != nil ||
		t.Malaria != nil || t.Dengue != nil || t.Typhoid != nil
}

func numberOrMissing(v *float64) (Value, bool) {
	if v == nil {
		return Value{}, false
	}
	return NumberValue(*v), true
}

func boolOrMissing(v *bool) (Value, bool) {
	if v == nil {
		return Value{}, false
	}
	return BoolValue(*v), true
}
