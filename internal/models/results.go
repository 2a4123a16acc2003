package models

// MatchResult is the per-profile scoring output. Sub-scores and the weighted
// overall score are all in [0,1].
type MatchResult struct {
	Disease      string  `json:"disease"`
	OverallMatch float64 `json:"overall_match"`
	SymptomMatch float64 `json:"symptom_match"`
	TestMatch    float64 `json:"test_match"`
	BasicMatch   float64 `json:"basic_match"`
}

// EmergencyAlert reports the outcome of the emergency rule check.
type EmergencyAlert struct {
	IsEmergency bool     `json:"is_emergency"`
	Reasons     []string `json:"reasons"`
	Message     string   `json:"message"`
}

// Prediction is one entry of the rule-based fallback predictor output.
type Prediction struct {
	Disease    string `json:"disease"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}
