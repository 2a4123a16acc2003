package matcher

import (
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/catalog"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
)

// Weighted combination of the three match dimensions: reported symptoms are
// the strongest signal, then objective lab tests, then basic vitals.
const (
	symptomWeight = 0.5
	testWeight    = 0.3
	basicWeight   = 0.2
)

// Scorer ranks canonical records against a disease catalog.
type Scorer struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewScorer creates a scorer over an immutable catalog.
func NewScorer(cat *catalog.Catalog, logger *zap.Logger) *Scorer {
	return &Scorer{
		catalog: cat,
		logger:  logger,
	}
}

// Rank produces one MatchResult per catalog profile, sorted descending by
// overall match. Ties keep catalog declaration order. All profiles are always
// returned; truncation to a "top N" is the caller's concern.
func (s *Scorer) Rank(record *models.UserData) []models.MatchResult {
	profiles := s.catalog.Profiles()
	results := make([]models.MatchResult, 0, len(profiles))

	for _, profile := range profiles {
		symptomMatch := symptomRatio(&record.Symptoms, profile.Symptoms)
		testMatch := testRatio(&record.TestResults, profile.Tests)
		basicMatch := basicInfoRatio(&record.BasicInfo, profile.Vitals)

		overall := symptomMatch*symptomWeight + testMatch*testWeight + basicMatch*basicWeight

		results = append(results, models.MatchResult{
			Disease:      profile.Name,
			OverallMatch: overall,
			SymptomMatch: symptomMatch,
			TestMatch:    testMatch,
			BasicMatch:   basicMatch,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallMatch > results[j].OverallMatch
	})

	s.logger.Debug("Ranked record against disease catalog",
		zap.Int("profile_count", len(results)),
	)

	return results
}

// symptomRatio counts exact-equality matches over the profile's expected
// symptoms, restricted to keys the user supplied a value for.
func symptomRatio(symptoms *models.Symptoms, expected map[string]models.Value) float64 {
	matched := 0
	checked := 0

	for key, want := range expected {
		value, ok := symptoms.Value(key)
		if !ok {
			continue
		}
		checked++
		if value.Equal(want) {
			matched++
		}
	}

	return ratio(matched, checked)
}

// testRatio checks user lab values against the profile's expected ranges and
// exact test outcomes.
func testRatio(tests *models.TestResults, expected map[string]catalog.Expectation) float64 {
	matched := 0
	checked := 0

	for key, want := range expected {
		value, ok := tests.Value(key)
		if !ok {
			continue
		}
		checked++
		if want.Matches(value) {
			matched++
		}
	}

	return ratio(matched, checked)
}

// basicInfoRatio checks basic-info fields against the profile's vitals
// ranges. String values (duration) are converted to numbers first; a failed
// conversion excludes that check from both numerator and denominator.
func basicInfoRatio(info *models.BasicInfo, expected map[string]catalog.Range) float64 {
	matched := 0
	checked := 0

	for key, want := range expected {
		value, ok := info.Value(key)
		if !ok {
			continue
		}
		checked++

		switch value.Kind {
		case models.KindNumber:
			if want.Contains(value.Number) {
				matched++
			}
		case models.KindString:
			parsed, err := strconv.ParseFloat(value.Str, 64)
			if err != nil {
				checked--
				continue
			}
			if want.Contains(parsed) {
				matched++
			}
		default:
			checked--
		}
	}

	if checked < 0 {
		checked = 0
	}
	return ratio(matched, checked)
}

func ratio(matched, checked int) float64 {
	if checked <= 0 {
		return 0
	}
	return float64(matched) / float64(checked)
}
