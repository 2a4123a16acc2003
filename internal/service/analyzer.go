package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/llm"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/matcher"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/predictor"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/triage"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/validator"
)

// Outcome is the distinguished analysis result. When Emergency is set,
// scoring and analysis were skipped entirely and the other result fields are
// empty; emergencies are not errors.
type Outcome struct {
	Record       models.UserData
	Emergency    *models.EmergencyAlert
	Matches      []models.MatchResult
	Analysis     string
	Predictions  []models.Prediction
	UsedFallback bool
}

// Analyzer orchestrates one analysis request: validation, emergency check,
// catalog ranking and analysis text generation with rule-based fallback.
type Analyzer struct {
	checker  *triage.Checker
	scorer   *matcher.Scorer
	analysis *llm.Service
	logger   *zap.Logger
}

// NewAnalyzer creates an analyzer service
func NewAnalyzer(checker *triage.Checker, scorer *matcher.Scorer, analysis *llm.Service, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		checker:  checker,
		scorer:   scorer,
		analysis: analysis,
		logger:   logger,
	}
}

// Analyze validates a raw record and runs the full pipeline. Validation
// failures are returned as errors; a detected emergency is reported through
// the outcome, not an error.
func (a *Analyzer) Analyze(ctx context.Context, raw validator.RawData) (*Outcome, error) {
	record, err := validator.UserData(raw)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{Record: record}

	// Emergency check must run before any scoring or external analysis.
	alert := a.checker.Check(&record)
	if alert.IsEmergency {
		outcome.Emergency = &alert
		return outcome, nil
	}

	outcome.Matches = a.scorer.Rank(&record)

	var b strings.Builder
	err = a.analysis.GenerateAnalysis(ctx, &record, func(fragment string) error {
		b.WriteString(fragment)
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.logger.Warn("Analysis generation failed, using rule-based fallback",
			zap.Error(err),
		)
		outcome.UsedFallback = true
		outcome.Predictions = predictor.Predict(&record)
		outcome.Analysis = predictor.FormatReport(&record)
		return outcome, nil
	}

	outcome.Analysis = b.String()
	return outcome, nil
}
