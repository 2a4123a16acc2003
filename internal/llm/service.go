package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
)

// Service manages analysis backends with fallback chaining: the primary
// backend is tried first, the fallback is used when the primary is not
// available or fails mid-request.
type Service struct {
	primary  Backend
	fallback Backend
	logger   *zap.Logger
}

// NewService creates an analysis service. fallback may equal primary when no
// chaining is wanted.
func NewService(primary, fallback Backend, logger *zap.Logger) *Service {
	return &Service{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// GenerateAnalysis formats a record into a prompt and streams the analysis
// into sink. Returns ErrAnalysisUnavailable (wrapped) when every backend
// fails.
func (s *Service) GenerateAnalysis(ctx context.Context, record *models.UserData, sink Sink) error {
	prompt, err := formatAnalysisPrompt(record)
	if err != nil {
		return fmt.Errorf("failed to format analysis prompt: %w", err)
	}

	backend := s.primary
	if !backend.Available() {
		s.logger.Warn("Primary analysis backend not available, trying fallback",
			zap.String("backend", backend.Name()),
		)
		backend = s.fallback
		if backend == nil || !backend.Available() {
			return fmt.Errorf("no analysis backends available: %w", ErrAnalysisUnavailable)
		}
	}

	s.logger.Info("Generating analysis", zap.String("backend", backend.Name()))

	if err := backend.GenerateResponse(ctx, prompt, sink); err != nil {
		if backend == s.fallback || s.fallback == nil || !s.fallback.Available() {
			return err
		}
		s.logger.Error("Analysis backend failed, trying fallback",
			zap.String("backend", backend.Name()),
			zap.Error(err),
		)
		return s.fallback.GenerateResponse(ctx, prompt, sink)
	}

	return nil
}

// formatAnalysisPrompt renders a canonical record into the analysis request
// prompt.
func formatAnalysisPrompt(record *models.UserData) (string, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Based on the following user data, list the top 3 most likely diseases with confidence percentages and reasoning for each. Also suggest next steps.

User Data: %s

Provide response in a clear, structured format with disclaimer that this is educational only.`, data), nil
}
