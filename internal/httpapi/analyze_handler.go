package httpapi

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/config"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/models"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/service"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/validator"
)

const disclaimer = "This is for educational purposes only. Consult a healthcare professional for medical advice."

// HealthStatus is the /health response body.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// AnalyzeResponse is the /analyze response body. Emergency responses carry
// only the reasons; normal responses carry ranked matches plus analysis text.
type AnalyzeResponse struct {
	Emergency    bool                 `json:"emergency"`
	Reasons      []string             `json:"reasons,omitempty"`
	Matches      []models.MatchResult `json:"matches,omitempty"`
	Predictions  []models.Prediction  `json:"predictions,omitempty"`
	Analysis     string               `json:"analysis,omitempty"`
	UsedFallback bool                 `json:"used_fallback,omitempty"`
	Disclaimer   string               `json:"disclaimer"`
}

// AnalyzeHandler serves the symptom analysis endpoints.
type AnalyzeHandler struct {
	analyzer *service.Analyzer
	limiter  Limiter
	logger   *zap.Logger
}

// NewAnalyzeHandler creates an analyze handler
func NewAnalyzeHandler(analyzer *service.Analyzer, limiter Limiter, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		limiter:  limiter,
		logger:   logger,
	}
}

// Health handles GET /health.
func (h *AnalyzeHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Ok(HealthStatus{
		Status:  "healthy",
		Service: config.AppName,
		Version: config.Version,
	}))
}

// Analyze handles POST /analyze.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, req *http.Request) {
	clientID := clientAddr(req)

	allowed, err := h.limiter.Allow(req.Context(), clientID)
	if err != nil {
		h.logger.Error("Rate limiter check failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("internal server error"))
		return
	}
	if !allowed {
		h.logger.Warn("Rate limit exceeded", zap.String("client", clientID))
		writeJSON(w, http.StatusTooManyRequests, Fail("Rate limit exceeded. Please try again later."))
		return
	}

	var raw validator.RawData
	if err := json.NewDecoder(req.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("request body is required"))
		return
	}

	outcome, err := h.analyzer.Analyze(req.Context(), raw)
	if err != nil {
		var validationErr *validator.ValidationError
		var securityErr *validator.SecurityError
		if errors.As(err, &validationErr) || errors.As(err, &securityErr) {
			h.logger.Warn("Validation error", zap.Error(err))
			writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
			return
		}
		h.logger.Error("Analysis failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, Fail("Service temporarily unavailable"))
		return
	}

	if outcome.Emergency != nil {
		// HTTP 200: the request succeeded, the record is the emergency
		writeJSON(w, http.StatusOK, Warn(outcome.Emergency.Message, AnalyzeResponse{
			Emergency:  true,
			Reasons:    outcome.Emergency.Reasons,
			Disclaimer: disclaimer,
		}))
		return
	}

	h.logger.Info("Analysis completed",
		zap.String("client", clientID),
		zap.Bool("used_fallback", outcome.UsedFallback),
	)

	writeJSON(w, http.StatusOK, OkMessage("Analysis completed successfully", AnalyzeResponse{
		Emergency:    false,
		Matches:      outcome.Matches,
		Predictions:  outcome.Predictions,
		Analysis:     outcome.Analysis,
		UsedFallback: outcome.UsedFallback,
		Disclaimer:   disclaimer,
	}))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func clientAddr(req *http.Request) string {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil || host == "" {
		if req.RemoteAddr != "" {
			return req.RemoteAddr
		}
		return "unknown"
	}
	return host
}
