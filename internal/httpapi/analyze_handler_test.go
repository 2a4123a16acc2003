package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/catalog"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/llm"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/matcher"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/service"
	"github.com/Maus-313/Healthcase-Symptom-Checker-Unthinkable/internal/triage"
)

func setupRouter(t *testing.T, limiter Limiter) *Router {
	t.Helper()

	logger := zap.NewNop()
	checker := triage.NewChecker(triage.DefaultRules(), logger)
	scorer := matcher.NewScorer(catalog.Builtin(), logger)
	analysis := llm.NewService(llm.NewMockBackend(), llm.NewMockBackend(), logger)
	analyzer := service.NewAnalyzer(checker, scorer, analysis, logger)

	if limiter == nil {
		limiter = NewMemoryLimiter(100, time.Minute, nil)
	}

	router := NewRouter(logger)
	router.RegisterRoutes(NewAnalyzeHandler(analyzer, limiter, logger))
	return router
}

func analyzeBody() []byte {
	return []byte(`{
		"basic_info": {"age": 25, "temperature": 38.5},
		"symptoms": {
			"fever": true, "fatigue": true, "headache": true,
			"body_pain": true, "sore_throat": true,
			"appetite_change": true, "fever_duration": 3
		},
		"test_results": {}
	}`)
}

func doAnalyze(t *testing.T, router *Router, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	req.RemoteAddr = "192.0.2.1:51234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var result Result[HealthStatus]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, ResultSuccess, result.Code)
	assert.Equal(t, "healthy", result.Result.Status)
	assert.Equal(t, "Healthcare Symptom Checker", result.Result.Service)
}

func TestHealthEndpoint_MethodNotAllowed(t *testing.T) {
	router := setupRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAnalyzeEndpoint_Success(t *testing.T) {
	router := setupRouter(t, nil)

	rec := doAnalyze(t, router, analyzeBody())
	assert.Equal(t, http.StatusOK, rec.Code)

	var result Result[AnalyzeResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, ResultSuccess, result.Code)
	assert.Equal(t, "success", result.Type)
	assert.False(t, result.Result.Emergency)
	require.NotEmpty(t, result.Result.Matches)
	assert.Equal(t, "Viral Fever", result.Result.Matches[0].Disease)
	assert.NotEmpty(t, result.Result.Analysis)
	assert.Contains(t, result.Result.Disclaimer, "educational purposes")
}

func TestAnalyzeEndpoint_Emergency(t *testing.T) {
	router := setupRouter(t, nil)

	body := []byte(`{
		"basic_info": {"temperature": 41.0},
		"symptoms": {"fever": true},
		"test_results": {}
	}`)

	rec := doAnalyze(t, router, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result Result[AnalyzeResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "warning", result.Type)
	assert.Equal(t, triage.EmergencyMessage, result.Message)
	assert.True(t, result.Result.Emergency)
	assert.Contains(t, result.Result.Reasons, "High fever (>40°C)")
	assert.Empty(t, result.Result.Matches, "emergency responses carry no ranking")
	assert.Empty(t, result.Result.Analysis)
}

func TestAnalyzeEndpoint_ValidationError(t *testing.T) {
	router := setupRouter(t, nil)

	body := []byte(`{
		"basic_info": {"age": 200},
		"symptoms": {},
		"test_results": {}
	}`)

	rec := doAnalyze(t, router, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result Result[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, ResultError, result.Code)
	assert.Contains(t, result.Message, "basic_info.age")
}

func TestAnalyzeEndpoint_SecurityRejection(t *testing.T) {
	router := setupRouter(t, nil)

	body := []byte(`{
		"basic_info": {"duration": "<script>alert(1)</script>"},
		"symptoms": {},
		"test_results": {}
	}`)

	rec := doAnalyze(t, router, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result Result[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.Message, "basic_info.duration")
}

func TestAnalyzeEndpoint_MalformedJSON(t *testing.T) {
	router := setupRouter(t, nil)

	rec := doAnalyze(t, router, []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeEndpoint_MethodNotAllowed(t *testing.T) {
	router := setupRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAnalyzeEndpoint_RateLimited(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Minute, nil)
	router := setupRouter(t, limiter)

	rec := doAnalyze(t, router, analyzeBody())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doAnalyze(t, router, analyzeBody())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var result Result[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.Message, "Rate limit exceeded")
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (bool, error) {
	return false, assert.AnError
}

func TestAnalyzeEndpoint_LimiterFailure(t *testing.T) {
	router := setupRouter(t, brokenLimiter{})

	rec := doAnalyze(t, router, analyzeBody())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestClientAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "203.0.113.9:4455"
	assert.Equal(t, "203.0.113.9", clientAddr(req))

	req.RemoteAddr = "203.0.113.9"
	assert.Equal(t, "203.0.113.9", clientAddr(req))

	req.RemoteAddr = ""
	assert.Equal(t, "unknown", clientAddr(req))
}

func TestResultEnvelopeShapes(t *testing.T) {
	ok := Ok("payload")
	assert.Equal(t, ResultSuccess, ok.Code)
	assert.Equal(t, "success", ok.Type)

	fail := Fail("nope")
	assert.Equal(t, ResultError, fail.Code)
	assert.Equal(t, "error", fail.Type)
	assert.Nil(t, fail.Result)

	warn := Warn("careful", 7)
	assert.Equal(t, "warning", warn.Type)
	assert.Equal(t, 7, warn.Result)

	data, err := json.Marshal(OkMessage("done", map[string]string{"k": "v"}))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"code":2000`))
}
