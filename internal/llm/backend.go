package llm

import (
	"context"
	"errors"
)

// ErrAnalysisUnavailable is returned when no analysis backend could produce
// output. Callers substitute the rule-based fallback predictor's report.
var ErrAnalysisUnavailable = errors.New("analysis unavailable")

// Sink consumes streamed response fragments. Returning a non-nil error stops
// the stream early.
type Sink func(fragment string) error

// Backend is one analysis text generator. Implementations produce a finite,
// non-restartable sequence of text fragments.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string

	// Available reports whether the backend is configured and reachable
	// enough to attempt a request.
	Available() bool

	// GenerateResponse streams the response for a prompt into sink.
	GenerateResponse(ctx context.Context, prompt string, sink Sink) error
}
