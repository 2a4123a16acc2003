package llm

import (
	"context"
)

// mockChunkSize simulates streaming by splitting the canned response.
const mockChunkSize = 50

const mockResponse = `Based on the provided symptoms and test results, here are the top 3 most likely conditions:

1. Viral Fever - 75% confidence
   Reasoning: High fever, fatigue, and headache are classic symptoms of viral infection.

2. Dengue Fever - 60% confidence
   Reasoning: Fever with rash and low platelet count suggests possible dengue.

3. Common Cold - 40% confidence
   Reasoning: Mild respiratory symptoms could indicate a common cold.

**Important Disclaimer:** This analysis is for educational purposes only and should not be used as a substitute for professional medical advice. Please consult a qualified healthcare provider for proper diagnosis and treatment.

Suggested next steps:
- Monitor your temperature regularly
- Stay hydrated and rest
- Consult a doctor if symptoms worsen
- Consider getting additional blood tests if recommended`

// MockBackend streams a fixed canned analysis. Used in tests and as the
// last-resort generator when no real backend is configured.
type MockBackend struct{}

// NewMockBackend creates a mock backend
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

func (b *MockBackend) Name() string {
	return "mock"
}

// Available always reports true.
func (b *MockBackend) Available() bool {
	return true
}

// GenerateResponse streams the canned response in fixed-size fragments.
func (b *MockBackend) GenerateResponse(ctx context.Context, prompt string, sink Sink) error {
	for i := 0; i < len(mockResponse); i += mockChunkSize {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := i + mockChunkSize
		if end > len(mockResponse) {
			end = len(mockResponse)
		}
		if err := sink(mockResponse[i:end]); err != nil {
			return err
		}
	}
	return nil
}
