package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const apiKeyPrefix = "sk-or-v1-"

// systemPrompt frames every analysis request.
const systemPrompt = "You are a helpful assistant for educational symptom checking. " +
	"Always include a disclaimer that this is not medical advice."

// OpenRouterConfig configures the OpenRouter-backed analysis generator.
type OpenRouterConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// chatMessage is one message of a chat-completions request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the chat-completions request payload.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

// chatChunk is one decoded SSE data event of a streaming response.
type chatChunk struct {
	Choices []struct {
		Delta struct {
			Content *string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// OpenRouterBackend generates analysis text through the OpenRouter
// chat-completions API.
type OpenRouterBackend struct {
	config     OpenRouterConfig
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewOpenRouterBackend creates an OpenRouter backend
func NewOpenRouterBackend(cfg OpenRouterConfig, logger *zap.Logger) *OpenRouterBackend {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(60 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(cfg.APIKey)

	return &OpenRouterBackend{
		config:     cfg,
		httpClient: client,
		logger:     logger,
	}
}

func (b *OpenRouterBackend) Name() string {
	return "openrouter"
}

// Available checks that an API key with the expected prefix is configured.
func (b *OpenRouterBackend) Available() bool {
	return strings.HasPrefix(b.config.APIKey, apiKeyPrefix)
}

// GenerateResponse streams a chat completion, forwarding each content delta
// to sink. The stream stops when the context is cancelled, sink returns an
// error, or the API signals completion.
func (b *OpenRouterBackend) GenerateResponse(ctx context.Context, prompt string, sink Sink) error {
	if !b.Available() {
		return fmt.Errorf("openrouter backend is not available: %w", ErrAnalysisUnavailable)
	}

	request := chatRequest{
		Model: b.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: b.config.Temperature,
		MaxTokens:   b.config.MaxTokens,
		Stream:      true,
	}

	b.logger.Info("Calling OpenRouter chat completions",
		zap.String("model", b.config.Model),
	)

	resp, err := b.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetDoNotParseResponse(true).
		Post("/chat/completions")
	if err != nil {
		b.logger.Error("OpenRouter API call failed", zap.Error(err))
		return fmt.Errorf("failed to call OpenRouter API: %w", err)
	}
	defer resp.RawBody().Close()

	if resp.StatusCode() != 200 {
		b.logger.Error("OpenRouter API returned error",
			zap.Int("status_code", resp.StatusCode()),
		)
		return fmt.Errorf("OpenRouter API returned status %d: %w", resp.StatusCode(), ErrAnalysisUnavailable)
	}

	scanner := bufio.NewScanner(resp.RawBody())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			if payload == "[DONE]" {
				break
			}
			continue
		}

		var chunk chatChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			b.logger.Warn("Skipping malformed stream chunk", zap.Error(err))
			continue
		}
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == nil {
			continue
		}
		if err := sink(*chunk.Choices[0].Delta.Content); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read OpenRouter stream: %w", err)
	}

	return nil
}
