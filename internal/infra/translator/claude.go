package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"chutti-news/internal/resilience/circuitbreaker"
	"chutti-news/internal/resilience/retry"
	"chutti-news/internal/utils/text"
)

// systemPrompt instructs the model on register and audience. The output must read as
// natural Tamil with no trace of the source language or of the translation process.
const systemPrompt = "You are a highly skilled translator. Translate the given text into " +
	"conversational Tamil that would be easily understood by children. Keep the translation " +
	"natural and appropriate for young audiences. Respond with the Tamil translation only - " +
	"no English words, no notes, and no markers about the translation itself."

// maxInputRunes caps the text sent to the API; news titles and summaries sit far below
// this, so truncation only triggers on pathological feeds.
const maxInputRunes = 10000

// ClaudeConfig holds configuration for the Claude translation provider.
type ClaudeConfig struct {
	// APIKey enables the provider; empty means not configured.
	APIKey string

	// Model is the Claude model identifier.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single translation call.
	Timeout time.Duration

	// RequestsPerMinute bounds the client-side call rate.
	RequestsPerMinute int
}

// DefaultClaudeConfig returns the standard Claude provider settings for the given key.
func DefaultClaudeConfig(apiKey string) ClaudeConfig {
	return ClaudeConfig{
		APIKey:            apiKey,
		Model:             string(anthropic.ModelClaudeSonnet4_5_20250929),
		MaxTokens:         1024,
		Timeout:           60 * time.Second,
		RequestsPerMinute: 30,
	}
}

// Claude implements Provider using Anthropic's Claude API, wrapped in retry, circuit
// breaker and a client-side rate limiter.
type Claude struct {
	config         ClaudeConfig
	client         anthropic.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	limiter        *rate.Limiter
}

// NewClaude creates a Claude translation provider.
// A config with an empty APIKey yields a provider that reports ErrNotConfigured.
func NewClaude(config ClaudeConfig) *Claude {
	c := &Claude{
		config:         config,
		circuitBreaker: circuitbreaker.New(circuitbreaker.TranslationAPIConfig("claude")),
		retryConfig:    retry.TranslationConfig(),
		limiter:        rate.NewLimiter(rate.Limit(float64(config.RequestsPerMinute)/60.0), 1),
	}
	if config.APIKey != "" {
		c.client = anthropic.NewClient(option.WithAPIKey(config.APIKey))
	}
	return c
}

// Name implements Provider.
func (c *Claude) Name() string { return "claude" }

// Translate converts input to conversational Tamil via the Claude API.
func (c *Claude) Translate(ctx context.Context, input string) (string, error) {
	if c.config.APIKey == "" {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("claude rate limiter: %w", err)
	}

	var result string
	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doTranslate(ctx, input)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude circuit breaker open, request rejected",
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}
		result = cbResult.(string)
		return nil
	})
	if retryErr != nil {
		return "", fmt.Errorf("claude translate failed after retries: %w", retryErr)
	}

	return result, nil
}

// doTranslate performs the actual API call without retry or circuit breaker.
func (c *Claude) doTranslate(ctx context.Context, input string) (string, error) {
	requestID := uuid.New().String()

	truncated := text.Truncate(input, maxInputRunes)
	if truncated != input {
		slog.Warn("text truncated for claude api",
			slog.String("request_id", requestID),
			slog.Int("original_length", text.CountRunes(input)))
	}

	slog.InfoContext(ctx, "starting translation",
		slog.String("request_id", requestID),
		slog.String("provider", "claude"),
		slog.Int("input_length", text.CountRunes(truncated)))

	start := time.Now()
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(fmt.Sprintf("Translate this text to conversational Tamil suitable for children: %q", truncated)),
			),
		},
	})
	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "translation failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("claude api returned empty response")
	}
	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	translated := text.CleanHTML(textBlock.Text)
	slog.InfoContext(ctx, "translation completed",
		slog.String("request_id", requestID),
		slog.Int("output_length", text.CountRunes(translated)),
		slog.Duration("duration", duration))

	return translated, nil
}
