package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"chutti-news/internal/resilience/circuitbreaker"
	"chutti-news/internal/resilience/retry"
	"chutti-news/internal/utils/text"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAI's speech endpoint rejects inputs over 4096 characters.
const maxSpeechInputRunes = 4096

// OpenAIConfig holds settings for the OpenAI speech provider.
type OpenAIConfig struct {
	APIKey  string
	Model   openai.SpeechModel
	Voice   openai.SpeechVoice
	Timeout time.Duration
}

// DefaultOpenAIConfig returns production defaults for the given API key.
func DefaultOpenAIConfig(apiKey string) OpenAIConfig {
	return OpenAIConfig{
		APIKey:  apiKey,
		Model:   openai.TTSModel1,
		Voice:   openai.VoiceAlloy,
		Timeout: 120 * time.Second,
	}
}

// OpenAI synthesizes speech through the OpenAI audio API.
type OpenAI struct {
	config         OpenAIConfig
	client         *openai.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

// NewOpenAI creates an OpenAI speech provider.
func NewOpenAI(config OpenAIConfig) *OpenAI {
	p := &OpenAI{
		config:         config,
		circuitBreaker: circuitbreaker.New(circuitbreaker.SpeechAPIConfig()),
		retryConfig:    retry.SpeechConfig(),
	}
	if config.APIKey != "" {
		p.client = openai.NewClient(config.APIKey)
	}
	return p
}

// Name implements Provider.
func (p *OpenAI) Name() string { return "openai" }

// Synthesize implements Provider. It writes MP3 audio for input to path.
func (p *OpenAI) Synthesize(ctx context.Context, input, path string) error {
	if p.client == nil {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	return retry.WithBackoff(ctx, p.retryConfig, func() error {
		_, err := p.circuitBreaker.Execute(func() (interface{}, error) {
			return nil, p.doSynthesize(ctx, input, path)
		})
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("speech circuit breaker open, request rejected",
				slog.String("service", p.circuitBreaker.Name()),
				slog.String("state", p.circuitBreaker.State().String()))
		}
		return err
	})
}

func (p *OpenAI) doSynthesize(ctx context.Context, input, path string) error {
	requestID := uuid.New().String()

	truncated := text.Truncate(input, maxSpeechInputRunes)
	if truncated != input {
		slog.Warn("speech input truncated to provider limit",
			slog.String("request_id", requestID),
			slog.Int("original_runes", text.CountRunes(input)),
			slog.Int("limit", maxSpeechInputRunes))
	}

	slog.Info("requesting speech synthesis",
		slog.String("request_id", requestID),
		slog.String("model", string(p.config.Model)),
		slog.Int("input_runes", text.CountRunes(truncated)))

	resp, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          p.config.Model,
		Input:          truncated,
		Voice:          p.config.Voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return fmt.Errorf("%w: speech request failed: %v", retry.Transient, err)
	}
	defer func() {
		_ = resp.Close()
	}()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	defer func() {
		_ = out.Close()
	}()

	written, err := io.Copy(out, resp)
	if err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	slog.Info("speech synthesis complete",
		slog.String("request_id", requestID),
		slog.String("path", path),
		slog.Int64("bytes", written))
	return nil
}
