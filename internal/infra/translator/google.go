package translator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"

	"chutti-news/internal/resilience/retry"
)

// GoogleConfig holds configuration for the Google Cloud Translation provider.
type GoogleConfig struct {
	// APIKey enables the provider; empty means not configured.
	APIKey string

	// Timeout is the maximum duration for a single translation call.
	Timeout time.Duration
}

// DefaultGoogleConfig returns the standard Google provider settings for the given key.
func DefaultGoogleConfig(apiKey string) GoogleConfig {
	return GoogleConfig{
		APIKey:  apiKey,
		Timeout: 30 * time.Second,
	}
}

// Google implements Provider using the Cloud Translation v2 API.
// It is the secondary provider: cheaper and more literal than the AI path.
type Google struct {
	config      GoogleConfig
	retryConfig retry.Config
}

// NewGoogle creates a Google translation provider.
func NewGoogle(config GoogleConfig) *Google {
	return &Google{
		config:      config,
		retryConfig: retry.TranslationConfig(),
	}
}

// Name implements Provider.
func (g *Google) Name() string { return "google" }

// Translate converts input to Tamil via the Cloud Translation API.
func (g *Google) Translate(ctx context.Context, input string) (string, error) {
	if g.config.APIKey == "" {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	svc, err := translate.NewService(ctx, option.WithAPIKey(g.config.APIKey))
	if err != nil {
		return "", fmt.Errorf("create translate service: %w", err)
	}

	var result string
	retryErr := retry.WithBackoff(ctx, g.retryConfig, func() error {
		start := time.Now()
		resp, err := svc.Translations.List([]string{input}, "ta").
			Format("text").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("google translate call: %w: %w", retry.Transient, err)
		}
		if len(resp.Translations) == 0 {
			return fmt.Errorf("google translate returned no translations: %w", retry.Transient)
		}
		result = resp.Translations[0].TranslatedText
		slog.Info("translation completed",
			slog.String("provider", "google"),
			slog.Duration("duration", time.Since(start)))
		return nil
	})
	if retryErr != nil {
		return "", fmt.Errorf("google translate failed after retries: %w", retryErr)
	}

	return result, nil
}
