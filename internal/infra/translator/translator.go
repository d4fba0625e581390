// Package translator converts article text to Tamil through an ordered chain of providers.
// The chain tries an AI provider first, then a cloud translation API, and finally a
// deterministic dictionary fallback whose output is explicitly marked as unverified.
// Each attempt returns a typed outcome so failure causes stay inspectable instead of being
// absorbed silently.
package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"chutti-news/internal/domain/entity"
	"chutti-news/internal/observability/metrics"
	"chutti-news/internal/usecase/pipeline"
	"chutti-news/internal/utils/text"
)

// ErrNotConfigured is returned by a provider whose credentials are absent.
// The chain treats it exactly like a provider failure and moves on.
var ErrNotConfigured = errors.New("provider not configured")

// ErrEmptyInput is returned when there is nothing to translate.
var ErrEmptyInput = errors.New("empty input text")

// Provider is a single translation backend.
type Provider interface {
	// Name identifies the provider in results, logs and metrics.
	Name() string

	// Translate converts text to Tamil. It returns ErrNotConfigured when disabled,
	// or a provider error after its own retries are exhausted.
	Translate(ctx context.Context, input string) (string, error)
}

// Classifier reports the dominant language of a text blob.
type Classifier interface {
	Classify(ctx context.Context, text string) string
}

// Translator runs the provider chain with a Tamil short-circuit.
type Translator struct {
	classifier Classifier
	providers  []Provider
}

// New creates a Translator trying the given providers in order.
func New(classifier Classifier, providers ...Provider) *Translator {
	return &Translator{classifier: classifier, providers: providers}
}

// ToTamil translates input to Tamil.
// Input already classified as Tamil is returned unchanged without any provider call.
// Provider failures fall through to the next provider, including a provider's own
// internal timeout; only cancellation of the caller's context is fatal.
func (t *Translator) ToTamil(ctx context.Context, input string) (pipeline.Translation, error) {
	if input == "" {
		return pipeline.Translation{}, ErrEmptyInput
	}

	cleaned := text.CleanHTML(input)
	if cleaned == "" {
		return pipeline.Translation{}, ErrEmptyInput
	}

	if t.classifier.Classify(ctx, cleaned) == entity.LangTamil {
		return pipeline.Translation{Text: cleaned, Provider: "none", Verified: true}, nil
	}

	for _, p := range t.providers {
		translated, err := p.Translate(ctx, cleaned)
		if err == nil {
			metrics.RecordTranslation(p.Name(), true)
			return pipeline.Translation{
				Text:     translated,
				Provider: p.Name(),
				Verified: p.Name() != DictionaryProviderName,
			}, nil
		}

		// Providers run their own timeouts, so err wrapping DeadlineExceeded does
		// not mean the caller gave up. Only the caller's context decides that.
		if ctx.Err() != nil {
			return pipeline.Translation{}, fmt.Errorf("translate via %s: %w", p.Name(), err)
		}

		metrics.RecordTranslation(p.Name(), false)
		if errors.Is(err, ErrNotConfigured) {
			slog.Debug("translation provider not configured, trying next",
				slog.String("provider", p.Name()))
		} else {
			slog.Warn("translation provider failed, trying next",
				slog.String("provider", p.Name()),
				slog.Any("error", err))
		}
	}

	return pipeline.Translation{}, fmt.Errorf("all %d translation providers failed", len(t.providers))
}
