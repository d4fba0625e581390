// Package speech turns podcast scripts into MP3 audio.
// A configured provider synthesizes real speech; without one, or when the
// provider fails, a silent placeholder file is written instead so the rest of
// the workflow keeps a playable artifact.
package speech

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"chutti-news/internal/observability/metrics"
	"chutti-news/internal/usecase/podcast"
)

// ErrNotConfigured indicates the provider has no credential and cannot run.
var ErrNotConfigured = errors.New("speech provider not configured")

// PlaceholderProvider is the provider name reported for silent placeholder audio.
const PlaceholderProvider = "placeholder"

// Provider synthesizes speech for text and writes the audio to path.
type Provider interface {
	Name() string
	Synthesize(ctx context.Context, text, path string) error
}

// Synthesizer wraps a Provider with placeholder degradation.
type Synthesizer struct {
	provider Provider
}

// New creates a Synthesizer. provider may be nil, in which case every call
// produces a placeholder.
func New(provider Provider) *Synthesizer {
	return &Synthesizer{provider: provider}
}

// Synthesize writes audio for text to path. Provider failures degrade to a
// placeholder file; an error is returned only when the placeholder itself
// cannot be written.
func (s *Synthesizer) Synthesize(ctx context.Context, text, path string) (podcast.AudioResult, error) {
	if s.provider != nil {
		start := time.Now()
		err := s.provider.Synthesize(ctx, text, path)
		if err == nil {
			metrics.RecordSpeechSynthesisDuration(time.Since(start))
			return podcast.AudioResult{Path: path, Provider: s.provider.Name()}, nil
		}
		// A deadline inside the provider's own retry loop is just a failed
		// attempt; abort only when the caller's context is done.
		if ctx.Err() != nil {
			return podcast.AudioResult{}, err
		}
		if errors.Is(err, ErrNotConfigured) {
			slog.Debug("speech provider not configured, writing placeholder",
				slog.String("provider", s.provider.Name()))
		} else {
			slog.Warn("speech synthesis failed, writing placeholder",
				slog.String("provider", s.provider.Name()),
				slog.String("error", err.Error()))
		}
	}

	if err := WritePlaceholder(path); err != nil {
		return podcast.AudioResult{}, err
	}
	return podcast.AudioResult{Path: path, Provider: PlaceholderProvider, Placeholder: true}, nil
}
