package langdetect

import (
	"context"
	"fmt"
	"log/slog"

	"chutti-news/internal/domain/entity"
	"chutti-news/internal/resilience/retry"
	"chutti-news/internal/utils/text"
)

// minClassifiableRunes is the minimum normalized text length for classification.
// Anything shorter is reported as unknown unconditionally.
const minClassifiableRunes = 10

// scriptRatioThreshold is the fraction of text that must belong to a Unicode block for the
// heuristic to pick that block's language. Strictly greater than, so 30% exactly does not
// qualify.
const scriptRatioThreshold = 0.3

// Classifier determines the dominant language code of a text blob.
// A nil Detector is valid and sends every classification down the heuristic path.
type Classifier struct {
	Detector    Detector
	RetryConfig retry.Config
}

// NewClassifier creates a Classifier with the standard detector retry policy.
func NewClassifier(detector Detector) *Classifier {
	return &Classifier{
		Detector:    detector,
		RetryConfig: retry.DetectorConfig(),
	}
}

// Classify returns the ISO 639-1 code of the text's dominant language, or
// entity.LangUnknown when the normalized text is too short to classify reliably.
// Detector failures are retried, then absorbed into the script heuristic; Classify itself
// never fails.
func (c *Classifier) Classify(ctx context.Context, raw string) string {
	normalized := text.CleanHTML(raw)
	if text.CountRunes(normalized) < minClassifiableRunes {
		return entity.LangUnknown
	}

	if c.Detector != nil {
		var code string
		err := retry.WithBackoff(ctx, c.RetryConfig, func() error {
			detected, err := c.Detector.Detect(normalized)
			if err != nil {
				return fmt.Errorf("detect language: %w: %w", retry.Transient, err)
			}
			code = detected
			return nil
		})
		if err == nil {
			return code
		}
		slog.Warn("statistical detection failed, using script heuristic",
			slog.Any("error", err))
	}

	return classifyByScript(normalized)
}

// classifyByScript buckets text into Tamil, Hindi or English by Unicode block ratios.
// This only distinguishes three coarse buckets and defaults to English for Latin or
// anything else.
func classifyByScript(normalized string) string {
	runes := []rune(normalized)
	total := len(runes)
	if total == 0 {
		return "en"
	}

	var tamil, devanagari int
	for _, r := range runes {
		switch {
		case r >= 0x0B80 && r <= 0x0BFF:
			tamil++
		case r >= 0x0900 && r <= 0x097F:
			devanagari++
		}
	}

	if float64(tamil) > float64(total)*scriptRatioThreshold {
		return "ta"
	}
	if float64(devanagari) > float64(total)*scriptRatioThreshold {
		return "hi"
	}
	return "en"
}
