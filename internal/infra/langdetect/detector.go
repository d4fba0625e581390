// Package langdetect determines the dominant language of article text.
// The primary path is a statistical detector (lingua-go); when the detector is absent or
// keeps failing, a coarse Unicode-script heuristic takes over.
package langdetect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// ErrUndetermined is returned by a Detector when it cannot produce a confident answer.
// The classifier treats it as a transient detector failure.
var ErrUndetermined = errors.New("language could not be determined")

// Detector produces an ISO 639-1 language code for a normalized text blob.
type Detector interface {
	Detect(text string) (string, error)
}

// minConfidence is the lingua confidence below which a detection is rejected.
const minConfidence = 0.5

// LinguaDetector implements Detector using the lingua-go statistical models, restricted to
// the languages this service actually encounters in Indian news feeds.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector over the feed languages.
func NewLinguaDetector() *LinguaDetector {
	languages := []lingua.Language{
		lingua.Tamil,
		lingua.English,
		lingua.Hindi,
		lingua.Telugu,
		lingua.Malayalam,
		lingua.Kannada,
	}
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the dominant language.
// Low-confidence detections are rejected with ErrUndetermined.
func (d *LinguaDetector) Detect(text string) (string, error) {
	language, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return "", ErrUndetermined
	}

	confidence := d.detector.ComputeLanguageConfidence(text, language)
	if confidence < minConfidence {
		return "", fmt.Errorf("%w: best guess %s at confidence %.2f",
			ErrUndetermined, language, confidence)
	}

	return strings.ToLower(language.IsoCode639_1().String()), nil
}
