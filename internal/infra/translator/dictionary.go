package translator

import (
	"context"
	"regexp"
	"strings"
)

// DictionaryProviderName identifies the local fallback in results and logs.
const DictionaryProviderName = "dictionary"

// UnverifiedMarker prefixes dictionary output so downstream consumers and reviewers can
// tell unverified substitutions from real translations.
const UnverifiedMarker = "[Need proper translation]"

// phraseTable maps common English news vocabulary to Tamil. The fallback is deliberately
// tiny: it exists so the pipeline degrades to something a reviewer can fix by hand rather
// than failing outright.
var phraseTable = map[string]string{
	"News":          "செய்திகள்",
	"Today":         "இன்று",
	"India":         "இந்தியா",
	"World":         "உலகம்",
	"Sports":        "விளையாட்டு",
	"Health":        "ஆரோக்கியம்",
	"Education":     "கல்வி",
	"Weather":       "வானிலை",
	"Politics":      "அரசியல்",
	"Technology":    "தொழில்நுட்பம்",
	"Science":       "அறிவியல்",
	"Environment":   "சுற்றுச்சூழல்",
	"Entertainment": "பொழுதுபோக்கு",
	"Business":      "வணிகம்",
	"Economy":       "பொருளாதாரம்",
	"Government":    "அரசு",
}

// Dictionary implements Provider with whole-word, case-insensitive substitution from a
// fixed phrase table. Words without an entry stay in the source language. It never fails,
// which makes it the terminal link of the chain.
type Dictionary struct {
	patterns map[*regexp.Regexp]string
}

// NewDictionary creates the dictionary fallback provider.
func NewDictionary() *Dictionary {
	patterns := make(map[*regexp.Regexp]string, len(phraseTable))
	for eng, tam := range phraseTable {
		patterns[regexp.MustCompile(`(?i)\b`+eng+`\b`)] = tam
	}
	return &Dictionary{patterns: patterns}
}

// Name implements Provider.
func (d *Dictionary) Name() string { return DictionaryProviderName }

// Translate substitutes known words and prefixes the unverified marker.
func (d *Dictionary) Translate(_ context.Context, input string) (string, error) {
	result := input
	for pattern, tam := range d.patterns {
		result = pattern.ReplaceAllString(result, tam)
	}
	return UnverifiedMarker + " " + strings.TrimSpace(result), nil
}
