// Package text provides utilities for text normalization and analysis.
// It includes the shared cleaning step used before language classification and translation,
// plus character counting and truncation helpers that correctly handle multi-byte scripts.
package text

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanHTML strips markup, decodes HTML entities and collapses runs of whitespace into a
// single space. All components that inspect article text (classifier, translator, composer)
// normalize through this function so they agree on what the text is.
func CleanHTML(raw string) string {
	if raw == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	var cleaned string
	if err == nil {
		cleaned = doc.Text()
	} else {
		// goquery only fails on unreadable input; degrade to tag stripping
		cleaned = html.UnescapeString(tagPattern.ReplaceAllString(raw, " "))
	}

	return strings.TrimSpace(whitespacePattern.ReplaceAllString(cleaned, " "))
}

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Counting runes instead of bytes keeps thresholds consistent across Tamil, Devanagari
// and Latin text.
func CountRunes(text string) int {
	return len([]rune(text))
}

const ellipsis = "..."

// Truncate shortens text to at most maxRunes characters, ending in an ellipsis when
// anything was cut. The ellipsis counts against the budget, so the result never
// exceeds maxRunes. Text at or under the limit is returned unchanged.
func Truncate(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	if maxRunes <= len(ellipsis) {
		return string(runes[:maxRunes])
	}
	return strings.TrimSpace(string(runes[:maxRunes-len(ellipsis)])) + ellipsis
}
