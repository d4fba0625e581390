// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article record carried through fetch, classification, translation and
// review, along with its validation rules and domain-specific errors.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LangTamil is the ISO 639-1 code for Tamil, the pipeline's target language.
const LangTamil = "ta"

// LangUnknown is the sentinel language code used when classification is not possible.
const LangUnknown = "unknown"

// Article represents one news item in the review pipeline.
// OriginalTitle and OriginalSummary are immutable once created; the Tamil fields start as
// copies of the originals and are overwritten by translation or by a human edit.
type Article struct {
	ID                  string    `json:"id"`
	OriginalTitle       string    `json:"original_title"`
	OriginalSummary     string    `json:"original_summary"`
	Link                string    `json:"link"`
	Published           time.Time `json:"published"`
	CreatedAt           time.Time `json:"created_at"`
	TitleLanguage       string    `json:"title_language"`
	SummaryLanguage     string    `json:"summary_language"`
	TamilTitle          string    `json:"tamil_title"`
	TamilSummary        string    `json:"tamil_summary"`
	TranslationProvider string    `json:"translation_provider,omitempty"`
	NeedsTranslation    bool      `json:"needs_translation"`
	Approved            bool      `json:"approved,omitempty"`
	Edited              bool      `json:"edited,omitempty"`
}

// NewArticle creates an Article from fetched feed data with a freshly assigned identity.
// The Tamil fields are initialized to the original text and the translation state is derived
// from the detected languages. Language codes that fail validation are stored as unknown
// rather than treated as foreign.
func NewArticle(title, summary, link string, published time.Time, titleLang, summaryLang string) *Article {
	titleLang = normalizeLanguage(titleLang)
	summaryLang = normalizeLanguage(summaryLang)
	a := &Article{
		ID:              uuid.NewString(),
		OriginalTitle:   title,
		OriginalSummary: summary,
		Link:            link,
		Published:       published,
		CreatedAt:       time.Now(),
		TitleLanguage:   titleLang,
		SummaryLanguage: summaryLang,
		TamilTitle:      title,
		TamilSummary:    summary,
	}
	a.NeedsTranslation = DeriveNeedsTranslation(titleLang, summaryLang)
	return a
}

// DeriveNeedsTranslation reports whether an article with the given detected languages
// requires translation: true iff either language is neither Tamil nor unknown.
func DeriveNeedsTranslation(titleLang, summaryLang string) bool {
	return isForeign(titleLang) || isForeign(summaryLang)
}

func isForeign(lang string) bool {
	return lang != LangTamil && lang != LangUnknown
}

func normalizeLanguage(code string) string {
	if ValidateLanguageCode(code) != nil {
		return LangUnknown
	}
	return code
}
