// Package article exposes the review workflow over HTTP.
package article

import (
	"time"

	"chutti-news/internal/domain/entity"
)

// ArticleResponse is the wire representation of a reviewed article.
type ArticleResponse struct {
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
	Approved            bool      `json:"approved"`
	Edited              bool      `json:"edited"`
}

// ListResponse carries the full article list plus review counters.
type ListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Approved int               `json:"approved"`
}

// UpdateRequest carries edited Tamil text for one article.
type UpdateRequest struct {
	TamilTitle   string `json:"tamil_title"`
	TamilSummary string `json:"tamil_summary"`
}

// StatusResponse reports the outcome of an approve or reject action.
type StatusResponse struct {
	ID       string `json:"id"`
	Approved bool   `json:"approved"`
}

func toResponse(a *entity.Article) ArticleResponse {
	return ArticleResponse{
		ID:                  a.ID,
		OriginalTitle:       a.OriginalTitle,
		OriginalSummary:     a.OriginalSummary,
		Link:                a.Link,
		Published:           a.Published,
		CreatedAt:           a.CreatedAt,
		TitleLanguage:       a.TitleLanguage,
		SummaryLanguage:     a.SummaryLanguage,
		TamilTitle:          a.TamilTitle,
		TamilSummary:        a.TamilSummary,
		TranslationProvider: a.TranslationProvider,
		NeedsTranslation:    a.NeedsTranslation,
		Approved:            a.Approved,
		Edited:              a.Edited,
	}
}
