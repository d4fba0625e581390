// Package pipeline orchestrates the fetch, classify, translate and store stages that turn
// raw feed entries into reviewable articles.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chutti-news/internal/domain/entity"
	"chutti-news/internal/observability/metrics"
	"chutti-news/internal/repository"
)

// FeedItem represents a single normalized entry from an RSS/Atom feed.
type FeedItem struct {
	Title     string
	Summary   string
	Link      string
	Published time.Time
}

// FeedFetcher is an interface for fetching RSS/Atom feeds from a URL.
// Entries older than cutoff are skipped without counting against limit.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string, cutoff time.Time, limit int) ([]FeedItem, error)
}

// Classifier reports the dominant language code of a text blob, or "unknown".
type Classifier interface {
	Classify(ctx context.Context, text string) string
}

// Translation is the outcome of translating one text to Tamil.
type Translation struct {
	// Text is the Tamil output.
	Text string

	// Provider names the backend that produced Text; "none" when the input was already
	// Tamil and returned unchanged.
	Provider string

	// Verified is false when the output came from the dictionary fallback and needs a
	// human pass before publication.
	Verified bool
}

// Translator converts text to Tamil through a provider chain.
type Translator interface {
	ToTamil(ctx context.Context, text string) (Translation, error)
}

// FeedSource is one configured feed with its per-run item limit.
type FeedSource struct {
	URL      string
	MaxItems int
}

// Service runs the news-processing pipeline over a configured set of feeds.
type Service struct {
	ArticleRepo repository.ArticleRepository
	Fetcher     FeedFetcher
	Classifier  Classifier
	Translator  Translator
	Sources     []FeedSource
	CutoffDays  int
}

// NewService creates a pipeline Service with the provided dependencies.
func NewService(
	articleRepo repository.ArticleRepository,
	f FeedFetcher,
	classifier Classifier,
	translator Translator,
	sources []FeedSource,
	cutoffDays int,
) *Service {
	return &Service{
		ArticleRepo: articleRepo,
		Fetcher:     f,
		Classifier:  classifier,
		Translator:  translator,
		Sources:     sources,
		CutoffDays:  cutoffDays,
	}
}

// RunStats contains statistics about one pipeline run.
type RunStats struct {
	Feeds      int           `json:"feeds"`
	FeedErrors int           `json:"feed_errors"`
	Fetched    int           `json:"fetched"`
	Translated int           `json:"translated"`
	Unverified int           `json:"unverified"`
	Stored     int           `json:"stored"`
	Duration   time.Duration `json:"-"`
}

// Run fetches all configured feeds and processes their entries into stored articles.
// A failing feed is logged and skipped; the run continues with the remaining feeds.
// Only context cancellation aborts the run.
func (s *Service) Run(ctx context.Context) (*RunStats, error) {
	start := time.Now()
	stats := &RunStats{Feeds: len(s.Sources)}

	var cutoff time.Time
	if s.CutoffDays > 0 {
		cutoff = time.Now().AddDate(0, 0, -s.CutoffDays)
	}

	var processed []*entity.Article
	for _, src := range s.Sources {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		items, err := s.Fetcher.Fetch(ctx, src.URL, cutoff, src.MaxItems)
		if err != nil {
			stats.FeedErrors++
			slog.Warn("feed fetch failed, continuing with next feed",
				slog.String("url", src.URL),
				slog.Any("error", err))
			continue
		}
		stats.Fetched += len(items)

		for _, item := range items {
			article, err := s.processItem(ctx, item, stats)
			if err != nil {
				return stats, err
			}
			processed = append(processed, article)
		}
	}

	if len(processed) > 0 {
		if err := s.ArticleRepo.Append(ctx, processed); err != nil {
			return stats, fmt.Errorf("store processed articles: %w", err)
		}
	}
	stats.Stored = len(processed)
	stats.Duration = time.Since(start)

	slog.Info("pipeline run completed",
		slog.Int("feeds", stats.Feeds),
		slog.Int("feed_errors", stats.FeedErrors),
		slog.Int("fetched", stats.Fetched),
		slog.Int("translated", stats.Translated),
		slog.Int("unverified", stats.Unverified),
		slog.Int("stored", stats.Stored),
		slog.Duration("duration", stats.Duration),
	)
	return stats, nil
}

// processItem classifies one feed entry and translates its foreign fields.
// Translation failures keep the original text; only context cancellation is returned.
func (s *Service) processItem(ctx context.Context, item FeedItem, stats *RunStats) (*entity.Article, error) {
	titleLang := s.Classifier.Classify(ctx, item.Title)
	metrics.RecordLanguageDetected(titleLang)

	summaryLang := entity.LangUnknown
	if item.Summary != "" {
		summaryLang = s.Classifier.Classify(ctx, item.Summary)
		metrics.RecordLanguageDetected(summaryLang)
	}

	article := entity.NewArticle(item.Title, item.Summary, item.Link, item.Published, titleLang, summaryLang)
	if !article.NeedsTranslation {
		return article, nil
	}

	if tr, ok, err := s.translateField(ctx, item.Title, titleLang); err != nil {
		return nil, err
	} else if ok {
		article.TamilTitle = tr.Text
		article.TranslationProvider = tr.Provider
		stats.Translated++
		if !tr.Verified {
			stats.Unverified++
		}
	}

	if tr, ok, err := s.translateField(ctx, item.Summary, summaryLang); err != nil {
		return nil, err
	} else if ok {
		article.TamilSummary = tr.Text
		article.TranslationProvider = tr.Provider
		stats.Translated++
		if !tr.Verified {
			stats.Unverified++
		}
	}

	return article, nil
}

// translateField translates text when its detected language is neither Tamil nor unknown.
// The boolean reports whether a translation was applied.
func (s *Service) translateField(ctx context.Context, input, lang string) (Translation, bool, error) {
	if lang == entity.LangTamil || lang == entity.LangUnknown {
		return Translation{}, false, nil
	}

	tr, err := s.Translator.ToTamil(ctx, input)
	if err != nil {
		if ctx.Err() != nil {
			return Translation{}, false, err
		}
		slog.Warn("translation failed, keeping original text",
			slog.String("language", lang),
			slog.Any("error", err))
		return Translation{}, false, nil
	}
	return tr, true, nil
}
