// Package fetcher retrieves articles from RSS/Atom feeds.
// It uses the gofeed library to parse feed content with reliability patterns.
package fetcher

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"chutti-news/internal/observability/metrics"
	"chutti-news/internal/resilience/circuitbreaker"
	"chutti-news/internal/resilience/retry"
	"chutti-news/internal/usecase/pipeline"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"
)

// ContentEnhancer extracts readable article text from a page URL.
// Used when a feed entry carries no usable summary.
type ContentEnhancer interface {
	FetchContent(ctx context.Context, url string) (string, error)
}

// RSSFetcher implements feed fetching using the gofeed library.
// It includes circuit breaker and retry logic for improved reliability.
type RSSFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	enhancer       ContentEnhancer
}

// NewRSSFetcher creates a new RSSFetcher with the given HTTP client.
// enhancer may be nil, in which case entries without a summary keep an empty one.
func NewRSSFetcher(client *http.Client, enhancer ContentEnhancer) *RSSFetcher {
	return &RSSFetcher{
		client:         client,
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		retryConfig:    retry.FeedFetchConfig(),
		enhancer:       enhancer,
	}
}

// Fetch retrieves and parses a feed, returning at most limit items published at or
// after cutoff. Items older than the cutoff are skipped without counting against the
// limit. A limit of zero or less means no limit.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string, cutoff time.Time, limit int) ([]pipeline.FeedItem, error) {
	start := time.Now()

	var feed *gofeed.Feed
	retryErr := retry.WithBackoff(ctx, f.retryConfig, func() error {
		cbResult, err := f.circuitBreaker.Execute(func() (interface{}, error) {
			return f.doFetch(ctx, feedURL)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("feed fetch circuit breaker open, request rejected",
					slog.String("service", "feed-fetch"),
					slog.String("url", feedURL),
					slog.String("state", f.circuitBreaker.State().String()))
			}
			return err
		}
		feed = cbResult.(*gofeed.Feed)
		return nil
	})
	if retryErr != nil {
		metrics.RecordFeedCrawlError(feedURL, "fetch_failed")
		return nil, retryErr
	}

	items := f.collect(ctx, feed, cutoff, limit)
	metrics.RecordFeedCrawl(feedURL, time.Since(start), len(items))
	return items, nil
}

// doFetch performs the actual feed fetch without retry or circuit breaker.
func (f *RSSFetcher) doFetch(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "ChuttiNewsBot"
	fp.Client = f.client

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}
	return feed, nil
}

// collect resolves feed entries into Items, applying the cutoff and limit.
func (f *RSSFetcher) collect(ctx context.Context, feed *gofeed.Feed, cutoff time.Time, limit int) []pipeline.FeedItem {
	items := make([]pipeline.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if limit > 0 && len(items) >= limit {
			break
		}

		published := resolvePublished(it)
		if !cutoff.IsZero() && published.Before(cutoff) {
			continue
		}

		summary := resolveSummary(it)
		if summary == "" && f.enhancer != nil {
			summary = f.enhance(ctx, it.Link)
		}

		items = append(items, pipeline.FeedItem{
			Title:     it.Title,
			Summary:   summary,
			Link:      it.Link,
			Published: published,
		})
	}
	return items
}

// enhance fetches readable page text; failures degrade to an empty summary.
func (f *RSSFetcher) enhance(ctx context.Context, link string) string {
	if link == "" {
		return ""
	}
	content, err := f.enhancer.FetchContent(ctx, link)
	if err != nil {
		slog.Debug("content enhancement failed, keeping empty summary",
			slog.String("url", link),
			slog.String("error", err.Error()))
		return ""
	}
	return content
}

// resolvePublished picks the entry timestamp: published, then updated, then now.
func resolvePublished(it *gofeed.Item) time.Time {
	if it.PublishedParsed != nil {
		return *it.PublishedParsed
	}
	if it.UpdatedParsed != nil {
		return *it.UpdatedParsed
	}
	return time.Now()
}

// resolveSummary picks the entry summary: description, then content, then the first
// extension value carrying article text.
func resolveSummary(it *gofeed.Item) string {
	if it.Description != "" {
		return it.Description
	}
	if it.Content != "" {
		return it.Content
	}
	for _, exts := range it.Extensions {
		for _, list := range exts {
			for _, e := range list {
				if e.Value != "" {
					return e.Value
				}
			}
		}
	}
	return ""
}
