package metrics

import "time"

// RecordFeedCrawl records the duration and yield of one feed crawl.
func RecordFeedCrawl(feedURL string, duration time.Duration, itemsFetched int) {
	FeedCrawlDuration.WithLabelValues(feedURL).Observe(duration.Seconds())
	if itemsFetched > 0 {
		ArticlesFetchedTotal.WithLabelValues(feedURL).Add(float64(itemsFetched))
	}
}

// RecordFeedCrawlError records a feed fetch failure.
// errorType should be a stable low-cardinality label such as "fetch_failed" or "empty".
func RecordFeedCrawlError(feedURL, errorType string) {
	FeedCrawlErrors.WithLabelValues(feedURL, errorType).Inc()
}

// RecordLanguageDetected records one classification outcome.
func RecordLanguageDetected(language string) {
	LanguageDetectedTotal.WithLabelValues(language).Inc()
}

// RecordTranslation records a translation attempt for a provider.
func RecordTranslation(provider string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	TranslationsTotal.WithLabelValues(provider, status).Inc()
}

// RecordReviewAction records one operator action: "approve", "reject" or "edit".
func RecordReviewAction(action string) {
	ReviewActionsTotal.WithLabelValues(action).Inc()
}

// RecordPodcastGenerated records a podcast generation and whether the audio came from a
// real provider or the placeholder path.
func RecordPodcastGenerated(placeholder bool) {
	audio := "synthesized"
	if placeholder {
		audio = "placeholder"
	}
	PodcastsGeneratedTotal.WithLabelValues(audio).Inc()
}

// RecordSpeechSynthesisDuration records the time taken by a synthesis provider call.
func RecordSpeechSynthesisDuration(duration time.Duration) {
	SpeechSynthesisDuration.Observe(duration.Seconds())
}
