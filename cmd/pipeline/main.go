// Command pipeline runs one fetch-classify-translate pass and exits.
// Useful for backfills and local testing without the cron worker.
package main

import (
	"context"
	"crypto/tls"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"chutti-news/internal/config"
	"chutti-news/internal/infra/adapter/persistence/jsonfile"
	"chutti-news/internal/infra/fetcher"
	"chutti-news/internal/infra/langdetect"
	"chutti-news/internal/infra/translator"
	"chutti-news/internal/observability/logging"
	pipelineUC "chutti-news/internal/usecase/pipeline"
)

func main() {
	configPath := flag.String("config", config.GetEnvString("CONFIG_FILE", "config.yaml"), "path to the YAML config file")
	timeout := flag.Duration("timeout", 10*time.Minute, "run timeout")
	flag.Parse()

	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	stats, err := setupPipelineService(cfg).Run(ctx)
	if err != nil {
		logger.Error("pipeline run failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("pipeline run finished",
		slog.Int("feeds", stats.Feeds),
		slog.Int("feed_errors", stats.FeedErrors),
		slog.Int("fetched", stats.Fetched),
		slog.Int("translated", stats.Translated),
		slog.Int("unverified", stats.Unverified),
		slog.Int("stored", stats.Stored),
	)
}

func setupPipelineService(cfg *config.Config) *pipelineUC.Service {
	repo := jsonfile.NewArticleRepo(
		filepath.Join(cfg.DataDir, "processed_news.json"),
		filepath.Join(cfg.DataDir, "approved_news.json"),
	)
	classifier := langdetect.NewClassifier(langdetect.NewLinguaDetector())

	var enhancer fetcher.ContentEnhancer
	if cfg.EnhanceContent {
		enhancer = fetcher.NewReadabilityFetcher(fetcher.DefaultContentFetchConfig())
	}
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
		},
	}
	feedFetcher := fetcher.NewRSSFetcher(httpClient, enhancer)

	claudeConfig := translator.DefaultClaudeConfig(cfg.Providers.AnthropicAPIKey)
	if cfg.Providers.AnthropicModel != "" {
		claudeConfig.Model = cfg.Providers.AnthropicModel
	}
	chain := translator.New(classifier,
		translator.NewClaude(claudeConfig),
		translator.NewGoogle(translator.DefaultGoogleConfig(cfg.Providers.GoogleAPIKey)),
		translator.NewDictionary(),
	)

	sources := make([]pipelineUC.FeedSource, 0, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		sources = append(sources, pipelineUC.FeedSource{URL: f.URL, MaxItems: f.MaxItems})
	}

	return pipelineUC.NewService(repo, feedFetcher, classifier, chain, sources, cfg.CutoffDays)
}
