// Command worker runs the news pipeline on a cron schedule and serves
// health probes and metrics for orchestration.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"chutti-news/internal/config"
	"chutti-news/internal/infra/adapter/persistence/jsonfile"
	"chutti-news/internal/infra/fetcher"
	"chutti-news/internal/infra/langdetect"
	"chutti-news/internal/infra/translator"
	"chutti-news/internal/infra/worker"
	"chutti-news/internal/observability/logging"
	pipelineUC "chutti-news/internal/usecase/pipeline"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(config.GetEnvString("CONFIG_FILE", "config.yaml"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone),
		slog.Int("feeds", len(cfg.Feeds)),
		slog.Int("cutoff_days", cfg.CutoffDays),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthAddr := config.GetEnvString("HEALTH_ADDR", ":9091")
	healthServer := worker.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	startMetricsServer(ctx, logger)

	jobTimeout := config.GetEnvDuration("PIPELINE_TIMEOUT", 10*time.Minute)
	scheduler := worker.NewScheduler(setupPipelineService(cfg), cfg.CronSchedule, cfg.Location(), jobTimeout, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error("failed to start scheduler", slog.Any("error", err))
		os.Exit(1)
	}
	healthServer.SetReady(true)
	logger.Info("worker started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("worker shutting down")
	healthServer.SetReady(false)
	scheduler.Stop()
	cancel()
	logger.Info("worker stopped")
}

// setupPipelineService wires the fetch, classification and translation
// dependencies into a pipeline service.
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
	feedFetcher := fetcher.NewRSSFetcher(newHTTPClient(), enhancer)

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

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}
