// Command api serves the review API: article listing and editing,
// approval, manual pipeline runs and podcast generation.
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

	"github.com/prometheus/client_golang/prometheus/promhttp"
	openai "github.com/sashabaranov/go-openai"

	"chutti-news/internal/config"
	handler "chutti-news/internal/handler/http"
	"chutti-news/internal/handler/http/article"
	pipelineHandler "chutti-news/internal/handler/http/pipeline"
	podcastHandler "chutti-news/internal/handler/http/podcast"
	"chutti-news/internal/handler/http/requestid"
	"chutti-news/internal/infra/adapter/persistence/jsonfile"
	"chutti-news/internal/infra/fetcher"
	"chutti-news/internal/infra/langdetect"
	"chutti-news/internal/infra/speech"
	"chutti-news/internal/infra/translator"
	"chutti-news/internal/observability/logging"
	pipelineUC "chutti-news/internal/usecase/pipeline"
	podcastUC "chutti-news/internal/usecase/podcast"
	"chutti-news/internal/usecase/review"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(config.GetEnvString("CONFIG_FILE", "config.yaml"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	repo := newArticleRepo(cfg)
	reviewService := review.NewService(repo)
	pipelineService := setupPipelineService(cfg, repo)
	podcastService := setupPodcastService(cfg, repo)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      applyMiddleware(setupRoutes(cfg, reviewService, pipelineService, podcastService)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: config.GetEnvDuration("HTTP_WRITE_TIMEOUT", 5*time.Minute),
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("api server starting", slog.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("api server stopped")
}

func newArticleRepo(cfg *config.Config) *jsonfile.ArticleRepo {
	return jsonfile.NewArticleRepo(
		filepath.Join(cfg.DataDir, "processed_news.json"),
		filepath.Join(cfg.DataDir, "approved_news.json"),
	)
}

// setupPipelineService wires the fetch, classification and translation
// dependencies into a pipeline service.
func setupPipelineService(cfg *config.Config, repo *jsonfile.ArticleRepo) *pipelineUC.Service {
	classifier := langdetect.NewClassifier(langdetect.NewLinguaDetector())

	var enhancer fetcher.ContentEnhancer
	if cfg.EnhanceContent {
		enhancer = fetcher.NewReadabilityFetcher(fetcher.DefaultContentFetchConfig())
	}
	feedFetcher := fetcher.NewRSSFetcher(newHTTPClient(), enhancer)

	sources := make([]pipelineUC.FeedSource, 0, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		sources = append(sources, pipelineUC.FeedSource{URL: f.URL, MaxItems: f.MaxItems})
	}

	return pipelineUC.NewService(repo, feedFetcher, classifier, setupTranslator(cfg, classifier), sources, cfg.CutoffDays)
}

// setupTranslator builds the provider chain. Providers without credentials
// report themselves unconfigured and the chain falls through, so all three
// are always registered in order.
func setupTranslator(cfg *config.Config, classifier translator.Classifier) *translator.Translator {
	claudeConfig := translator.DefaultClaudeConfig(cfg.Providers.AnthropicAPIKey)
	if cfg.Providers.AnthropicModel != "" {
		claudeConfig.Model = cfg.Providers.AnthropicModel
	}
	return translator.New(classifier,
		translator.NewClaude(claudeConfig),
		translator.NewGoogle(translator.DefaultGoogleConfig(cfg.Providers.GoogleAPIKey)),
		translator.NewDictionary(),
	)
}

func setupPodcastService(cfg *config.Config, repo *jsonfile.ArticleRepo) *podcastUC.Service {
	speechConfig := speech.DefaultOpenAIConfig(cfg.Providers.OpenAIAPIKey)
	if cfg.Providers.OpenAIVoice != "" {
		speechConfig.Voice = openai.SpeechVoice(cfg.Providers.OpenAIVoice)
	}
	synth := speech.New(speech.NewOpenAI(speechConfig))

	return podcastUC.NewService(repo, synth, podcastUC.Config{
		DataDir:          cfg.DataDir,
		ScriptFileName:   cfg.Podcast.ScriptFileName,
		AudioFileName:    cfg.Podcast.AudioFileName,
		TimestampedNames: cfg.Podcast.TimestampedNames,
	})
}

func setupRoutes(
	cfg *config.Config,
	reviewService *review.Service,
	pipelineService *pipelineUC.Service,
	podcastService *podcastUC.Service,
) *http.ServeMux {
	mux := http.NewServeMux()
	article.Register(mux, reviewService)
	pipelineHandler.Register(mux, pipelineService)
	podcastHandler.Register(mux, podcastService)
	mux.Handle("GET /healthz", handler.NewHealthHandler(cfg.DataDir))
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

// applyMiddleware wraps the mux so requests get an ID first, then panic
// recovery, then logging and metrics.
func applyMiddleware(mux *http.ServeMux) http.Handler {
	var h http.Handler = mux
	h = handler.Metrics(h)
	h = handler.Logging(h)
	h = handler.InputLimits(h)
	h = handler.Recover(h)
	h = requestid.Middleware(h)
	return h
}

// newHTTPClient builds the shared feed-fetching client with TLS 1.2+
// enforced and pooled connections.
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
