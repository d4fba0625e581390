package pipeline_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"chutti-news/internal/handler/http/pipeline"
	"chutti-news/internal/infra/adapter/persistence/jsonfile"
	pipelineUC "chutti-news/internal/usecase/pipeline"
)

type stubFetcher struct {
	items []pipelineUC.FeedItem
}

func (f *stubFetcher) Fetch(ctx context.Context, feedURL string, cutoff time.Time, limit int) ([]pipelineUC.FeedItem, error) {
	return f.items, nil
}

type stubClassifier struct{}

func (stubClassifier) Classify(ctx context.Context, text string) string { return "en" }

type stubTranslator struct{}

func (stubTranslator) ToTamil(ctx context.Context, text string) (pipelineUC.Translation, error) {
	return pipelineUC.Translation{Text: "[தமிழ்] " + text, Provider: "claude", Verified: true}, nil
}

func TestRunHandler(t *testing.T) {
	dir := t.TempDir()
	repo := jsonfile.NewArticleRepo(
		filepath.Join(dir, "processed_news.json"),
		filepath.Join(dir, "approved_news.json"),
	)
	fetcher := &stubFetcher{items: []pipelineUC.FeedItem{
		{Title: "Rain expected", Summary: "Heavy rain this week", Link: "https://example.com/1", Published: time.Now()},
		{Title: "School holiday", Summary: "Schools closed Monday", Link: "https://example.com/2", Published: time.Now()},
	}}
	svc := pipelineUC.NewService(repo, fetcher, stubClassifier{}, stubTranslator{},
		[]pipelineUC.FeedSource{{URL: "https://example.com/feed", MaxItems: 10}}, 7)

	mux := http.NewServeMux()
	pipeline.Register(mux, svc)

	req := httptest.NewRequest(http.MethodPost, "/pipeline/run", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var stats pipelineUC.RunStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if stats.Fetched != 2 {
		t.Errorf("fetched = %d, want 2", stats.Fetched)
	}
	if stats.Stored != 2 {
		t.Errorf("stored = %d, want 2", stats.Stored)
	}

	articles, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(articles) != 2 {
		t.Errorf("persisted %d articles, want 2", len(articles))
	}
}

func TestRunHandlerMethodNotAllowed(t *testing.T) {
	mux := http.NewServeMux()
	pipeline.Register(mux, pipelineUC.NewService(nil, nil, stubClassifier{}, stubTranslator{}, nil, 0))

	req := httptest.NewRequest(http.MethodGet, "/pipeline/run", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
