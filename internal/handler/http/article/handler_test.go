package article_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chutti-news/internal/domain/entity"
	"chutti-news/internal/handler/http/article"
	"chutti-news/internal/infra/adapter/persistence/jsonfile"
	"chutti-news/internal/usecase/review"
)

func newMux(t *testing.T) (*http.ServeMux, *jsonfile.ArticleRepo) {
	t.Helper()
	dir := t.TempDir()
	repo := jsonfile.NewArticleRepo(
		filepath.Join(dir, "processed_news.json"),
		filepath.Join(dir, "approved_news.json"),
	)
	mux := http.NewServeMux()
	article.Register(mux, review.NewService(repo))
	return mux, repo
}

func seed(t *testing.T, repo *jsonfile.ArticleRepo, n int) []*entity.Article {
	t.Helper()
	articles := make([]*entity.Article, 0, n)
	for i := 0; i < n; i++ {
		a := entity.NewArticle(
			"Title", "Summary", "https://example.com/a",
			time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC),
			"en", "en",
		)
		articles = append(articles, a)
	}
	if err := repo.Append(context.Background(), articles); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	return articles
}

func do(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestListArticles(t *testing.T) {
	mux, repo := newMux(t)
	articles := seed(t, repo, 2)

	rec := do(mux, http.MethodPost, "/articles/"+articles[0].ID+"/approve", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("approve status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = do(mux, http.MethodGet, "/articles", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp article.ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Total)
	}
	if resp.Approved != 1 {
		t.Errorf("approved = %d, want 1", resp.Approved)
	}
	if len(resp.Articles) != 2 {
		t.Fatalf("articles = %d, want 2", len(resp.Articles))
	}
	if !resp.Articles[0].Approved {
		t.Error("first article should be approved")
	}
}

func TestListArticlesEmpty(t *testing.T) {
	mux, _ := newMux(t)

	rec := do(mux, http.MethodGet, "/articles", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp article.ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 0 || len(resp.Articles) != 0 {
		t.Errorf("got total=%d articles=%d, want empty list", resp.Total, len(resp.Articles))
	}
	if resp.Articles == nil {
		t.Error("articles should encode as [] not null")
	}
}

func TestGetArticle(t *testing.T) {
	mux, repo := newMux(t)
	articles := seed(t, repo, 1)

	rec := do(mux, http.MethodGet, "/articles/"+articles[0].ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp article.ArticleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID != articles[0].ID {
		t.Errorf("id = %q, want %q", resp.ID, articles[0].ID)
	}
	if resp.OriginalTitle != "Title" {
		t.Errorf("original_title = %q, want Title", resp.OriginalTitle)
	}
}

func TestGetArticleErrors(t *testing.T) {
	mux, _ := newMux(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{
			name: "malformed id",
			path: "/articles/not-a-uuid",
			want: http.StatusBadRequest,
		},
		{
			name: "unknown id",
			path: "/articles/4b1f8a2e-9c3d-4f6a-8b2e-1d5c7e9a0f34",
			want: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(mux, http.MethodGet, tt.path, "")
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestUpdateArticle(t *testing.T) {
	mux, repo := newMux(t)
	articles := seed(t, repo, 1)

	body := `{"tamil_title":"திருத்தப்பட்ட தலைப்பு","tamil_summary":"திருத்தப்பட்ட சுருக்கம்"}`
	rec := do(mux, http.MethodPut, "/articles/"+articles[0].ID, body)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}

	stored, err := repo.Get(context.Background(), articles[0].ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.TamilTitle != "திருத்தப்பட்ட தலைப்பு" {
		t.Errorf("TamilTitle = %q", stored.TamilTitle)
	}
	if !stored.Edited {
		t.Error("Edited should be true after update")
	}
}

func TestUpdateArticleValidation(t *testing.T) {
	mux, repo := newMux(t)
	articles := seed(t, repo, 1)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed JSON",
			body: `{"tamil_title":`,
		},
		{
			name: "missing title",
			body: `{"tamil_summary":"சுருக்கம்"}`,
		},
		{
			name: "blank title",
			body: `{"tamil_title":"   "}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(mux, http.MethodPut, "/articles/"+articles[0].ID, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestApproveAndReject(t *testing.T) {
	mux, repo := newMux(t)
	articles := seed(t, repo, 1)
	id := articles[0].ID

	rec := do(mux, http.MethodPost, "/articles/"+id+"/approve", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("approve status = %d, want %d", rec.Code, http.StatusOK)
	}
	var status article.StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !status.Approved || status.ID != id {
		t.Errorf("approve response = %+v", status)
	}

	approved, err := repo.ListApproved(context.Background())
	if err != nil {
		t.Fatalf("ListApproved() error = %v", err)
	}
	if len(approved) != 1 {
		t.Fatalf("approved artifact has %d articles, want 1", len(approved))
	}

	rec = do(mux, http.MethodPost, "/articles/"+id+"/reject", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("reject status = %d, want %d", rec.Code, http.StatusOK)
	}
	approved, err = repo.ListApproved(context.Background())
	if err != nil {
		t.Fatalf("ListApproved() error = %v", err)
	}
	if len(approved) != 0 {
		t.Errorf("approved artifact has %d articles after reject, want 0", len(approved))
	}
}

func TestApproveUnknownArticle(t *testing.T) {
	mux, _ := newMux(t)

	rec := do(mux, http.MethodPost, "/articles/4b1f8a2e-9c3d-4f6a-8b2e-1d5c7e9a0f34/approve", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
