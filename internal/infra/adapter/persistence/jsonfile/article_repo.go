// Package jsonfile provides a JSON-file implementation of the repository interfaces.
// Articles are persisted as human-readable, two-space-indented UTF-8 JSON arrays; every
// mutation rewrites the whole artifact through a temp file and rename so readers never see
// a partial write.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"chutti-news/internal/domain/entity"
)

// ArticleRepo implements repository.ArticleRepository on top of two JSON artifacts:
// the processed list and the approved subset.
type ArticleRepo struct {
	processedPath string
	approvedPath  string

	// guards the read-modify-write cycle within this process; the file contract itself
	// stays last-write-wins as the expected concurrency is a single operator
	mu sync.Mutex
}

// NewArticleRepo creates a JSON-file-backed article repository writing to the given paths.
func NewArticleRepo(processedPath, approvedPath string) *ArticleRepo {
	return &ArticleRepo{
		processedPath: processedPath,
		approvedPath:  approvedPath,
	}
}

// List returns all processed articles in review order.
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.load(repo.processedPath)
}

// Get returns the article with the given ID, or (nil, nil) when absent.
func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	articles, err := repo.load(repo.processedPath)
	if err != nil {
		return nil, err
	}
	for _, a := range articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

// Append adds articles to the end of the processed list and persists it.
func (repo *ArticleRepo) Append(ctx context.Context, articles []*entity.Article) error {
	if len(articles) == 0 {
		return nil
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, err := repo.load(repo.processedPath)
	if err != nil {
		return err
	}
	return repo.save(repo.processedPath, append(existing, articles...))
}

// Update replaces the stored article with the same ID and persists the list.
func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	articles, err := repo.load(repo.processedPath)
	if err != nil {
		return err
	}

	for i, a := range articles {
		if a.ID == article.ID {
			articles[i] = article
			return repo.save(repo.processedPath, articles)
		}
	}
	return fmt.Errorf("update article %s: %w", article.ID, entity.ErrNotFound)
}

// ListApproved returns the persisted approved-subset artifact.
func (repo *ArticleRepo) ListApproved(ctx context.Context) ([]*entity.Article, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.load(repo.approvedPath)
}

// SaveApproved overwrites the approved-subset artifact.
func (repo *ArticleRepo) SaveApproved(ctx context.Context, articles []*entity.Article) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.save(repo.approvedPath, articles)
}

// load reads a JSON article list. A missing file or corrupt content is treated as an
// empty list: the artifact is operator-editable, so unreadable data must not take the
// whole application down.
func (repo *ArticleRepo) load(path string) ([]*entity.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*entity.Article{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var articles []*entity.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		slog.Warn("article artifact is not valid JSON, treating as empty",
			slog.String("path", path),
			slog.Any("error", err))
		return []*entity.Article{}, nil
	}
	if articles == nil {
		articles = []*entity.Article{}
	}
	return articles, nil
}

// save writes the list atomically: marshal, write to a temp file in the same directory,
// then rename over the target.
func (repo *ArticleRepo) save(path string, articles []*entity.Article) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal articles: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s to %s: %w", tmpPath, path, err)
	}
	return nil
}
