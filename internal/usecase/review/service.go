package review

import (
	"context"
	"fmt"

	"chutti-news/internal/domain/entity"
	"chutti-news/internal/observability/metrics"
	"chutti-news/internal/repository"

	"github.com/google/uuid"
)

// EditInput represents the input parameters for editing an article's Tamil text.
type EditInput struct {
	ID      string
	Title   string
	Summary string
}

// ListResult contains the article list together with review counts.
type ListResult struct {
	Articles []*entity.Article
	Total    int
	Approved int
}

// Service provides the review workflow over the article repository.
// Every mutation rewrites the persisted list; approvals additionally recompute
// the approved-subset artifact.
type Service struct {
	Repo repository.ArticleRepository
}

// NewService creates a review Service backed by the given repository.
func NewService(repo repository.ArticleRepository) *Service {
	return &Service{Repo: repo}
}

// List retrieves all processed articles with total and approved counts.
func (s *Service) List(ctx context.Context) (*ListResult, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	result := &ListResult{Articles: articles, Total: len(articles)}
	for _, a := range articles {
		if a.Approved {
			result.Approved++
		}
	}
	return result, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID for a malformed ID and ErrArticleNotFound when absent.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Edit overwrites an article's Tamil title and summary and marks it edited.
// The original text and detected languages are never touched.
func (s *Service) Edit(ctx context.Context, input EditInput) error {
	article, err := s.Get(ctx, input.ID)
	if err != nil {
		return err
	}

	article.TamilTitle = input.Title
	article.TamilSummary = input.Summary
	article.Edited = true

	if err := s.Repo.Update(ctx, article); err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	metrics.RecordReviewAction("edit")
	return nil
}

// Approve marks an article approved and recomputes the approved-subset artifact.
func (s *Service) Approve(ctx context.Context, id string) error {
	if err := s.setApproved(ctx, id, true); err != nil {
		return err
	}
	metrics.RecordReviewAction("approve")
	return nil
}

// Reject clears an article's approval and recomputes the approved-subset artifact.
func (s *Service) Reject(ctx context.Context, id string) error {
	if err := s.setApproved(ctx, id, false); err != nil {
		return err
	}
	metrics.RecordReviewAction("reject")
	return nil
}

// ListApproved returns the approved articles in review order.
func (s *Service) ListApproved(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.ListApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("list approved articles: %w", err)
	}
	return articles, nil
}

func (s *Service) setApproved(ctx context.Context, id string, approved bool) error {
	article, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	article.Approved = approved
	if err := s.Repo.Update(ctx, article); err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	return s.recomputeApproved(ctx)
}

// recomputeApproved rebuilds the approved-subset artifact from the full list.
func (s *Service) recomputeApproved(ctx context.Context) error {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list articles: %w", err)
	}

	approved := make([]*entity.Article, 0)
	for _, a := range articles {
		if a.Approved {
			approved = append(approved, a)
		}
	}

	if err := s.Repo.SaveApproved(ctx, approved); err != nil {
		return fmt.Errorf("save approved articles: %w", err)
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return ErrInvalidArticleID
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidArticleID
	}
	return nil
}
