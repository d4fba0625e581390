// Package repository defines persistence interfaces for the domain layer.
package repository

import (
	"context"

	"chutti-news/internal/domain/entity"
)

// ArticleRepository manages the processed-article list and the derived approved-subset
// artifact. Articles are keyed by their stable ID; list order is preserved for review but
// carries no identity.
type ArticleRepository interface {
	// List returns all processed articles in review order.
	// A missing or unreadable backing artifact yields an empty list, not an error.
	List(ctx context.Context) ([]*entity.Article, error)

	// Get returns the article with the given ID.
	// Returns (nil, nil) if no such article exists.
	Get(ctx context.Context, id string) (*entity.Article, error)

	// Append adds newly processed articles to the end of the list and persists it.
	Append(ctx context.Context, articles []*entity.Article) error

	// Update replaces the stored article that has the same ID and persists the list.
	// Returns entity.ErrNotFound if the ID is not present.
	Update(ctx context.Context, article *entity.Article) error

	// ListApproved returns the persisted approved-subset artifact.
	ListApproved(ctx context.Context) ([]*entity.Article, error)

	// SaveApproved overwrites the approved-subset artifact.
	SaveApproved(ctx context.Context, articles []*entity.Article) error
}
