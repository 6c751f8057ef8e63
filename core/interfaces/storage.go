// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"newshub-api/core/domain"
)

// FavoriteStorage defines the interface for persisting the user's
// favorited subset of articles, keyed by article ID.
type FavoriteStorage interface {
	// Save persists a favorited article. Saving an already-favorited
	// article overwrites the stored copy.
	Save(ctx context.Context, article domain.Article) error

	// Remove deletes a favorited article by ID.
	// Removing an unknown ID is not an error.
	Remove(ctx context.Context, id string) error

	// List returns all favorited articles.
	List(ctx context.Context) ([]domain.Article, error)

	// Contains reports whether an article with the given ID is favorited.
	Contains(ctx context.Context, id string) (bool, error)
}
