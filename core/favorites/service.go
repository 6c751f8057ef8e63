// ABOUTME: Favorites service handles the user's saved article subset
// ABOUTME: Provides business logic over an injected storage abstraction

package favorites

import (
	"context"
	"errors"

	"newshub-api/core/domain"
	"newshub-api/core/interfaces"
)

// FavoritesService handles favorited-article operations.
// Favorites are keyed by article ID and persisted independently of the
// article fetch cache.
type FavoritesService struct {
	storage interfaces.FavoriteStorage
}

// NewFavoritesService creates a new favorites service instance
func NewFavoritesService(storage interfaces.FavoriteStorage) *FavoritesService {
	return &FavoritesService{
		storage: storage,
	}
}

// Save persists an article as a favorite
func (s *FavoritesService) Save(ctx context.Context, article domain.Article) error {
	if !article.IsValid() {
		return errors.New("article must have an ID and a title")
	}

	return s.storage.Save(ctx, article)
}

// Remove deletes a favorite by article ID
func (s *FavoritesService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("article ID cannot be empty")
	}

	return s.storage.Remove(ctx, id)
}

// List returns all favorited articles
func (s *FavoritesService) List(ctx context.Context) ([]domain.Article, error) {
	return s.storage.List(ctx)
}

// IsFavorite reports whether the article with the given ID is favorited
func (s *FavoritesService) IsFavorite(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errors.New("article ID cannot be empty")
	}

	return s.storage.Contains(ctx, id)
}
