// ABOUTME: Hand-rolled mocks for handler tests
// ABOUTME: Function-field fakes for the article and favorite services

package handlers

import (
	"context"

	"newshub-api/core/domain"
)

type mockArticleService struct {
	fetchFunc       func(ctx context.Context, category *domain.Category, page int, forceRefresh bool) ([]domain.Article, error)
	clearCacheCalls int
}

func (m *mockArticleService) Fetch(ctx context.Context, category *domain.Category, page int, forceRefresh bool) ([]domain.Article, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, category, page, forceRefresh)
	}
	return nil, nil
}

func (m *mockArticleService) ClearCache() {
	m.clearCacheCalls++
}

type mockFavoritesService struct {
	saveFunc       func(ctx context.Context, article domain.Article) error
	removeFunc     func(ctx context.Context, id string) error
	listFunc       func(ctx context.Context) ([]domain.Article, error)
	isFavoriteFunc func(ctx context.Context, id string) (bool, error)
}

func (m *mockFavoritesService) Save(ctx context.Context, article domain.Article) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, article)
	}
	return nil
}

func (m *mockFavoritesService) Remove(ctx context.Context, id string) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, id)
	}
	return nil
}

func (m *mockFavoritesService) List(ctx context.Context) ([]domain.Article, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockFavoritesService) IsFavorite(ctx context.Context, id string) (bool, error) {
	if m.isFavoriteFunc != nil {
		return m.isFavoriteFunc(ctx, id)
	}
	return false, nil
}
