// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"

	"newshub-api/core/domain"
)

// ArticleDataSource defines the interface for fetching raw articles.
// Implementations can talk to a real backend, parse RSS feeds, or serve
// canned preview data.
//
// Example usage:
//
//	source := someSource // implements ArticleDataSource
//
//	// Fetch page 1 of technology articles
//	cat := domain.CategoryTechnology
//	articles, err := source.FetchArticles(ctx, &cat, 1)
//
//	// Fetch page 2 across all categories
//	articles, err = source.FetchArticles(ctx, nil, 2)
type ArticleDataSource interface {
	// FetchArticles retrieves raw articles for the given page.
	// A nil category means "all categories". Failures are reported
	// using the core error taxonomy (ConnectivityError, ServerError,
	// DecodingError, CancelledError, UnknownError).
	FetchArticles(ctx context.Context, category *domain.Category, page int) ([]domain.Article, error)
}
