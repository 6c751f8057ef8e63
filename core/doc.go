// Package core contains the business logic for the Tech News Hub API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Article, Category)
// - articles: Article fetching service with cache-or-fetch orchestration
// - favorites: Favorited-article service over a storage abstraction
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (data source, storage, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "newshub-api/core/articles"
//	    "newshub-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    DataSource: mySource, // implements interfaces.ArticleDataSource
//	    Logger:     myLogger, // implements interfaces.Logger
//	}
//
//	// Create service
//	articleService := articles.NewArticleService(deps)
//
//	// Fetch the first page across all categories
//	items, err := articleService.Fetch(ctx, nil, 1, false)
package core
