// ABOUTME: Article service handles cache-or-fetch orchestration for news articles
// ABOUTME: Provides business logic for article retrieval independent of HTTP layer

package articles

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"newshub-api/core/domain"
	coreerrors "newshub-api/core/errors"
	"newshub-api/core/interfaces"
)

const (
	// cacheTTL is how long a cached article list stays fresh.
	cacheTTL = 300 * time.Second

	// maxArticleAge is the recency cutoff applied to freshly fetched articles.
	maxArticleAge = 30 * 24 * time.Hour
)

// cacheEntry holds the filtered articles for one query along with the
// capture timestamp used for the TTL check.
type cacheEntry struct {
	articles []domain.Article
	cachedAt time.Time
}

// ArticleService mediates between callers and the article data source.
// It applies a cache-or-fetch decision per (category, page) query, filters
// and sorts freshly fetched articles, and supports forced bypass plus
// manual invalidation. The cache map is owned exclusively by the service.
type ArticleService struct {
	deps interfaces.Dependencies

	mu    sync.Mutex
	cache map[string]cacheEntry

	// now is swapped out in tests to drive TTL and age-window checks
	now func() time.Time
}

// NewArticleService creates a new article service instance
func NewArticleService(deps interfaces.Dependencies) *ArticleService {
	return &ArticleService{
		deps:  deps,
		cache: make(map[string]cacheEntry),
		now:   time.Now,
	}
}

// Fetch returns the filtered, recency-sorted articles for the given query.
// A nil category means "all categories"; page is 1-based. When forceRefresh
// is false a fresh cache entry satisfies the call without touching the data
// source. Data-source failures are propagated to the caller unchanged.
func (s *ArticleService) Fetch(ctx context.Context, category *domain.Category, page int, forceRefresh bool) ([]domain.Article, error) {
	if page < 1 {
		return nil, &coreerrors.ValidationError{Field: "page", Message: "must be a positive integer"}
	}

	key := cacheKey(category, page)

	if !forceRefresh {
		if cached, ok := s.lookup(key); ok {
			if s.deps.Logger != nil {
				s.deps.Logger.Debug("Cache hit for article query", map[string]interface{}{
					"key":   key,
					"count": len(cached),
				})
			}
			return cached, nil
		}
	}

	raw, err := s.deps.DataSource.FetchArticles(ctx, category, page)
	if err != nil {
		// Pass-through: no retry, no translation, cache left untouched.
		if s.deps.Logger != nil && !coreerrors.IsCancelled(err) {
			s.deps.Logger.Error("Data source fetch failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	// A cancelled fetch must never write to the cache, even if the data
	// source returned a result before noticing the cancellation.
	if ctx.Err() != nil {
		return nil, &coreerrors.CancelledError{}
	}

	articles := s.applyBusinessRules(raw)

	s.mu.Lock()
	s.cache[key] = cacheEntry{articles: articles, cachedAt: s.now()}
	s.mu.Unlock()

	return articles, nil
}

// ClearCache removes all cache entries unconditionally. Every subsequent
// Fetch consults the data source at least once.
func (s *ArticleService) ClearCache() {
	s.mu.Lock()
	s.cache = make(map[string]cacheEntry)
	s.mu.Unlock()

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Article cache cleared", nil)
	}
}

// CachedQueries returns the number of live cache entries, expired or not.
func (s *ArticleService) CachedQueries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// lookup returns the cached articles for key if the entry exists and has
// not outlived the TTL. Expired entries are treated as misses; they are
// overwritten by the next successful fetch rather than deleted here.
func (s *ArticleService) lookup(key string) ([]domain.Article, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[key]
	if !ok {
		return nil, false
	}

	if s.now().Sub(entry.cachedAt) > cacheTTL {
		return nil, false
	}

	return entry.articles, true
}

// applyBusinessRules drops articles published more than 30 days before now
// and sorts the remainder by publication time, newest first. The sort is
// stable so equal timestamps keep their incoming order.
func (s *ArticleService) applyBusinessRules(raw []domain.Article) []domain.Article {
	cutoff := s.now().Add(-maxArticleAge)

	articles := make([]domain.Article, 0, len(raw))
	for _, a := range raw {
		if a.PublishedAt.After(cutoff) {
			articles = append(articles, a)
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	return articles
}

// cacheKey derives the deterministic cache key for a query.
// A nil category uses the "all" sentinel.
func cacheKey(category *domain.Category, page int) string {
	if category == nil {
		return fmt.Sprintf("all:%d", page)
	}
	return fmt.Sprintf("%s:%d", *category, page)
}
