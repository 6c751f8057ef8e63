// ABOUTME: Preview data source serves deterministic in-memory fixture articles
// ABOUTME: Stands in for a real backend during development and demos

package preview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"newshub-api/core/domain"
	coreerrors "newshub-api/core/errors"
)

// pageSize is the number of articles returned per page.
const pageSize = 20

// articlesPerCategory controls how many fixture articles each category gets.
// Some of them are deliberately older than the recency window so the
// filtering behavior is visible in demos.
const articlesPerCategory = 12

var authors = []string{
	"Dana Whitfield",
	"Marcus Chen",
	"Priya Raman",
	"Tomás Oliveira",
	"Ingrid Svensson",
}

// Source is an ArticleDataSource backed by generated fixture data.
type Source struct {
	articles []domain.Article
	latency  time.Duration
}

// Option configures a Source
type Option func(*Source)

// WithLatency makes every fetch wait for d before returning, to make the
// loading path observable when driving a UI against preview data.
func WithLatency(d time.Duration) Option {
	return func(s *Source) {
		s.latency = d
	}
}

// NewSource creates a preview source with a fixture set generated
// relative to the current time.
func NewSource(opts ...Option) *Source {
	s := &Source{
		articles: generateFixtures(time.Now()),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// FetchArticles returns one page of fixture articles, optionally filtered
// by category. Pages past the end of the fixture set are empty, not errors.
func (s *Source) FetchArticles(ctx context.Context, category *domain.Category, page int) ([]domain.Article, error) {
	if page < 1 {
		return nil, &coreerrors.ValidationError{Field: "page", Message: "must be a positive integer"}
	}
	if category != nil && !category.IsValid() {
		return nil, &coreerrors.ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", *category)}
	}

	if s.latency > 0 {
		select {
		case <-ctx.Done():
			return nil, &coreerrors.CancelledError{}
		case <-time.After(s.latency):
		}
	}

	if ctx.Err() != nil {
		return nil, &coreerrors.CancelledError{}
	}

	matched := s.articles
	if category != nil {
		matched = make([]domain.Article, 0, articlesPerCategory)
		for _, a := range s.articles {
			if a.Category == *category {
				matched = append(matched, a)
			}
		}
	}

	return paginate(matched, page), nil
}

// paginate returns the 1-based page slice of articles
func paginate(articles []domain.Article, page int) []domain.Article {
	start := (page - 1) * pageSize
	end := start + pageSize

	if start >= len(articles) {
		return []domain.Article{}
	}

	if end > len(articles) {
		end = len(articles)
	}

	return articles[start:end]
}

// generateFixtures builds the full fixture set, newest first.
// Publication times are staggered so every category spans from "today"
// back past the 30-day recency window.
func generateFixtures(now time.Time) []domain.Article {
	categories := domain.AllCategories()
	articles := make([]domain.Article, 0, len(categories)*articlesPerCategory)

	for ci, category := range categories {
		for i := 0; i < articlesPerCategory; i++ {
			// Ages run from a few hours up to roughly 44 days.
			age := time.Duration(i)*4*24*time.Hour + time.Duration(ci+1)*3*time.Hour

			articles = append(articles, domain.Article{
				ID:          uuid.New().String(),
				Title:       fmt.Sprintf("%s update #%d", titleCase(category.String()), i+1),
				Description: fmt.Sprintf("A short look at what is moving in %s right now.", category),
				Content:     fixtureBody(category, i),
				Author:      authors[(ci+i)%len(authors)],
				PublishedAt: now.Add(-age),
				ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s-%d/800/400", category, i+1),
				Category:    category,
				Tags:        []string{category.String(), "news", fmt.Sprintf("story-%d", i+1)},
			})
		}
	}

	// Newest first across all categories, mirroring what a backend would
	// return for the unfiltered view.
	for i := 1; i < len(articles); i++ {
		for j := i; j > 0 && articles[j].PublishedAt.After(articles[j-1].PublishedAt); j-- {
			articles[j], articles[j-1] = articles[j-1], articles[j]
		}
	}

	return articles
}

// fixtureBody produces body text of varying length so derived reading
// times differ between articles.
func fixtureBody(category domain.Category, i int) string {
	sentence := fmt.Sprintf("Analysts following the %s beat point to steady movement across the sector. ", category)
	return strings.TrimSpace(strings.Repeat(sentence, 12+(i*7)%30))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
