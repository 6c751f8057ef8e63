// ABOUTME: In-memory favorite storage for development and tests
// ABOUTME: Keeps favorited articles in a mutex-guarded map

package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"newshub-api/core/domain"
)

// Storage implements the FavoriteStorage interface with an in-memory map
type Storage struct {
	mu       sync.RWMutex
	articles map[string]domain.Article
}

// NewFavoriteStorage creates a new in-memory favorite storage
func NewFavoriteStorage() *Storage {
	return &Storage{
		articles: make(map[string]domain.Article),
	}
}

// Save persists a favorited article, overwriting any previous copy
func (s *Storage) Save(ctx context.Context, article domain.Article) error {
	if article.ID == "" {
		return errors.New("article ID cannot be empty")
	}

	s.mu.Lock()
	s.articles[article.ID] = article
	s.mu.Unlock()

	return nil
}

// Remove deletes a favorite by article ID. Unknown IDs are not an error.
func (s *Storage) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("article ID cannot be empty")
	}

	s.mu.Lock()
	delete(s.articles, id)
	s.mu.Unlock()

	return nil
}

// List returns all favorited articles, newest publication first
func (s *Storage) List(ctx context.Context) ([]domain.Article, error) {
	s.mu.RLock()
	articles := make([]domain.Article, 0, len(s.articles))
	for _, a := range s.articles {
		articles = append(articles, a)
	}
	s.mu.RUnlock()

	sort.SliceStable(articles, func(i, j int) bool {
		if articles[i].PublishedAt.Equal(articles[j].PublishedAt) {
			return articles[i].ID < articles[j].ID
		}
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	return articles, nil
}

// Contains reports whether an article with the given ID is favorited
func (s *Storage) Contains(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errors.New("article ID cannot be empty")
	}

	s.mu.RLock()
	_, ok := s.articles[id]
	s.mu.RUnlock()

	return ok, nil
}
