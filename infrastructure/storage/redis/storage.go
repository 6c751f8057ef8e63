// ABOUTME: Redis-based favorite storage using JSON documents
// ABOUTME: Stores each favorited article under its own key via ReJSON

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nitishm/go-rejson/v4"
	goredis "github.com/redis/go-redis/v9"

	"newshub-api/core/domain"
)

// keyPrefix namespaces favorite documents in Redis.
const keyPrefix = "favorite:"

// Storage implements the FavoriteStorage interface using Redis JSON documents
type Storage struct {
	client  *goredis.Client
	handler *rejson.Handler
}

// NewFavoriteStorage creates a new Redis favorite storage
func NewFavoriteStorage(addr, password string, db int) (*Storage, error) {
	if addr == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClient(client)

	return &Storage{
		client:  client,
		handler: handler,
	}, nil
}

// Save persists a favorited article as a JSON document
func (s *Storage) Save(ctx context.Context, article domain.Article) error {
	if article.ID == "" {
		return errors.New("article ID cannot be empty")
	}

	if _, err := s.handler.JSONSet(keyPrefix+article.ID, ".", article); err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}

	return nil
}

// Remove deletes a favorite by article ID. Unknown IDs are not an error.
func (s *Storage) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("article ID cannot be empty")
	}

	return s.client.Del(ctx, keyPrefix+id).Err()
}

// List returns all favorited articles
func (s *Storage) List(ctx context.Context) ([]domain.Article, error) {
	keys, err := s.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	articles := make([]domain.Article, 0, len(keys))
	for _, key := range keys {
		val, err := s.handler.JSONGet(key, ".")
		if err != nil {
			// Key may have been removed between KEYS and JSON.GET.
			continue
		}

		raw, ok := val.([]byte)
		if !ok {
			continue
		}

		var article domain.Article
		if err := json.Unmarshal(raw, &article); err != nil {
			return nil, fmt.Errorf("failed to unmarshal favorite %s: %w", key, err)
		}

		articles = append(articles, article)
	}

	return articles, nil
}

// Contains reports whether an article with the given ID is favorited
func (s *Storage) Contains(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errors.New("article ID cannot be empty")
	}

	n, err := s.client.Exists(ctx, keyPrefix+id).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return n > 0, nil
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}
