// ABOUTME: SQLite-based favorite storage for persisting saved articles
// ABOUTME: Provides a file-based store that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"newshub-api/core/domain"
)

// Storage implements the FavoriteStorage interface using SQLite
type Storage struct {
	db       *sql.DB
	filePath string
}

// NewFavoriteStorage creates a new SQLite favorite storage
func NewFavoriteStorage(filePath string) (*Storage, error) {
	if filePath == "" {
		filePath = "favorites.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	storage := &Storage{
		db:       db,
		filePath: filePath,
	}

	if err := storage.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

// initSchema creates the favorites table if it doesn't exist
func (s *Storage) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS favorites (
			id TEXT PRIMARY KEY,
			article BLOB NOT NULL,
			saved_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_saved_at ON favorites(saved_at);
	`

	_, err := s.db.Exec(query)
	return err
}

// Save persists a favorited article, overwriting any previous copy
func (s *Storage) Save(ctx context.Context, article domain.Article) error {
	if article.ID == "" {
		return errors.New("article ID cannot be empty")
	}

	value, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("failed to marshal article: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO favorites (id, article, saved_at)
		VALUES (?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query, article.ID, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}

	return nil
}

// Remove deletes a favorite by article ID. Unknown IDs are not an error.
func (s *Storage) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("article ID cannot be empty")
	}

	_, err := s.db.ExecContext(ctx, "DELETE FROM favorites WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

// List returns all favorited articles, most recently saved first
func (s *Storage) List(ctx context.Context) ([]domain.Article, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT article FROM favorites ORDER BY saved_at DESC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}

		var article domain.Article
		if err := json.Unmarshal(value, &article); err != nil {
			return nil, fmt.Errorf("failed to unmarshal favorite: %w", err)
		}

		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// Contains reports whether an article with the given ID is favorited
func (s *Storage) Contains(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errors.New("article ID cannot be empty")
	}

	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM favorites WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return true, nil
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}
