// ABOUTME: Article domain model represents a single news article
// ABOUTME: Articles are immutable values produced by a data source

package domain

import (
	"strings"
	"time"
)

// wordsPerMinute is the reading speed used for the reading time estimate.
const wordsPerMinute = 200

// Article represents a single news article.
// All fields are set at construction and never mutated; derived values
// are computed on demand.
type Article struct {
	// ID is the globally unique identifier for the article
	ID string `json:"id"`

	// Title is the article headline
	Title string `json:"title"`

	// Description is a short summary of the article
	Description string `json:"description"`

	// Content is the full body text
	Content string `json:"content"`

	// Author is the name of the article's author
	Author string `json:"author"`

	// PublishedAt is the publication timestamp
	PublishedAt time.Time `json:"published_at"`

	// ImageURL is an optional cover image reference
	ImageURL string `json:"image_url,omitempty"`

	// Category is the article's category
	Category Category `json:"category"`

	// Tags is an unordered list of free-text tags
	Tags []string `json:"tags,omitempty"`
}

// ReadingTime returns the estimated reading time in minutes based on
// the body word count, with a minimum of one minute.
func (a *Article) ReadingTime() int {
	words := len(strings.Fields(a.Content))
	minutes := words / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// IsValid checks if the article has all required fields
func (a *Article) IsValid() bool {
	if a.ID == "" {
		return false
	}

	if a.Title == "" {
		return false
	}

	return true
}
