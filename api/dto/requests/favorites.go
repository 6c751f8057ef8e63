// ABOUTME: Request DTOs for the favorites endpoints
// ABOUTME: Defines payload validation for saving favorites

package requests

import (
	"fmt"
	"time"
)

// SaveFavoriteRequest is the payload for POST /favorites
type SaveFavoriteRequest struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content,omitempty"`
	Author      string    `json:"author,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

// Validate checks the request for required fields
func (r *SaveFavoriteRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
