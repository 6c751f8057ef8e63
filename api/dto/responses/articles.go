// ABOUTME: Response DTOs for the articles and favorites endpoints
// ABOUTME: Defines the JSON shapes returned to API clients

package responses

import "time"

// ArticleResponse is the API representation of a single article
type ArticleResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	Content            string    `json:"content,omitempty"`
	Author             string    `json:"author,omitempty"`
	PublishedAt        time.Time `json:"published_at"`
	ImageURL           string    `json:"image_url,omitempty"`
	Category           string    `json:"category,omitempty"`
	Tags               []string  `json:"tags,omitempty"`
	ReadingTimeMinutes int       `json:"reading_time_minutes"`
}

// ArticlesResponse is the envelope for article list endpoints
type ArticlesResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Category string            `json:"category,omitempty"`
	Page     int               `json:"page"`
	Count    int               `json:"count"`
}

// FavoritesResponse is the envelope for the favorites list endpoint
type FavoritesResponse struct {
	Favorites []ArticleResponse `json:"favorites"`
	Count     int               `json:"count"`
}

// FavoriteStatusResponse reports whether an article is a favorite
type FavoriteStatusResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

// CacheClearResponse acknowledges a cache clear
type CacheClearResponse struct {
	Status string `json:"status"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
