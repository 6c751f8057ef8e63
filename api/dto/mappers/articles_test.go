package mappers

import (
	"testing"
	"time"

	"newshub-api/api/dto/requests"
	"newshub-api/core/domain"
)

func TestToArticleResponse(t *testing.T) {
	published := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	article := domain.Article{
		ID:          "art-1",
		Title:       "Title one",
		Description: "Short summary",
		Content:     "one two three four",
		Author:      "Jordan Ellis",
		PublishedAt: published,
		ImageURL:    "https://example.com/a.jpg",
		Category:    domain.CategoryScience,
		Tags:        []string{"space"},
	}

	got := ToArticleResponse(article)

	if got.ID != "art-1" || got.Title != "Title one" {
		t.Errorf("identity fields not mapped: %+v", got)
	}
	if got.Category != "science" {
		t.Errorf("category = %q, want science", got.Category)
	}
	if !got.PublishedAt.Equal(published) {
		t.Errorf("published_at = %v, want %v", got.PublishedAt, published)
	}
	if got.ReadingTimeMinutes != 1 {
		t.Errorf("reading time = %d, want 1", got.ReadingTimeMinutes)
	}
}

func TestToArticleResponses_EmptyNotNil(t *testing.T) {
	got := ToArticleResponses(nil)
	if got == nil {
		t.Error("ToArticleResponses(nil) = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFromSaveFavoriteRequest(t *testing.T) {
	published := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	req := requests.SaveFavoriteRequest{
		ID:          "art-9",
		Title:       "Saved title",
		PublishedAt: published,
		Category:    "business",
		Tags:        []string{"markets", "ipo"},
	}

	got := FromSaveFavoriteRequest(req)

	if got.ID != "art-9" {
		t.Errorf("ID = %q, want art-9", got.ID)
	}
	if got.Category != domain.CategoryBusiness {
		t.Errorf("category = %q, want business", got.Category)
	}
	if len(got.Tags) != 2 {
		t.Errorf("tags = %v, want 2 entries", got.Tags)
	}
}
