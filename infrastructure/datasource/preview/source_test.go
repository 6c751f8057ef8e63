package preview

import (
	"context"
	"testing"
	"time"

	"newshub-api/core/domain"
	coreerrors "newshub-api/core/errors"
)

func TestFetchArticles_FirstPage(t *testing.T) {
	source := NewSource()

	got, err := source.FetchArticles(context.Background(), nil, 1)
	if err != nil {
		t.Fatalf("FetchArticles returned error: %v", err)
	}

	if len(got) != pageSize {
		t.Errorf("FetchArticles returned %d articles, want %d", len(got), pageSize)
	}

	for _, a := range got {
		if !a.IsValid() {
			t.Errorf("fixture article %q is missing required fields", a.ID)
		}
	}
}

func TestFetchArticles_CategoryFilter(t *testing.T) {
	source := NewSource()
	science := domain.CategoryScience

	got, err := source.FetchArticles(context.Background(), &science, 1)
	if err != nil {
		t.Fatalf("FetchArticles returned error: %v", err)
	}

	if len(got) != articlesPerCategory {
		t.Errorf("FetchArticles returned %d science articles, want %d", len(got), articlesPerCategory)
	}
	for _, a := range got {
		if a.Category != domain.CategoryScience {
			t.Errorf("article %q has category %s, want science", a.ID, a.Category)
		}
	}
}

func TestFetchArticles_PastEndIsEmpty(t *testing.T) {
	source := NewSource()

	got, err := source.FetchArticles(context.Background(), nil, 100)
	if err != nil {
		t.Fatalf("FetchArticles returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FetchArticles returned %d articles past the end, want 0", len(got))
	}
}

func TestFetchArticles_InvalidPage(t *testing.T) {
	source := NewSource()

	_, err := source.FetchArticles(context.Background(), nil, 0)
	if !coreerrors.IsValidation(err) {
		t.Errorf("FetchArticles(page=0) error = %v, want ValidationError", err)
	}
}

func TestFetchArticles_InvalidCategory(t *testing.T) {
	source := NewSource()
	bogus := domain.Category("gossip")

	_, err := source.FetchArticles(context.Background(), &bogus, 1)
	if !coreerrors.IsValidation(err) {
		t.Errorf("FetchArticles error = %v, want ValidationError", err)
	}
}

func TestFetchArticles_NewestFirst(t *testing.T) {
	source := NewSource()

	got, err := source.FetchArticles(context.Background(), nil, 1)
	if err != nil {
		t.Fatalf("FetchArticles returned error: %v", err)
	}

	for i := 1; i < len(got); i++ {
		if got[i].PublishedAt.After(got[i-1].PublishedAt) {
			t.Errorf("articles out of order at position %d", i)
		}
	}
}

func TestFetchArticles_CancelledContext(t *testing.T) {
	source := NewSource(WithLatency(50 * time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.FetchArticles(ctx, nil, 1)
	if !coreerrors.IsCancelled(err) {
		t.Errorf("FetchArticles error = %v, want CancelledError", err)
	}
}

func TestFetchArticles_SpansRecencyWindow(t *testing.T) {
	source := NewSource()
	tech := domain.CategoryTechnology

	got, err := source.FetchArticles(context.Background(), &tech, 1)
	if err != nil {
		t.Fatalf("FetchArticles returned error: %v", err)
	}

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	recent, stale := 0, 0
	for _, a := range got {
		if a.PublishedAt.After(cutoff) {
			recent++
		} else {
			stale++
		}
	}

	if recent == 0 || stale == 0 {
		t.Errorf("fixture set should span the 30-day window, got %d recent and %d stale", recent, stale)
	}
}
