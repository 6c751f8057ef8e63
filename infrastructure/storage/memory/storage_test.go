package memory

import (
	"context"
	"testing"
	"time"

	"newshub-api/core/domain"
)

func testArticle(id string, published time.Time) domain.Article {
	return domain.Article{
		ID:          id,
		Title:       "Title " + id,
		PublishedAt: published,
		Category:    domain.CategoryHealth,
	}
}

func TestSaveListRemove(t *testing.T) {
	storage := NewFavoriteStorage()
	ctx := context.Background()
	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	if err := storage.Save(ctx, testArticle("a1", base)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := storage.Save(ctx, testArticle("a2", base.Add(time.Hour))); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := storage.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d favorites, want 2", len(got))
	}
	if got[0].ID != "a2" {
		t.Errorf("List[0] = %s, want a2 (newest first)", got[0].ID)
	}

	if err := storage.Remove(ctx, "a2"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	ok, err := storage.Contains(ctx, "a2")
	if err != nil {
		t.Fatalf("Contains returned error: %v", err)
	}
	if ok {
		t.Error("Contains(a2) = true after remove")
	}
}

func TestSave_EmptyID(t *testing.T) {
	storage := NewFavoriteStorage()

	if err := storage.Save(context.Background(), domain.Article{Title: "no id"}); err == nil {
		t.Error("Save should reject an article without ID")
	}
}

func TestConcurrentAccess(t *testing.T) {
	storage := NewFavoriteStorage()
	ctx := context.Background()
	base := time.Now()

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				id := string(rune('a'+n)) + "-article"
				storage.Save(ctx, testArticle(id, base))
				storage.Contains(ctx, id)
				storage.List(ctx)
			}
		}(i)
	}

	for i := 0; i < 4; i++ {
		<-done
	}

	got, err := storage.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("List returned %d favorites, want 4", len(got))
	}
}
