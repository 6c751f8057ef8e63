package domain

import (
	"strings"
	"testing"
	"time"
)

func TestReadingTime_MinimumOneMinute(t *testing.T) {
	article := &Article{Content: "just a few words here"}

	if got := article.ReadingTime(); got != 1 {
		t.Errorf("ReadingTime = %d, want 1 for a short body", got)
	}
}

func TestReadingTime_EmptyContent(t *testing.T) {
	article := &Article{}

	if got := article.ReadingTime(); got != 1 {
		t.Errorf("ReadingTime = %d, want 1 for empty content", got)
	}
}

func TestReadingTime_FlooredWordCount(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{199, 1},
		{200, 1},
		{399, 1},
		{400, 2},
		{1000, 5},
		{1199, 5},
	}

	for _, tt := range tests {
		article := &Article{
			Content: strings.TrimSpace(strings.Repeat("word ", tt.words)),
		}
		if got := article.ReadingTime(); got != tt.want {
			t.Errorf("ReadingTime(%d words) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	valid := &Article{
		ID:          "a1",
		Title:       "Headline",
		PublishedAt: time.Now(),
	}
	if !valid.IsValid() {
		t.Error("IsValid = false for an article with ID and title")
	}

	if (&Article{Title: "Headline"}).IsValid() {
		t.Error("IsValid = true for an article without ID")
	}

	if (&Article{ID: "a1"}).IsValid() {
		t.Error("IsValid = true for an article without title")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories() {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Errorf("ParseCategory(%s) returned error: %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCategory(%s) = %s", c, got)
		}
	}

	if _, err := ParseCategory("politics"); err == nil {
		t.Error("ParseCategory should reject unknown categories")
	}

	if _, err := ParseCategory(""); err == nil {
		t.Error("ParseCategory should reject the empty string")
	}
}

func TestCategoryIsValid(t *testing.T) {
	if Category("gardening").IsValid() {
		t.Error("IsValid = true for an unknown category")
	}

	if !CategoryHealth.IsValid() {
		t.Error("IsValid = false for a known category")
	}
}
