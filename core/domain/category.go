// ABOUTME: Category enumeration for news articles
// ABOUTME: Provides parsing and validation for the fixed category set

package domain

import "fmt"

// Category identifies one of the fixed article categories.
type Category string

const (
	CategoryTechnology    Category = "technology"
	CategoryScience       Category = "science"
	CategoryBusiness      Category = "business"
	CategoryHealth        Category = "health"
	CategoryEntertainment Category = "entertainment"
	CategorySports        Category = "sports"
)

// AllCategories returns every valid category in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryTechnology,
		CategoryScience,
		CategoryBusiness,
		CategoryHealth,
		CategoryEntertainment,
		CategorySports,
	}
}

// IsValid reports whether the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryTechnology, CategoryScience, CategoryBusiness,
		CategoryHealth, CategoryEntertainment, CategorySports:
		return true
	}
	return false
}

// String returns the category as a string
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a string into a Category.
// Returns an error for unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}
