// Package entity defines the core business entities for the domain layer.
package entity

// AllCategories is the category filter value that shows every category.
const AllCategories = "All"

// DefaultPageSize is the number of transactions shown per page.
const DefaultPageSize = 15

// SortOrder represents the direction of the date ordering in list views.
type SortOrder string

const (
	SortOrderNewest SortOrder = "newest"
	SortOrderOldest SortOrder = "oldest"
)

// IsValid reports whether the order is a known value.
func (o SortOrder) IsValid() bool {
	return o == SortOrderNewest || o == SortOrderOldest
}

// ViewConfig holds every caller-selected view parameter. It is passed by
// value into each computation and never mutated in place.
type ViewConfig struct {
	Month    Month     `json:"month"`
	Category string    `json:"category"`
	Order    SortOrder `json:"order"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

// NewestFirst reports whether the list view sorts newest transactions first.
func (v ViewConfig) NewestFirst() bool {
	return v.Order != SortOrderOldest
}

// WithCategory returns a copy of the view with another category filter.
func (v ViewConfig) WithCategory(category string) ViewConfig {
	v.Category = category
	return v
}

// WithPage returns a copy of the view pointing at another page.
func (v ViewConfig) WithPage(page int) ViewConfig {
	v.Page = page
	return v
}
