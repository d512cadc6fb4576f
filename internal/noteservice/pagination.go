package noteservice

import "github.com/starford/othala/internal/models"

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// Page is one slice of a user's notes plus derived position metadata.
type Page struct {
	Items      []models.Note
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// clampPaging normalises request paging: missing or non-positive values fall
// back to page 1 / 10 per page, and per-page is silently capped at 100.
// Page number itself is not capped; out-of-range pages yield empty slices
// with accurate totals rather than an error.
func clampPaging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// newPage computes the pagination metadata for one result slice.
func newPage(items []models.Note, page, perPage, total int) *Page {
	totalPages := 0
	if total > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return &Page{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
