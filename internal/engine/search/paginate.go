package search

// DefaultPerPage is the page size used when none is given
const DefaultPerPage = 24

// Page is one slice of a result set plus its pagination metadata
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
}

// Paginate returns the requested page, clamping page into [1, TotalPages].
// There is always at least one page, even for an empty list.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}

	slice := make([]T, 0, end-start)
	slice = append(slice, items[start:end]...)

	return Page[T]{
		Items:      slice,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
	}
}
