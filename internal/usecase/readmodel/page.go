package readmodel

// Page is the pagination envelope shared by merchant-facing list endpoints.
type Page[T any] struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Count       int64 `json:"count"`
	Items       []T   `json:"items"`
}

// NewPage computes totalPages from the full row count and the page size.
// A non-positive page or limit is treated as the first page of size one so
// the arithmetic stays defined for callers that skip handler-level clamping.
func NewPage[T any](items []T, page, limit int, count int64) *Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	totalPages := int((count + int64(limit) - 1) / int64(limit))
	return &Page[T]{
		CurrentPage: page,
		TotalPages:  totalPages,
		Count:       count,
		Items:       items,
	}
}
