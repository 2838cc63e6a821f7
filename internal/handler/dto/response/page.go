package response

import (
	"storefront-api/internal/usecase/readmodel"
)

type PageResponse[T any] struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Count       int64 `json:"count"`
	Items       []T   `json:"items"`
}

// MapPage converts the items of a pagination envelope while keeping its
// counters.
func MapPage[In, Out any](p *readmodel.Page[In], conv func(In) Out) *PageResponse[Out] {
	items := make([]Out, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, conv(item))
	}
	return &PageResponse[Out]{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		Count:       p.Count,
		Items:       items,
	}
}
