package handler

import "github.com/eventra/event-console/internal/core/ports"

// pageResponse is the JSON envelope for every paginated list endpoint.
type pageResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func newPageResponse[T any](p *ports.Page[T]) pageResponse[T] {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return pageResponse[T]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

// queryPage reads the shared page/limit query parameters.
type pageQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}
