package service

import "github.com/eventra/event-console/internal/core/ports"

const (
	defaultLimit = 20
	maxLimit     = 100
)

// normalizePage clamps page/limit to sane values: 1-based page, default
// page size, hard cap on the page size.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// collectAll drains a paged listing. Aggregations must see every record,
// not just the first window a paging backend returns.
func collectAll[T any](list func(page, limit int) ([]T, int64, error)) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		items, total, err := list(page, maxLimit)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) == 0 || int64(len(all)) >= total {
			return all, nil
		}
	}
}

// buildPage assembles the pagination envelope around one page of items.
func buildPage[T any](items []T, total int64, page, limit int) *ports.Page[T] {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return &ports.Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
