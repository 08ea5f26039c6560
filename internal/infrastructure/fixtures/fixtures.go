// Package fixtures is the in-memory data provider backing the console in
// demo mode. Every repository serves a static seeded collection; list
// operations filter conjunctively and preserve the collection's source
// order. Nothing here talks to a real backend.
package fixtures

import (
	"strings"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// containsFold reports whether needle occurs in haystack, ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// paginate slices one page out of the filtered collection. A non-positive
// limit returns everything; a page beyond the end yields an empty page, not
// an error.
func paginate[T any](items []T, page, limit int) ([]T, int64) {
	total := int64(len(items))
	if limit <= 0 {
		return items, total
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}, total
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}
