package fixtures

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// EventRepository is the in-memory event catalogue.
type EventRepository struct {
	mu     sync.RWMutex
	events []*domain.Event
}

func NewEventRepository() *EventRepository {
	return &EventRepository{events: seedEvents()}
}

func (r *EventRepository) List(ctx context.Context, filter ports.EventFilter) ([]*domain.Event, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Event
	for _, e := range r.events {
		if filter.Status != "" && string(e.Status) != filter.Status {
			continue
		}
		if filter.City != "" && e.City != filter.City {
			continue
		}
		if filter.Search != "" && !containsFold(e.Title, filter.Search) &&
			!containsFold(e.Venue, filter.Search) && !containsFold(e.City, filter.Search) {
			continue
		}
		matched = append(matched, e)
	}

	page, total := paginate(matched, filter.Page, filter.Limit)
	return page, total, nil
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == "" {
		event.ID = strconv.Itoa(len(r.events) + 1)
	}
	copied := *event
	r.events = append(r.events, &copied)
	return nil
}

func (r *EventRepository) CountByStatus(ctx context.Context) (map[domain.EventStatus]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.EventStatus]int64)
	for _, e := range r.events {
		counts[e.Status]++
	}
	return counts, nil
}

func (r *EventRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Event
	for _, e := range r.events {
		if e.Date.Before(from) || !e.Date.Before(to) {
			continue
		}
		matched = append(matched, e)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})
	return matched, nil
}
