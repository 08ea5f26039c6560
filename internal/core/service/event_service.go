package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

const defaultUpcomingLimit = 5

// EventService implements event listing and the calendar views.
type EventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

func NewEventService(repo ports.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, log: log}
}

func (s *EventService) ListEvents(ctx context.Context, filter ports.EventFilter) (*ports.Page[*domain.Event], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list events")
		return nil, err
	}
	return buildPage(items, total, filter.Page, filter.Limit), nil
}

func (s *EventService) StatusCounts(ctx context.Context) (map[domain.EventStatus]int64, error) {
	return s.repo.CountByStatus(ctx)
}

// Month returns the month's events keyed by day of month. Days without
// events are absent from the map.
func (s *EventService) Month(ctx context.Context, year int, month time.Month) (map[int][]*domain.Event, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	events, err := s.repo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int][]*domain.Event)
	for _, ev := range events {
		day := ev.Date.Day()
		byDay[day] = append(byDay[day], ev)
	}
	return byDay, nil
}

// Upcoming returns the next events on or after now, soonest first.
func (s *EventService) Upcoming(ctx context.Context, now time.Time, limit int) ([]*domain.Event, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}

	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	events, err := s.repo.ListByDateRange(ctx, from, from.AddDate(1, 0, 0))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}
