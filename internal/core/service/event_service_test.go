package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

func testEvent(id, title string, date time.Time) *domain.Event {
	return &domain.Event{
		ID:     id,
		Title:  title,
		Status: domain.EventPublished,
		City:   "Mumbai",
		Date:   date,
	}
}

func TestEventService_ListEvents(t *testing.T) {
	repo := &stubEventRepo{events: []*domain.Event{
		testEvent("1", "Diwali Mela", time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)),
		testEvent("2", "Food Carnival", time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC)),
	}}
	svc := NewEventService(repo, zerolog.Nop())

	page, err := svc.ListEvents(context.Background(), ports.EventFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 || page.Page != 1 || page.Limit != 20 {
		t.Fatalf("unexpected envelope: %+v", page)
	}
	if len(page.Items) != 2 || page.Items[0].Title != "Diwali Mela" {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
}

func TestEventService_Month(t *testing.T) {
	repo := &stubEventRepo{events: []*domain.Event{
		testEvent("1", "Opening", time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)),
		testEvent("2", "Workshop", time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)),
		testEvent("3", "Closing", time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)),
		testEvent("4", "Next Month", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)),
	}}
	svc := NewEventService(repo, zerolog.Nop())

	byDay, err := svc.Month(context.Background(), 2026, time.September)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byDay) != 2 {
		t.Fatalf("expected events on 2 days, got %d", len(byDay))
	}
	if len(byDay[5]) != 2 {
		t.Fatalf("expected 2 events on the 5th, got %d", len(byDay[5]))
	}
	if len(byDay[28]) != 1 || byDay[28][0].Title != "Closing" {
		t.Fatalf("unexpected events on the 28th: %+v", byDay[28])
	}
	if _, ok := byDay[1]; ok {
		t.Fatal("event from the following month leaked into the view")
	}
}

func TestEventService_Upcoming(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	repo := &stubEventRepo{events: []*domain.Event{
		testEvent("1", "Later", time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)),
		testEvent("2", "Soonest", time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)),
		testEvent("3", "Past", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)),
		testEvent("4", "Middle", time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)),
	}}
	svc := NewEventService(repo, zerolog.Nop())

	events, err := svc.Upcoming(context.Background(), now, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 upcoming events, got %d", len(events))
	}
	if events[0].Title != "Soonest" || events[1].Title != "Middle" || events[2].Title != "Later" {
		t.Fatalf("events out of order: %s, %s, %s", events[0].Title, events[1].Title, events[2].Title)
	}
}

func TestEventService_UpcomingTruncates(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubEventRepo{}
	for i := 0; i < 8; i++ {
		repo.events = append(repo.events, testEvent("x", "Event", now.AddDate(0, 0, i+1)))
	}
	svc := NewEventService(repo, zerolog.Nop())

	events, err := svc.Upcoming(context.Background(), now, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != defaultUpcomingLimit {
		t.Fatalf("expected %d events, got %d", defaultUpcomingLimit, len(events))
	}

	events, err = svc.Upcoming(context.Background(), now, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
}
