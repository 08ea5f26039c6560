package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
)

func newTestDashboardService(events *stubEventRepo, subs []*domain.Subscription) *DashboardService {
	return NewDashboardService(
		events,
		&stubSocietyRepo{total: 12},
		&stubVendorRepo{},
		&stubExhibitorRepo{total: 30},
		&stubBillingRepo{subscriptions: subs},
		zerolog.Nop(),
	)
}

func TestDashboardService_SuperAdminStats(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	events := &stubEventRepo{events: []*domain.Event{
		{ID: "1", Status: domain.EventPublished, Date: day},
		{ID: "2", Status: domain.EventOngoing, Date: day},
		{ID: "3", Status: domain.EventCompleted, Date: day},
	}}
	subs := []*domain.Subscription{
		{ID: "1", Status: domain.SubscriptionActive, MonthlyAmount: 250000},
		{ID: "2", Status: domain.SubscriptionActive, MonthlyAmount: 100000},
		{ID: "3", Status: domain.SubscriptionExpired, MonthlyAmount: 999999},
	}
	svc := newTestDashboardService(events, subs)

	stats, err := svc.Stats(context.Background(), &domain.Session{Role: domain.RoleSuperAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.Cards) != 6 {
		t.Fatalf("expected 6 cards, got %d", len(stats.Cards))
	}

	byTitle := make(map[string]string)
	for _, card := range stats.Cards {
		byTitle[card.Title] = card.Value
	}
	if byTitle["Total Events"] != "3" {
		t.Fatalf("unexpected total events: %q", byTitle["Total Events"])
	}
	if byTitle["Active Events"] != "2" {
		t.Fatalf("unexpected active events: %q", byTitle["Active Events"])
	}
	if byTitle["Societies"] != "12" {
		t.Fatalf("unexpected societies: %q", byTitle["Societies"])
	}
	if byTitle["Monthly Revenue"] != "₹3.5L" {
		t.Fatalf("expired subscription counted into revenue: %q", byTitle["Monthly Revenue"])
	}
}

func TestDashboardService_RevenueSpansPages(t *testing.T) {
	var subs []*domain.Subscription
	for i := 0; i < 120; i++ {
		subs = append(subs, &domain.Subscription{
			ID:            strconv.Itoa(i + 1),
			Status:        domain.SubscriptionActive,
			MonthlyAmount: 2000,
		})
	}
	svc := newTestDashboardService(&stubEventRepo{}, subs)

	stats, err := svc.Stats(context.Background(), &domain.Session{Role: domain.RoleSuperAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, card := range stats.Cards {
		if card.Title == "Monthly Revenue" {
			if card.Value != "₹2.4L" {
				t.Fatalf("revenue undercounted: got %q, want ₹2.4L", card.Value)
			}
			return
		}
	}
	t.Fatal("monthly revenue card missing")
}

func TestDashboardService_PersonalStats(t *testing.T) {
	svc := newTestDashboardService(&stubEventRepo{}, nil)

	stats, err := svc.Stats(context.Background(), &domain.Session{Role: domain.RoleSociety})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.Cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(stats.Cards))
	}
	if stats.Cards[0].Title != "My Events" {
		t.Fatalf("unexpected first card: %+v", stats.Cards[0])
	}
}

func TestFormatLakhs(t *testing.T) {
	if got := formatLakhs(350000); got != "₹3.5L" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := formatLakhs(0); got != "₹0.0L" {
		t.Fatalf("unexpected format: %q", got)
	}
}
