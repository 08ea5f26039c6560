package ports

import (
	"context"
	"time"

	"github.com/eventra/event-console/internal/core/domain"
)

// Page is a single page of list results, in the collection's source order.
type Page[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// EventService defines the event list and calendar use cases.
type EventService interface {
	ListEvents(ctx context.Context, filter EventFilter) (*Page[*domain.Event], error)
	StatusCounts(ctx context.Context) (map[domain.EventStatus]int64, error)
	// Month returns the events of a calendar month keyed by day of month.
	Month(ctx context.Context, year int, month time.Month) (map[int][]*domain.Event, error)
	// Upcoming returns the next events on or after now, soonest first.
	Upcoming(ctx context.Context, now time.Time, limit int) ([]*domain.Event, error)
}

// CatalogService defines the society, vendor, and exhibitor list use cases.
type CatalogService interface {
	ListSocieties(ctx context.Context, filter SocietyFilter) (*Page[*domain.Society], error)
	ListVendors(ctx context.Context, filter VendorFilter) (*Page[*domain.Vendor], error)
	VendorCategoryCounts(ctx context.Context) (map[domain.VendorCategory]int64, error)
	ListExhibitors(ctx context.Context, filter ExhibitorFilter) (*Page[*domain.Exhibitor], error)
	ExhibitorSummary(ctx context.Context) (*ExhibitorSummary, error)
}

// ExhibitorSummary holds the stat-card numbers for the exhibitors screen.
type ExhibitorSummary struct {
	Total         int64
	Registered    int64
	Confirmed     int64
	CheckedIn     int64
	Cancelled     int64
	PaidAmount    float64
	PendingAmount float64
}

// DirectoryService defines the operator-directory list use cases.
type DirectoryService interface {
	ListUsers(ctx context.Context, filter UserFilter) (*Page[*domain.User], error)
	RoleCounts(ctx context.Context) (map[domain.Role]int64, error)
}

// BillingService defines the billing screen use cases.
type BillingService interface {
	ListPlans(ctx context.Context) ([]*domain.Plan, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) (*Page[*domain.Invoice], error)
	ListSubscriptions(ctx context.Context, filter SubscriptionFilter) (*Page[*domain.Subscription], error)
	Summary(ctx context.Context) (*BillingSummary, error)
}

// BillingSummary holds the stat-card numbers for the billing screen.
type BillingSummary struct {
	TotalRevenue        float64
	PendingAmount       float64
	PendingInvoices     int64
	OverdueAmount       float64
	OverdueInvoices     int64
	ActiveSubscriptions int64
}

// DashboardService computes role-scoped stat cards.
type DashboardService interface {
	Stats(ctx context.Context, session *domain.Session) (*DashboardStats, error)
}

// StatCard is a single dashboard figure with its month-over-month delta.
type StatCard struct {
	Title  string  `json:"title"`
	Value  string  `json:"value"`
	Change float64 `json:"change"`
}

// DashboardStats is the dashboard payload for one operator.
type DashboardStats struct {
	Cards []StatCard `json:"cards"`
}
