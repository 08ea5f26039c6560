package ports

import (
	"context"
	"time"

	"github.com/eventra/event-console/internal/core/domain"
)

// UserFilter carries query parameters for listing operator accounts.
type UserFilter struct {
	Role   string // optional: exact role match
	Search string // optional: partial match on name or email
	Page   int    // 1-based
	Limit  int
}

// UserRepository is the operator directory.
type UserRepository interface {
	// FindByEmail matches the email case-insensitively.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, int64, error)
	CountByRole(ctx context.Context) (map[domain.Role]int64, error)
}

// EventFilter carries query parameters for listing events.
type EventFilter struct {
	Status string // optional: exact status match
	City   string // optional: exact city match
	Search string // optional: partial match on title, venue, or city
	Page   int    // 1-based
	Limit  int
}

// EventRepository provides read and create access to events.
type EventRepository interface {
	List(ctx context.Context, filter EventFilter) ([]*domain.Event, int64, error)
	Create(ctx context.Context, event *domain.Event) error
	CountByStatus(ctx context.Context) (map[domain.EventStatus]int64, error)
	// ListByDateRange returns events with from <= date < to, in date order.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Event, error)
}

// SocietyFilter carries query parameters for listing societies.
type SocietyFilter struct {
	Status string
	Search string // partial match on name or location
	Page   int
	Limit  int
}

// SocietyRepository provides read access to societies.
type SocietyRepository interface {
	List(ctx context.Context, filter SocietyFilter) ([]*domain.Society, int64, error)
}

// VendorFilter carries query parameters for listing vendors.
type VendorFilter struct {
	Category string
	City     string
	Search   string // partial match on name or contact person
	Page     int
	Limit    int
}

// VendorRepository provides read and create access to vendors.
type VendorRepository interface {
	List(ctx context.Context, filter VendorFilter) ([]*domain.Vendor, int64, error)
	Create(ctx context.Context, vendor *domain.Vendor) error
	CountByCategory(ctx context.Context) (map[domain.VendorCategory]int64, error)
}

// ExhibitorFilter carries query parameters for listing exhibitors. All
// active filters apply conjunctively.
type ExhibitorFilter struct {
	Status        string
	PaymentStatus string
	Category      string
	City          string
	Search        string // partial match on company, contact person, or email
	Page          int
	Limit         int
}

// ExhibitorRepository provides read access to exhibitors.
type ExhibitorRepository interface {
	List(ctx context.Context, filter ExhibitorFilter) ([]*domain.Exhibitor, int64, error)
	CountByStatus(ctx context.Context) (map[domain.ExhibitorStatus]int64, error)
	CountByPaymentStatus(ctx context.Context) (map[domain.PaymentStatus]int64, error)
}

// InvoiceFilter carries query parameters for listing invoices.
type InvoiceFilter struct {
	Status string
	Search string // partial match on invoice number or society name
	Page   int
	Limit  int
}

// SubscriptionFilter carries query parameters for listing subscriptions.
type SubscriptionFilter struct {
	Status string
	Page   int
	Limit  int
}

// BillingRepository provides read access to plans, invoices, and
// subscriptions.
type BillingRepository interface {
	ListPlans(ctx context.Context) ([]*domain.Plan, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) ([]*domain.Invoice, int64, error)
	ListSubscriptions(ctx context.Context, filter SubscriptionFilter) ([]*domain.Subscription, int64, error)
}
