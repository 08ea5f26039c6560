package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// DashboardService computes the role-scoped stat cards shown on the
// landing screen. Growth deltas are fixed demo figures; the counts are
// computed from the data providers.
type DashboardService struct {
	events     ports.EventRepository
	societies  ports.SocietyRepository
	vendors    ports.VendorRepository
	exhibitors ports.ExhibitorRepository
	billing    ports.BillingRepository
	log        zerolog.Logger
}

func NewDashboardService(
	events ports.EventRepository,
	societies ports.SocietyRepository,
	vendors ports.VendorRepository,
	exhibitors ports.ExhibitorRepository,
	billing ports.BillingRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		events:     events,
		societies:  societies,
		vendors:    vendors,
		exhibitors: exhibitors,
		billing:    billing,
		log:        log,
	}
}

// Stats returns the cards for the operator's role: platform-wide totals for
// super admins, city-scoped numbers for city admins, and a personal summary
// for everyone else.
func (s *DashboardService) Stats(ctx context.Context, session *domain.Session) (*ports.DashboardStats, error) {
	switch {
	case session.HasRole(domain.RoleSuperAdmin):
		return s.globalStats(ctx)
	case session.HasRole(domain.RoleAdmin):
		return s.cityStats(ctx, session.City)
	default:
		return s.personalStats(), nil
	}
}

func (s *DashboardService) globalStats(ctx context.Context) (*ports.DashboardStats, error) {
	byStatus, err := s.events.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	var totalEvents int64
	for _, n := range byStatus {
		totalEvents += n
	}
	activeEvents := byStatus[domain.EventPublished] + byStatus[domain.EventOngoing]

	_, societies, err := s.societies.List(ctx, ports.SocietyFilter{Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, vendors, err := s.vendors.List(ctx, ports.VendorFilter{Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, exhibitors, err := s.exhibitors.List(ctx, ports.ExhibitorFilter{Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}

	subs, err := collectAll(func(page, limit int) ([]*domain.Subscription, int64, error) {
		return s.billing.ListSubscriptions(ctx, ports.SubscriptionFilter{Page: page, Limit: limit})
	})
	if err != nil {
		return nil, err
	}
	var monthlyRevenue float64
	for _, sub := range subs {
		if sub.Status == domain.SubscriptionActive {
			monthlyRevenue += sub.MonthlyAmount
		}
	}

	return &ports.DashboardStats{Cards: []ports.StatCard{
		{Title: "Total Events", Value: fmt.Sprintf("%d", totalEvents), Change: 15.2},
		{Title: "Active Events", Value: fmt.Sprintf("%d", activeEvents), Change: 8.1},
		{Title: "Societies", Value: fmt.Sprintf("%d", societies), Change: 12.5},
		{Title: "Vendors", Value: fmt.Sprintf("%d", vendors), Change: 6.7},
		{Title: "Exhibitors", Value: fmt.Sprintf("%d", exhibitors), Change: 18.3},
		{Title: "Monthly Revenue", Value: formatLakhs(monthlyRevenue), Change: 23.1},
	}}, nil
}

func (s *DashboardService) cityStats(ctx context.Context, city string) (*ports.DashboardStats, error) {
	_, cityEvents, err := s.events.List(ctx, ports.EventFilter{City: city, Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, activeEvents, err := s.events.List(ctx, ports.EventFilter{City: city, Status: string(domain.EventPublished), Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, societies, err := s.societies.List(ctx, ports.SocietyFilter{Search: city, Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{Cards: []ports.StatCard{
		{Title: "City Events", Value: fmt.Sprintf("%d", cityEvents), Change: 12.5},
		{Title: "Active Events", Value: fmt.Sprintf("%d", activeEvents), Change: 8.1},
		{Title: "City Societies", Value: fmt.Sprintf("%d", societies), Change: 6.7},
		{Title: "City Revenue", Value: "₹3.2L", Change: 15.2},
	}}, nil
}

// personalStats is the placeholder summary for operators without an
// administrative scope.
func (s *DashboardService) personalStats() *ports.DashboardStats {
	return &ports.DashboardStats{Cards: []ports.StatCard{
		{Title: "My Events", Value: "5", Change: 10.0},
		{Title: "Active Tasks", Value: "12", Change: 5.5},
		{Title: "Completed", Value: "28", Change: 20.1},
		{Title: "Revenue", Value: "₹85K", Change: 8.3},
	}}
}

// formatLakhs renders an amount in lakhs, the display unit of the console.
func formatLakhs(amount float64) string {
	return fmt.Sprintf("₹%.1fL", amount/100000)
}
