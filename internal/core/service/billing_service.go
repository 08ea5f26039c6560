package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// BillingService implements the plans, invoices, and subscriptions views.
type BillingService struct {
	repo ports.BillingRepository
	log  zerolog.Logger
}

func NewBillingService(repo ports.BillingRepository, log zerolog.Logger) *BillingService {
	return &BillingService{repo: repo, log: log}
}

func (s *BillingService) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	return s.repo.ListPlans(ctx)
}

func (s *BillingService) ListInvoices(ctx context.Context, filter ports.InvoiceFilter) (*ports.Page[*domain.Invoice], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.repo.ListInvoices(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list invoices")
		return nil, err
	}
	return buildPage(items, total, filter.Page, filter.Limit), nil
}

func (s *BillingService) ListSubscriptions(ctx context.Context, filter ports.SubscriptionFilter) (*ports.Page[*domain.Subscription], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.repo.ListSubscriptions(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list subscriptions")
		return nil, err
	}
	return buildPage(items, total, filter.Page, filter.Limit), nil
}

// Summary reduces the invoice and subscription collections into the billing
// screen stat cards: collected, pending, and overdue amounts plus the
// active subscription count.
func (s *BillingService) Summary(ctx context.Context) (*ports.BillingSummary, error) {
	invoices, err := collectAll(func(page, limit int) ([]*domain.Invoice, int64, error) {
		return s.repo.ListInvoices(ctx, ports.InvoiceFilter{Page: page, Limit: limit})
	})
	if err != nil {
		return nil, err
	}
	subs, err := collectAll(func(page, limit int) ([]*domain.Subscription, int64, error) {
		return s.repo.ListSubscriptions(ctx, ports.SubscriptionFilter{Page: page, Limit: limit})
	})
	if err != nil {
		return nil, err
	}

	summary := &ports.BillingSummary{}
	for _, inv := range invoices {
		switch inv.Status {
		case domain.InvoicePaid:
			summary.TotalRevenue += inv.Amount
		case domain.InvoicePending:
			summary.PendingAmount += inv.Amount
			summary.PendingInvoices++
		case domain.InvoiceOverdue:
			summary.OverdueAmount += inv.Amount
			summary.OverdueInvoices++
		}
	}
	for _, sub := range subs {
		if sub.Status == domain.SubscriptionActive {
			summary.ActiveSubscriptions++
		}
	}
	return summary, nil
}
