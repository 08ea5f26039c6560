package fixtures

import (
	"context"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// BillingRepository is the in-memory billing ledger.
type BillingRepository struct {
	plans         []*domain.Plan
	invoices      []*domain.Invoice
	subscriptions []*domain.Subscription
}

func NewBillingRepository() *BillingRepository {
	return &BillingRepository{
		plans:         seedPlans(),
		invoices:      seedInvoices(),
		subscriptions: seedSubscriptions(),
	}
}

func (r *BillingRepository) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	return r.plans, nil
}

func (r *BillingRepository) ListInvoices(ctx context.Context, filter ports.InvoiceFilter) ([]*domain.Invoice, int64, error) {
	var matched []*domain.Invoice
	for _, inv := range r.invoices {
		if filter.Status != "" && string(inv.Status) != filter.Status {
			continue
		}
		if filter.Search != "" && !containsFold(inv.InvoiceNumber, filter.Search) && !containsFold(inv.SocietyName, filter.Search) {
			continue
		}
		matched = append(matched, inv)
	}

	page, total := paginate(matched, filter.Page, filter.Limit)
	return page, total, nil
}

func (r *BillingRepository) ListSubscriptions(ctx context.Context, filter ports.SubscriptionFilter) ([]*domain.Subscription, int64, error) {
	var matched []*domain.Subscription
	for _, sub := range r.subscriptions {
		if filter.Status != "" && string(sub.Status) != filter.Status {
			continue
		}
		matched = append(matched, sub)
	}

	page, total := paginate(matched, filter.Page, filter.Limit)
	return page, total, nil
}
