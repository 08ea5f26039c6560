package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

func TestBillingService_Summary(t *testing.T) {
	repo := &stubBillingRepo{
		invoices: []*domain.Invoice{
			{ID: "1", Status: domain.InvoicePaid, Amount: 5999},
			{ID: "2", Status: domain.InvoicePending, Amount: 12999},
			{ID: "3", Status: domain.InvoicePending, Amount: 2999},
			{ID: "4", Status: domain.InvoiceOverdue, Amount: 2999},
		},
		subscriptions: []*domain.Subscription{
			{ID: "1", Status: domain.SubscriptionActive},
			{ID: "2", Status: domain.SubscriptionActive},
			{ID: "3", Status: domain.SubscriptionExpired},
		},
	}
	svc := NewBillingService(repo, zerolog.Nop())

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TotalRevenue != 5999 {
		t.Fatalf("unexpected revenue: %v", sum.TotalRevenue)
	}
	if sum.PendingAmount != 15998 || sum.PendingInvoices != 2 {
		t.Fatalf("unexpected pending: %v / %d", sum.PendingAmount, sum.PendingInvoices)
	}
	if sum.OverdueAmount != 2999 || sum.OverdueInvoices != 1 {
		t.Fatalf("unexpected overdue: %v / %d", sum.OverdueAmount, sum.OverdueInvoices)
	}
	if sum.ActiveSubscriptions != 2 {
		t.Fatalf("unexpected active subscriptions: %d", sum.ActiveSubscriptions)
	}
}

func TestBillingService_SummarySpansPages(t *testing.T) {
	repo := &stubBillingRepo{}
	for i := 0; i < 150; i++ {
		repo.invoices = append(repo.invoices, &domain.Invoice{
			ID:     strconv.Itoa(i + 1),
			Status: domain.InvoicePaid,
			Amount: 100,
		})
	}
	for i := 0; i < 120; i++ {
		repo.subscriptions = append(repo.subscriptions, &domain.Subscription{
			ID:     strconv.Itoa(i + 1),
			Status: domain.SubscriptionActive,
		})
	}
	svc := NewBillingService(repo, zerolog.Nop())

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TotalRevenue != 15000 {
		t.Fatalf("total revenue undercounted: got %v, want 15000", sum.TotalRevenue)
	}
	if sum.ActiveSubscriptions != 120 {
		t.Fatalf("active subscriptions undercounted: got %d, want 120", sum.ActiveSubscriptions)
	}
}

func TestBillingService_ListInvoices(t *testing.T) {
	repo := &stubBillingRepo{invoices: []*domain.Invoice{
		{ID: "1", Status: domain.InvoicePaid, Amount: 5999},
		{ID: "2", Status: domain.InvoicePending, Amount: 2999},
	}}
	svc := NewBillingService(repo, zerolog.Nop())

	page, err := svc.ListInvoices(context.Background(), ports.InvoiceFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 || page.Page != 1 || page.Limit != 20 {
		t.Fatalf("unexpected envelope: %+v", page)
	}
}
