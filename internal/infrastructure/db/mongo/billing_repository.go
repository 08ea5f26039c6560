package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

const (
	collectionPlans         = "plans"
	collectionInvoices      = "invoices"
	collectionSubscriptions = "subscriptions"
)

// BillingRepository stores plans, invoices, and subscriptions in MongoDB.
type BillingRepository struct {
	plans         *mongo.Collection
	invoices      *mongo.Collection
	subscriptions *mongo.Collection
}

func NewBillingRepository(db *mongo.Database) *BillingRepository {
	return &BillingRepository{
		plans:         db.Collection(collectionPlans),
		invoices:      db.Collection(collectionInvoices),
		subscriptions: db.Collection(collectionSubscriptions),
	}
}

func (r *BillingRepository) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.plans.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer cur.Close(ctx)

	var plans []*domain.Plan
	if err := cur.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("decode plans: %w", err)
	}
	return plans, nil
}

func (r *BillingRepository) ListInvoices(ctx context.Context, filter ports.InvoiceFilter) ([]*domain.Invoice, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"invoice_number": searchRegex(filter.Search)},
			bson.M{"society_name": searchRegex(filter.Search)},
		}
	}

	total, err := r.invoices.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	cur, err := r.invoices.Find(ctx, query, listWindow(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer cur.Close(ctx)

	var invoices []*domain.Invoice
	if err := cur.All(ctx, &invoices); err != nil {
		return nil, 0, fmt.Errorf("decode invoices: %w", err)
	}
	return invoices, total, nil
}

func (r *BillingRepository) ListSubscriptions(ctx context.Context, filter ports.SubscriptionFilter) ([]*domain.Subscription, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.subscriptions.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count subscriptions: %w", err)
	}

	cur, err := r.subscriptions.Find(ctx, query, listWindow(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list subscriptions: %w", err)
	}
	defer cur.Close(ctx)

	var subs []*domain.Subscription
	if err := cur.All(ctx, &subs); err != nil {
		return nil, 0, fmt.Errorf("decode subscriptions: %w", err)
	}
	return subs, total, nil
}
