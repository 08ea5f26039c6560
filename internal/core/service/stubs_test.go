package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// mapKV is an in-memory ports.KV for tests.
type mapKV struct {
	data map[string]string
}

func newMapKV() *mapKV {
	return &mapKV{data: make(map[string]string)}
}

func (kv *mapKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := kv.data[key]
	return v, ok, nil
}

func (kv *mapKV) Set(_ context.Context, key, value string, _ time.Duration) error {
	kv.data[key] = value
	return nil
}

func (kv *mapKV) Del(_ context.Context, key string) error {
	delete(kv.data, key)
	return nil
}

// failingKV rejects every operation.
type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("kv down")
}
func (failingKV) Set(context.Context, string, string, time.Duration) error {
	return errors.New("kv down")
}
func (failingKV) Del(context.Context, string) error {
	return errors.New("kv down")
}

type stubUserRepo struct {
	users    []*domain.User
	createFn func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if r.createFn != nil {
		return r.createFn(ctx, user)
	}
	r.users = append(r.users, user)
	return user, nil
}

func (r *stubUserRepo) List(_ context.Context, _ ports.UserFilter) ([]*domain.User, int64, error) {
	return r.users, int64(len(r.users)), nil
}

func (r *stubUserRepo) CountByRole(_ context.Context) (map[domain.Role]int64, error) {
	counts := make(map[domain.Role]int64)
	for _, u := range r.users {
		counts[u.Role]++
	}
	return counts, nil
}

type stubEventRepo struct {
	events   []*domain.Event
	createFn func(ctx context.Context, event *domain.Event) error
}

func (r *stubEventRepo) List(_ context.Context, filter ports.EventFilter) ([]*domain.Event, int64, error) {
	var matched []*domain.Event
	for _, e := range r.events {
		if filter.Status != "" && string(e.Status) != filter.Status {
			continue
		}
		if filter.City != "" && e.City != filter.City {
			continue
		}
		matched = append(matched, e)
	}
	return matched, int64(len(matched)), nil
}

func (r *stubEventRepo) Create(ctx context.Context, event *domain.Event) error {
	if r.createFn != nil {
		return r.createFn(ctx, event)
	}
	r.events = append(r.events, event)
	return nil
}

func (r *stubEventRepo) CountByStatus(_ context.Context) (map[domain.EventStatus]int64, error) {
	counts := make(map[domain.EventStatus]int64)
	for _, e := range r.events {
		counts[e.Status]++
	}
	return counts, nil
}

func (r *stubEventRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]*domain.Event, error) {
	var matched []*domain.Event
	for _, e := range r.events {
		if e.Date.Before(from) || !e.Date.Before(to) {
			continue
		}
		matched = append(matched, e)
	}
	return matched, nil
}

type stubVendorRepo struct {
	vendors  []*domain.Vendor
	createFn func(ctx context.Context, vendor *domain.Vendor) error
}

func (r *stubVendorRepo) List(_ context.Context, _ ports.VendorFilter) ([]*domain.Vendor, int64, error) {
	return r.vendors, int64(len(r.vendors)), nil
}

func (r *stubVendorRepo) Create(ctx context.Context, vendor *domain.Vendor) error {
	if r.createFn != nil {
		return r.createFn(ctx, vendor)
	}
	r.vendors = append(r.vendors, vendor)
	return nil
}

func (r *stubVendorRepo) CountByCategory(_ context.Context) (map[domain.VendorCategory]int64, error) {
	counts := make(map[domain.VendorCategory]int64)
	for _, v := range r.vendors {
		counts[v.Category]++
	}
	return counts, nil
}

type stubSocietyRepo struct {
	total int64
}

func (r *stubSocietyRepo) List(_ context.Context, _ ports.SocietyFilter) ([]*domain.Society, int64, error) {
	return nil, r.total, nil
}

type stubExhibitorRepo struct {
	total int64
}

func (r *stubExhibitorRepo) List(_ context.Context, _ ports.ExhibitorFilter) ([]*domain.Exhibitor, int64, error) {
	return nil, r.total, nil
}

func (r *stubExhibitorRepo) CountByStatus(context.Context) (map[domain.ExhibitorStatus]int64, error) {
	return nil, nil
}

func (r *stubExhibitorRepo) CountByPaymentStatus(context.Context) (map[domain.PaymentStatus]int64, error) {
	return nil, nil
}

// stubBillingRepo honors the page window the way a real backend does, so
// aggregations that must see every record are tested against paging.
type stubBillingRepo struct {
	invoices      []*domain.Invoice
	subscriptions []*domain.Subscription
}

func (r *stubBillingRepo) ListPlans(context.Context) ([]*domain.Plan, error) {
	return nil, nil
}

func (r *stubBillingRepo) ListInvoices(_ context.Context, filter ports.InvoiceFilter) ([]*domain.Invoice, int64, error) {
	page, total := pageWindow(r.invoices, filter.Page, filter.Limit)
	return page, total, nil
}

func (r *stubBillingRepo) ListSubscriptions(_ context.Context, filter ports.SubscriptionFilter) ([]*domain.Subscription, int64, error) {
	page, total := pageWindow(r.subscriptions, filter.Page, filter.Limit)
	return page, total, nil
}

func pageWindow[T any](items []T, page, limit int) ([]T, int64) {
	total := int64(len(items))
	if limit <= 0 {
		return items, total
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return nil, total
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}
