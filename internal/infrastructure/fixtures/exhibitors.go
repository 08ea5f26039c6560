package fixtures

import (
	"context"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// ExhibitorRepository is the in-memory exhibitor registry.
type ExhibitorRepository struct {
	exhibitors []*domain.Exhibitor
}

func NewExhibitorRepository() *ExhibitorRepository {
	return &ExhibitorRepository{exhibitors: seedExhibitors()}
}

func (r *ExhibitorRepository) List(ctx context.Context, filter ports.ExhibitorFilter) ([]*domain.Exhibitor, int64, error) {
	var matched []*domain.Exhibitor
	for _, e := range r.exhibitors {
		if filter.Status != "" && string(e.Status) != filter.Status {
			continue
		}
		if filter.PaymentStatus != "" && string(e.PaymentStatus) != filter.PaymentStatus {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.City != "" && e.City != filter.City {
			continue
		}
		if filter.Search != "" && !containsFold(e.CompanyName, filter.Search) &&
			!containsFold(e.ContactPerson, filter.Search) && !containsFold(e.Email, filter.Search) {
			continue
		}
		matched = append(matched, e)
	}

	page, total := paginate(matched, filter.Page, filter.Limit)
	return page, total, nil
}

func (r *ExhibitorRepository) CountByStatus(ctx context.Context) (map[domain.ExhibitorStatus]int64, error) {
	counts := make(map[domain.ExhibitorStatus]int64)
	for _, e := range r.exhibitors {
		counts[e.Status]++
	}
	return counts, nil
}

func (r *ExhibitorRepository) CountByPaymentStatus(ctx context.Context) (map[domain.PaymentStatus]int64, error) {
	counts := make(map[domain.PaymentStatus]int64)
	for _, e := range r.exhibitors {
		counts[e.PaymentStatus]++
	}
	return counts, nil
}
