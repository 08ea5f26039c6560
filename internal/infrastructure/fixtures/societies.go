package fixtures

import (
	"context"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// SocietyRepository is the in-memory society directory. The seed set never
// changes at runtime, so no locking is needed.
type SocietyRepository struct {
	societies []*domain.Society
}

func NewSocietyRepository() *SocietyRepository {
	return &SocietyRepository{societies: seedSocieties()}
}

func (r *SocietyRepository) List(ctx context.Context, filter ports.SocietyFilter) ([]*domain.Society, int64, error) {
	var matched []*domain.Society
	for _, s := range r.societies {
		if filter.Status != "" && string(s.Status) != filter.Status {
			continue
		}
		if filter.Search != "" && !containsFold(s.Name, filter.Search) && !containsFold(s.Location, filter.Search) {
			continue
		}
		matched = append(matched, s)
	}

	page, total := paginate(matched, filter.Page, filter.Limit)
	return page, total, nil
}
