package fixtures

import (
	"context"
	"strconv"
	"sync"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// VendorRepository is the in-memory vendor directory.
type VendorRepository struct {
	mu      sync.RWMutex
	vendors []*domain.Vendor
}

func NewVendorRepository() *VendorRepository {
	return &VendorRepository{vendors: seedVendors()}
}

func (r *VendorRepository) List(ctx context.Context, filter ports.VendorFilter) ([]*domain.Vendor, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Vendor
	for _, v := range r.vendors {
		if filter.Category != "" && string(v.Category) != filter.Category {
			continue
		}
		if filter.City != "" && v.City != filter.City {
			continue
		}
		if filter.Search != "" && !containsFold(v.Name, filter.Search) && !containsFold(v.ContactPerson, filter.Search) {
			continue
		}
		matched = append(matched, v)
	}

	page, total := paginate(matched, filter.Page, filter.Limit)
	return page, total, nil
}

func (r *VendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if vendor.ID == "" {
		vendor.ID = strconv.Itoa(len(r.vendors) + 1)
	}
	copied := *vendor
	r.vendors = append(r.vendors, &copied)
	return nil
}

func (r *VendorRepository) CountByCategory(ctx context.Context) (map[domain.VendorCategory]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.VendorCategory]int64)
	for _, v := range r.vendors {
		counts[v.Category]++
	}
	return counts, nil
}
