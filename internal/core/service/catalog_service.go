package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// boothFee is the flat booth price used for the exhibitor payment summary.
const boothFee = 15000

// CatalogService implements the society, vendor, and exhibitor list views.
type CatalogService struct {
	societies  ports.SocietyRepository
	vendors    ports.VendorRepository
	exhibitors ports.ExhibitorRepository
	log        zerolog.Logger
}

func NewCatalogService(
	societies ports.SocietyRepository,
	vendors ports.VendorRepository,
	exhibitors ports.ExhibitorRepository,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		societies:  societies,
		vendors:    vendors,
		exhibitors: exhibitors,
		log:        log,
	}
}

func (s *CatalogService) ListSocieties(ctx context.Context, filter ports.SocietyFilter) (*ports.Page[*domain.Society], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.societies.List(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list societies")
		return nil, err
	}
	return buildPage(items, total, filter.Page, filter.Limit), nil
}

func (s *CatalogService) ListVendors(ctx context.Context, filter ports.VendorFilter) (*ports.Page[*domain.Vendor], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.vendors.List(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list vendors")
		return nil, err
	}
	return buildPage(items, total, filter.Page, filter.Limit), nil
}

func (s *CatalogService) VendorCategoryCounts(ctx context.Context) (map[domain.VendorCategory]int64, error) {
	return s.vendors.CountByCategory(ctx)
}

func (s *CatalogService) ListExhibitors(ctx context.Context, filter ports.ExhibitorFilter) (*ports.Page[*domain.Exhibitor], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.exhibitors.List(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list exhibitors")
		return nil, err
	}
	return buildPage(items, total, filter.Page, filter.Limit), nil
}

// ExhibitorSummary aggregates participation and payment counts for the
// exhibitors screen stat cards.
func (s *CatalogService) ExhibitorSummary(ctx context.Context) (*ports.ExhibitorSummary, error) {
	byStatus, err := s.exhibitors.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byPayment, err := s.exhibitors.CountByPaymentStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	return &ports.ExhibitorSummary{
		Total:         total,
		Registered:    byStatus[domain.ExhibitorRegistered],
		Confirmed:     byStatus[domain.ExhibitorConfirmed],
		CheckedIn:     byStatus[domain.ExhibitorCheckedIn],
		Cancelled:     byStatus[domain.ExhibitorCancelled],
		PaidAmount:    float64(byPayment[domain.PaymentPaid]) * boothFee,
		PendingAmount: float64(byPayment[domain.PaymentPending]) * boothFee,
	}, nil
}
