package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// vendorPriceUnits maps each category to its default pricing unit; the unit
// follows the category whenever the category changes.
var vendorPriceUnits = map[domain.VendorCategory]string{
	domain.CategorySoundLights:    "per event",
	domain.CategoryCatering:       "per person",
	domain.CategoryDecoration:     "per event",
	domain.CategorySecurity:       "per guard/day",
	domain.CategoryTransportation: "per vehicle",
	domain.CategoryHousekeeping:   "per hour",
	domain.CategoryPhotography:    "per event",
	domain.CategoryEntertainment:  "per performance",
}

var defaultWorkingDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// VendorWizard drives the four-step vendor onboarding form.
type VendorWizard struct {
	drafts      draftStore[domain.VendorDraft]
	vendors     ports.VendorRepository
	submitDelay time.Duration
	log         zerolog.Logger
}

func NewVendorWizard(kv ports.KV, vendors ports.VendorRepository, submitDelay, draftTTL time.Duration, log zerolog.Logger) *VendorWizard {
	return &VendorWizard{
		drafts:      newDraftStore[domain.VendorDraft](kv, domain.DraftKindVendor, draftTTL, log),
		vendors:     vendors,
		submitDelay: submitDelay,
		log:         log,
	}
}

func (w *VendorWizard) Start(ctx context.Context, session *domain.Session) (*domain.VendorDraft, error) {
	draft := &domain.VendorDraft{
		ID:             uuid.NewString(),
		Step:           1,
		CreatedBy:      session.ID,
		City:           session.City,
		WorkingHours:   "9:00 AM - 6:00 PM",
		WorkingDays:    append([]string(nil), defaultWorkingDays...),
		ServiceAreas:   []string{},
		Services:       []string{},
		Certifications: []string{},
	}
	if err := w.drafts.save(ctx, draft.ID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (w *VendorWizard) Get(ctx context.Context, id string) (*domain.VendorDraft, error) {
	return w.drafts.load(ctx, id)
}

func (w *VendorWizard) Update(ctx context.Context, id string, patch ports.VendorDraftPatch) (*domain.VendorDraft, error) {
	draft, err := w.drafts.load(ctx, id)
	if err != nil {
		return nil, err
	}

	set := func(field string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			delete(draft.Errors, field)
		}
	}
	set("name", &draft.Name, patch.Name)
	set("description", &draft.Description, patch.Description)
	set("established_year", &draft.EstablishedYear, patch.EstablishedYear)
	set("website", &draft.Website, patch.Website)
	set("contact_person", &draft.ContactPerson, patch.ContactPerson)
	set("email", &draft.Email, patch.Email)
	set("phone", &draft.Phone, patch.Phone)
	set("alternate_phone", &draft.AlternatePhone, patch.AlternatePhone)
	set("address", &draft.Address, patch.Address)
	set("city", &draft.City, patch.City)
	set("state", &draft.State, patch.State)
	set("pincode", &draft.Pincode, patch.Pincode)
	set("business_type", &draft.BusinessType, patch.BusinessType)
	set("gst_number", &draft.GSTNumber, patch.GSTNumber)
	set("price_range_min", &draft.PriceRangeMin, patch.PriceRangeMin)
	set("price_range_max", &draft.PriceRangeMax, patch.PriceRangeMax)
	set("price_unit", &draft.PriceUnit, patch.PriceUnit)
	set("working_hours", &draft.WorkingHours, patch.WorkingHours)

	if patch.Category != nil {
		draft.Category = domain.VendorCategory(*patch.Category)
		delete(draft.Errors, "category")
		if unit, ok := vendorPriceUnits[draft.Category]; ok {
			draft.PriceUnit = unit
		}
	}
	if patch.Insurance != nil {
		draft.Insurance = *patch.Insurance
	}

	if err := w.drafts.save(ctx, id, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (w *VendorWizard) Next(ctx context.Context, id string) (*domain.VendorDraft, error) {
	draft, err := w.drafts.load(ctx, id)
	if err != nil {
		return nil, err
	}

	errs := validateVendorStep(draft, draft.Step)
	if len(errs) > 0 {
		draft.Errors = errs
	} else {
		draft.Errors = nil
		draft.Step = stepForward(draft.Step, domain.WizardSteps)
	}

	if err := w.drafts.save(ctx, id, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (w *VendorWizard) Back(ctx context.Context, id string) (*domain.VendorDraft, error) {
	draft, err := w.drafts.load(ctx, id)
	if err != nil {
		return nil, err
	}

	draft.Step = stepBack(draft.Step)
	if err := w.drafts.save(ctx, id, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (w *VendorWizard) AddValue(ctx context.Context, id, field, value string) (*domain.VendorDraft, error) {
	return w.editArray(ctx, id, field, value, appendUnique)
}

func (w *VendorWizard) RemoveValue(ctx context.Context, id, field, value string) (*domain.VendorDraft, error) {
	return w.editArray(ctx, id, field, value, removeValue)
}

func (w *VendorWizard) editArray(ctx context.Context, id, field, value string, edit func([]string, string) []string) (*domain.VendorDraft, error) {
	draft, err := w.drafts.load(ctx, id)
	if err != nil {
		return nil, err
	}

	switch field {
	case "services":
		draft.Services = edit(draft.Services, value)
		delete(draft.Errors, "services")
	case "service_areas":
		draft.ServiceAreas = edit(draft.ServiceAreas, value)
	case "certifications":
		draft.Certifications = edit(draft.Certifications, value)
	case "working_days":
		draft.WorkingDays = edit(draft.WorkingDays, value)
	default:
		return nil, domain.ErrUnknownField
	}

	if err := w.drafts.save(ctx, id, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (w *VendorWizard) Submit(ctx context.Context, id string) (*domain.VendorDraft, *domain.Vendor, error) {
	draft, err := w.drafts.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if draft.Step != domain.WizardSteps {
		return nil, nil, domain.ErrNotOnFinalStep
	}

	if errs := validateVendorStep(draft, draft.Step); len(errs) > 0 {
		draft.Errors = errs
		if err := w.drafts.save(ctx, id, draft); err != nil {
			return nil, nil, err
		}
		return draft, nil, nil
	}

	if err := waitSubmitDelay(ctx, w.submitDelay); err != nil {
		return nil, nil, err
	}

	vendor := &domain.Vendor{
		ID:            uuid.NewString(),
		Name:          draft.Name,
		Category:      draft.Category,
		City:          draft.City,
		ContactPerson: draft.ContactPerson,
		Email:         draft.Email,
		Phone:         draft.Phone,
		Status:        domain.AccountActive,
		PriceRange:    fmt.Sprintf("₹%s - ₹%s %s", draft.PriceRangeMin, draft.PriceRangeMax, draft.PriceUnit),
		Services:      draft.Services,
		WorkingDays:   draft.WorkingDays,
	}

	if err := w.vendors.Create(ctx, vendor); err != nil {
		w.log.Error().Err(err).Str("draft_id", id).Msg("vendor submit failed")
		draft.Errors = map[string]string{domain.SubmitErrorKey: "Failed to register vendor. Please try again."}
		if saveErr := w.drafts.save(ctx, id, draft); saveErr != nil {
			return nil, nil, saveErr
		}
		return draft, nil, nil
	}

	if err := w.drafts.delete(ctx, id); err != nil {
		w.log.Warn().Err(err).Str("draft_id", id).Msg("failed to remove submitted draft")
	}
	w.log.Info().Str("vendor_id", vendor.ID).Str("name", vendor.Name).Msg("vendor registered")
	return draft, vendor, nil
}

// validateVendorStep checks the fields owned by one step.
func validateVendorStep(d *domain.VendorDraft, step int) map[string]string {
	errs := make(map[string]string)

	switch step {
	case 1:
		if strings.TrimSpace(d.Name) == "" {
			errs["name"] = "Vendor name is required"
		}
		if d.Category == "" {
			errs["category"] = "Category is required"
		}
		if strings.TrimSpace(d.Description) == "" {
			errs["description"] = "Description is required"
		}
		if d.EstablishedYear == "" {
			errs["established_year"] = "Established year is required"
		}
	case 2:
		if strings.TrimSpace(d.ContactPerson) == "" {
			errs["contact_person"] = "Contact person is required"
		}
		if strings.TrimSpace(d.Email) == "" {
			errs["email"] = "Email is required"
		} else if !emailPattern.MatchString(d.Email) {
			errs["email"] = "Invalid email format"
		}
		if strings.TrimSpace(d.Phone) == "" {
			errs["phone"] = "Phone number is required"
		}
	case 3:
		if strings.TrimSpace(d.Address) == "" {
			errs["address"] = "Address is required"
		}
		if d.City == "" {
			errs["city"] = "City is required"
		}
		if d.State == "" {
			errs["state"] = "State is required"
		}
		if strings.TrimSpace(d.Pincode) == "" {
			errs["pincode"] = "Pincode is required"
		}
		if d.BusinessType == "" {
			errs["business_type"] = "Business type is required"
		}
	case 4:
		if len(d.Services) == 0 {
			errs["services"] = "At least one service is required"
		}
		if d.PriceRangeMin == "" {
			errs["price_range_min"] = "Minimum price is required"
		}
		if d.PriceRangeMax == "" {
			errs["price_range_max"] = "Maximum price is required"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
