package ports

import (
	"context"

	"github.com/eventra/event-console/internal/core/domain"
)

// EventDraftPatch updates a subset of event draft fields. Nil pointers
// leave the corresponding field untouched; patching a field clears any
// validation error previously recorded against it.
type EventDraftPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	SocietyID   *string  `json:"society_id"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	EndTime     *string  `json:"end_time"`
	Venue       *string  `json:"venue"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	MaxCapacity *int     `json:"max_capacity"`
	TicketPrice *float64 `json:"ticket_price"`
	PlanType    *string  `json:"plan_type"`
	Status      *string  `json:"status"`

	ContactPerson        *string `json:"contact_person"`
	ContactEmail         *string `json:"contact_email"`
	ContactPhone         *string `json:"contact_phone"`
	RegistrationDeadline *string `json:"registration_deadline"`

	IsPublic        *bool `json:"is_public"`
	AllowWaitlist   *bool `json:"allow_waitlist"`
	RequireApproval *bool `json:"require_approval"`
	SendReminders   *bool `json:"send_reminders"`
}

// VendorDraftPatch updates a subset of vendor draft fields.
type VendorDraftPatch struct {
	Name            *string `json:"name"`
	Category        *string `json:"category"`
	Description     *string `json:"description"`
	EstablishedYear *string `json:"established_year"`
	Website         *string `json:"website"`

	ContactPerson  *string `json:"contact_person"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	AlternatePhone *string `json:"alternate_phone"`

	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Pincode      *string `json:"pincode"`
	BusinessType *string `json:"business_type"`
	GSTNumber    *string `json:"gst_number"`

	PriceRangeMin *string `json:"price_range_min"`
	PriceRangeMax *string `json:"price_range_max"`
	PriceUnit     *string `json:"price_unit"`
	WorkingHours  *string `json:"working_hours"`
	Insurance     *bool   `json:"insurance"`
}

// EventWizardService drives the multi-step event creation form. Drafts are
// held server-side; every operation loads, mutates, and re-persists the
// draft identified by id.
type EventWizardService interface {
	Start(ctx context.Context, session *domain.Session) (*domain.EventDraft, error)
	Get(ctx context.Context, id string) (*domain.EventDraft, error)
	Update(ctx context.Context, id string, patch EventDraftPatch) (*domain.EventDraft, error)
	// Next validates the current step. With a non-empty error map the draft
	// stays on its step; otherwise it advances, clamped to the final step.
	Next(ctx context.Context, id string) (*domain.EventDraft, error)
	// Back moves one step back, clamped to step 1. It never re-validates
	// and leaves recorded errors untouched.
	Back(ctx context.Context, id string) (*domain.EventDraft, error)
	// AddValue appends value to an array field (tags, requirements,
	// amenities), rejecting exact duplicates and preserving insertion order.
	AddValue(ctx context.Context, id, field, value string) (*domain.EventDraft, error)
	RemoveValue(ctx context.Context, id, field, value string) (*domain.EventDraft, error)
	// Submit re-validates the final step and persists the event through the
	// data provider after a configured delay. A persistence failure is
	// recorded under the reserved submit key rather than returned as an
	// error; context cancellation aborts the wait with the draft untouched.
	Submit(ctx context.Context, id string) (*domain.EventDraft, *domain.Event, error)
}

// VendorWizardService drives the multi-step vendor onboarding form.
type VendorWizardService interface {
	Start(ctx context.Context, session *domain.Session) (*domain.VendorDraft, error)
	Get(ctx context.Context, id string) (*domain.VendorDraft, error)
	Update(ctx context.Context, id string, patch VendorDraftPatch) (*domain.VendorDraft, error)
	Next(ctx context.Context, id string) (*domain.VendorDraft, error)
	Back(ctx context.Context, id string) (*domain.VendorDraft, error)
	// AddValue and RemoveValue edit the services, service_areas,
	// certifications, and working_days array fields.
	AddValue(ctx context.Context, id, field, value string) (*domain.VendorDraft, error)
	RemoveValue(ctx context.Context, id, field, value string) (*domain.VendorDraft, error)
	Submit(ctx context.Context, id string) (*domain.VendorDraft, *domain.Vendor, error)
}
