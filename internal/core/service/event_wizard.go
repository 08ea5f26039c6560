package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

const dateLayout = "2006-01-02"

// EventWizard drives the four-step event creation form.
type EventWizard struct {
	drafts      draftStore[domain.EventDraft]
	events      ports.EventRepository
	submitDelay time.Duration
	log         zerolog.Logger
}

func NewEventWizard(kv ports.KV, events ports.EventRepository, submitDelay, draftTTL time.Duration, log zerolog.Logger) *EventWizard {
	return &EventWizard{
		drafts:      newDraftStore[domain.EventDraft](kv, domain.DraftKindEvent, draftTTL, log),
		events:      events,
		submitDelay: submitDelay,
		log:         log,
	}
}

// Start creates a draft seeded from the operator's session: their city and
// contact details prefill the corresponding fields.
func (w *EventWizard) Start(ctx context.Context, session *domain.Session) (*domain.EventDraft, error) {
	draft := &domain.EventDraft{
		ID:            uuid.NewString(),
		Step:          1,
		CreatedBy:     session.ID,
		City:          session.City,
		ContactPerson: session.Name,
		ContactEmail:  session.Email,
		MaxCapacity:   100,
		PlanType:      domain.PlanA,
		Status:        domain.EventDraftStatus,
		Tags:          []string{},
		Requirements:  []string{},
		Amenities:     []string{},
		IsPublic:      true,
		SendReminders: true,
	}
	if err := w.drafts.save(ctx, draft.ID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (w *EventWizard) Get(ctx context.Context, id string) (*domain.EventDraft, error) {
	return w.drafts.load(ctx, id)
}

// Update applies the patch and clears validation errors on the fields it
// touches, so a corrected field stops showing a stale message.
func (w *EventWizard) Update(ctx context.Context, id string, patch ports.EventDraftPatch) (*domain.EventDraft, error) {
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
	set("title", &draft.Title, patch.Title)
	set("description", &draft.Description, patch.Description)
	set("category", &draft.Category, patch.Category)
	set("society_id", &draft.SocietyID, patch.SocietyID)
	set("date", &draft.Date, patch.Date)
	set("time", &draft.Time, patch.Time)
	set("end_time", &draft.EndTime, patch.EndTime)
	set("venue", &draft.Venue, patch.Venue)
	set("address", &draft.Address, patch.Address)
	set("city", &draft.City, patch.City)
	set("contact_person", &draft.ContactPerson, patch.ContactPerson)
	set("contact_email", &draft.ContactEmail, patch.ContactEmail)
	set("contact_phone", &draft.ContactPhone, patch.ContactPhone)
	set("registration_deadline", &draft.RegistrationDeadline, patch.RegistrationDeadline)

	if patch.MaxCapacity != nil {
		draft.MaxCapacity = *patch.MaxCapacity
		delete(draft.Errors, "max_capacity")
	}
	if patch.TicketPrice != nil {
		draft.TicketPrice = *patch.TicketPrice
	}
	if patch.PlanType != nil {
		draft.PlanType = domain.PlanType(*patch.PlanType)
	}
	if patch.Status != nil {
		draft.Status = domain.EventStatus(*patch.Status)
	}
	if patch.IsPublic != nil {
		draft.IsPublic = *patch.IsPublic
	}
	if patch.AllowWaitlist != nil {
		draft.AllowWaitlist = *patch.AllowWaitlist
	}
	if patch.RequireApproval != nil {
		draft.RequireApproval = *patch.RequireApproval
	}
	if patch.SendReminders != nil {
		draft.SendReminders = *patch.SendReminders
	}

	if err := w.drafts.save(ctx, id, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Next validates the current step. With validation errors the draft stays
// where it is; otherwise it advances, clamped to the final step.
func (w *EventWizard) Next(ctx context.Context, id string) (*domain.EventDraft, error) {
	draft, err := w.drafts.load(ctx, id)
	if err != nil {
		return nil, err
	}

	errs := validateEventStep(draft, draft.Step)
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

// Back always succeeds; it neither re-validates nor clears the errors of
// the step being left.
func (w *EventWizard) Back(ctx context.Context, id string) (*domain.EventDraft, error) {
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

func (w *EventWizard) AddValue(ctx context.Context, id, field, value string) (*domain.EventDraft, error) {
	return w.editArray(ctx, id, field, value, appendUnique)
}

func (w *EventWizard) RemoveValue(ctx context.Context, id, field, value string) (*domain.EventDraft, error) {
	return w.editArray(ctx, id, field, value, removeValue)
}

func (w *EventWizard) editArray(ctx context.Context, id, field, value string, edit func([]string, string) []string) (*domain.EventDraft, error) {
	draft, err := w.drafts.load(ctx, id)
	if err != nil {
		return nil, err
	}

	switch field {
	case "tags":
		draft.Tags = edit(draft.Tags, value)
	case "requirements":
		draft.Requirements = edit(draft.Requirements, value)
	case "amenities":
		draft.Amenities = edit(draft.Amenities, value)
	default:
		return nil, domain.ErrUnknownField
	}

	if err := w.drafts.save(ctx, id, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Submit is only reachable from the final step. It re-validates that step,
// waits out the simulated persistence latency, and creates the event. A
// persistence failure lands in the error map under the reserved submit key;
// cancellation aborts before anything is written.
func (w *EventWizard) Submit(ctx context.Context, id string) (*domain.EventDraft, *domain.Event, error) {
	draft, err := w.drafts.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if draft.Step != domain.WizardSteps {
		return nil, nil, domain.ErrNotOnFinalStep
	}

	if errs := validateEventStep(draft, draft.Step); len(errs) > 0 {
		draft.Errors = errs
		if err := w.drafts.save(ctx, id, draft); err != nil {
			return nil, nil, err
		}
		return draft, nil, nil
	}

	date, err := time.Parse(dateLayout, draft.Date)
	if err != nil {
		draft.Errors = map[string]string{"date": "Event date must use the YYYY-MM-DD format"}
		if err := w.drafts.save(ctx, id, draft); err != nil {
			return nil, nil, err
		}
		return draft, nil, nil
	}

	if err := waitSubmitDelay(ctx, w.submitDelay); err != nil {
		return nil, nil, err
	}

	event := &domain.Event{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Date:        date,
		Time:        draft.Time,
		EndTime:     draft.EndTime,
		Venue:       draft.Venue,
		City:        draft.City,
		Category:    draft.Category,
		Status:      draft.Status,
		MaxCapacity: draft.MaxCapacity,
		PlanType:    draft.PlanType,
		Tags:        draft.Tags,
		SocietyID:   draft.SocietyID,
		CreatedBy:   draft.CreatedBy,
	}

	if err := w.events.Create(ctx, event); err != nil {
		w.log.Error().Err(err).Str("draft_id", id).Msg("event submit failed")
		draft.Errors = map[string]string{domain.SubmitErrorKey: "Failed to create event. Please try again."}
		if saveErr := w.drafts.save(ctx, id, draft); saveErr != nil {
			return nil, nil, saveErr
		}
		return draft, nil, nil
	}

	if err := w.drafts.delete(ctx, id); err != nil {
		w.log.Warn().Err(err).Str("draft_id", id).Msg("failed to remove submitted draft")
	}
	w.log.Info().Str("event_id", event.ID).Str("title", event.Title).Msg("event created")
	return draft, event, nil
}

// validateEventStep checks the fields owned by one step. Step 4 is the
// review step and has no rules of its own.
func validateEventStep(d *domain.EventDraft, step int) map[string]string {
	errs := make(map[string]string)

	switch step {
	case 1:
		if strings.TrimSpace(d.Title) == "" {
			errs["title"] = "Event title is required"
		}
		if strings.TrimSpace(d.Description) == "" {
			errs["description"] = "Event description is required"
		}
		if d.Category == "" {
			errs["category"] = "Event category is required"
		}
		if d.SocietyID == "" {
			errs["society_id"] = "Society selection is required"
		}
	case 2:
		if d.Date == "" {
			errs["date"] = "Event date is required"
		}
		if d.Time == "" {
			errs["time"] = "Start time is required"
		}
		if d.EndTime == "" {
			errs["end_time"] = "End time is required"
		}
		if strings.TrimSpace(d.Venue) == "" {
			errs["venue"] = "Venue is required"
		}
		if strings.TrimSpace(d.Address) == "" {
			errs["address"] = "Address is required"
		}
		if d.City == "" {
			errs["city"] = "City is required"
		}
		if d.MaxCapacity < 1 {
			errs["max_capacity"] = "Capacity must be at least 1"
		}
	case 3:
		if strings.TrimSpace(d.ContactPerson) == "" {
			errs["contact_person"] = "Contact person is required"
		}
		if strings.TrimSpace(d.ContactEmail) == "" {
			errs["contact_email"] = "Contact email is required"
		}
		if strings.TrimSpace(d.ContactPhone) == "" {
			errs["contact_phone"] = "Contact phone is required"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
