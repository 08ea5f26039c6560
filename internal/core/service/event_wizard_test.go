package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

func wizardSession() *domain.Session {
	return &domain.Session{
		ID:    "42",
		Email: "city.admin@admin.com",
		Name:  "Mumbai Admin",
		Role:  domain.RoleAdmin,
		City:  "Mumbai",
	}
}

func newTestEventWizard(kv ports.KV, repo ports.EventRepository) *EventWizard {
	return NewEventWizard(kv, repo, 0, time.Hour, zerolog.Nop())
}

func strPtr(s string) *string { return &s }

// completeEventDraft fills every field the step validations require, leaving
// the draft on the given step.
func completeEventDraft(t *testing.T, w *EventWizard, id string, step int) *domain.EventDraft {
	t.Helper()
	draft, err := w.Update(context.Background(), id, ports.EventDraftPatch{
		Title:        strPtr("Annual Gala"),
		Description:  strPtr("The society's flagship evening"),
		Category:     strPtr("cultural"),
		SocietyID:    strPtr("1"),
		Date:         strPtr("2026-10-15"),
		Time:         strPtr("18:00"),
		EndTime:      strPtr("22:00"),
		Venue:        strPtr("Main Lawn"),
		Address:      strPtr("12 Hill Road"),
		ContactPhone: strPtr("+91 98200 00000"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	for draft.Step < step {
		draft, err = w.Next(context.Background(), id)
		if err != nil {
			t.Fatalf("next failed: %v", err)
		}
		if len(draft.Errors) > 0 {
			t.Fatalf("unexpected validation errors on step %d: %v", draft.Step, draft.Errors)
		}
	}
	return draft
}

func TestEventWizard_StartSeedsFromSession(t *testing.T) {
	w := newTestEventWizard(newMapKV(), &stubEventRepo{})

	draft, err := w.Start(context.Background(), wizardSession())
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if draft.ID == "" || draft.Step != 1 {
		t.Fatalf("unexpected draft identity: %+v", draft)
	}
	if draft.City != "Mumbai" || draft.ContactPerson != "Mumbai Admin" || draft.ContactEmail != "city.admin@admin.com" {
		t.Fatalf("session prefill missing: %+v", draft)
	}
	if draft.MaxCapacity != 100 || draft.PlanType != domain.PlanA || draft.Status != domain.EventDraftStatus {
		t.Fatalf("unexpected defaults: %+v", draft)
	}
	if !draft.IsPublic || !draft.SendReminders {
		t.Fatalf("boolean defaults not set: %+v", draft)
	}

	loaded, err := w.Get(context.Background(), draft.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.ID != draft.ID {
		t.Fatalf("draft not persisted: got %q, want %q", loaded.ID, draft.ID)
	}
}

func TestEventWizard_GetUnknownDraft(t *testing.T) {
	w := newTestEventWizard(newMapKV(), &stubEventRepo{})

	if _, err := w.Get(context.Background(), "no-such-draft"); !errors.Is(err, domain.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestEventWizard_NextBlockedByValidation(t *testing.T) {
	w := newTestEventWizard(newMapKV(), &stubEventRepo{})
	draft, _ := w.Start(context.Background(), wizardSession())

	draft, err := w.Next(context.Background(), draft.ID)
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	if draft.Step != 1 {
		t.Fatalf("draft advanced past invalid step: step %d", draft.Step)
	}
	if draft.Errors["title"] != "Event title is required" {
		t.Fatalf("unexpected title error: %q", draft.Errors["title"])
	}
	if draft.Errors["society_id"] != "Society selection is required" {
		t.Fatalf("unexpected society error: %q", draft.Errors["society_id"])
	}
}

func TestEventWizard_NextAdvancesAndClearsErrors(t *testing.T) {
	w := newTestEventWizard(newMapKV(), &stubEventRepo{})
	draft, _ := w.Start(context.Background(), wizardSession())

	// Leave a validation error behind, then fix the fields.
	if _, err := w.Next(context.Background(), draft.ID); err != nil {
		t.Fatalf("next failed: %v", err)
	}
	_, err := w.Update(context.Background(), draft.ID, ports.EventDraftPatch{
		Title:       strPtr("Annual Gala"),
		Description: strPtr("The society's flagship evening"),
		Category:    strPtr("cultural"),
		SocietyID:   strPtr("1"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	draft, err = w.Next(context.Background(), draft.ID)
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	if draft.Step != 2 {
		t.Fatalf("expected step 2, got %d", draft.Step)
	}
	if len(draft.Errors) != 0 {
		t.Fatalf("errors not cleared: %v", draft.Errors)
	}
}

func TestEventWizard_BackClampsAndKeepsErrors(t *testing.T) {
	w := newTestEventWizard(newMapKV(), &stubEventRepo{})
	draft, _ := w.Start(context.Background(), wizardSession())

	// Step 1 already; back stays at step 1.
	draft, err := w.Back(context.Background(), draft.ID)
	if err != nil {
		t.Fatalf("back failed: %v", err)
	}
	if draft.Step != 1 {
		t.Fatalf("back moved past the first step: %d", draft.Step)
	}

	// A failed Next leaves errors; Back does not touch them.
	if _, err := w.Next(context.Background(), draft.ID); err != nil {
		t.Fatalf("next failed: %v", err)
	}
	draft, err = w.Back(context.Background(), draft.ID)
	if err != nil {
		t.Fatalf("back failed: %v", err)
	}
	if draft.Errors["title"] == "" {
		t.Fatal("back cleared validation errors")
	}
}

func TestEventWizard_AddValue(t *testing.T) {
	w := newTestEventWizard(newMapKV(), &stubEventRepo{})
	draft, _ := w.Start(context.Background(), wizardSession())

	draft, err := w.AddValue(context.Background(), draft.ID, "tags", "  music ")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	draft, err = w.AddValue(context.Background(), draft.ID, "tags", "family")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	draft, err = w.AddValue(context.Background(), draft.ID, "tags", "music")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(draft.Tags) != 2 || draft.Tags[0] != "music" || draft.Tags[1] != "family" {
		t.Fatalf("unexpected tags: %v", draft.Tags)
	}

	if _, err := w.AddValue(context.Background(), draft.ID, "sponsors", "x"); !errors.Is(err, domain.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestEventWizard_RemoveValue(t *testing.T) {
	w := newTestEventWizard(newMapKV(), &stubEventRepo{})
	draft, _ := w.Start(context.Background(), wizardSession())

	_, _ = w.AddValue(context.Background(), draft.ID, "amenities", "parking")
	_, _ = w.AddValue(context.Background(), draft.ID, "amenities", "wifi")

	draft, err := w.RemoveValue(context.Background(), draft.ID, "amenities", "parking")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(draft.Amenities) != 1 || draft.Amenities[0] != "wifi" {
		t.Fatalf("unexpected amenities: %v", draft.Amenities)
	}

	draft, err = w.RemoveValue(context.Background(), draft.ID, "amenities", "absent")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(draft.Amenities) != 1 {
		t.Fatalf("removing an absent value changed the slice: %v", draft.Amenities)
	}
}

func TestEventWizard_SubmitRequiresFinalStep(t *testing.T) {
	w := newTestEventWizard(newMapKV(), &stubEventRepo{})
	draft, _ := w.Start(context.Background(), wizardSession())

	if _, _, err := w.Submit(context.Background(), draft.ID); !errors.Is(err, domain.ErrNotOnFinalStep) {
		t.Fatalf("expected ErrNotOnFinalStep, got %v", err)
	}
}

func TestEventWizard_SubmitRejectsBadDate(t *testing.T) {
	w := newTestEventWizard(newMapKV(), &stubEventRepo{})
	start, _ := w.Start(context.Background(), wizardSession())
	completeEventDraft(t, w, start.ID, domain.WizardSteps)

	if _, err := w.Update(context.Background(), start.ID, ports.EventDraftPatch{Date: strPtr("15/10/2026")}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	draft, event, err := w.Submit(context.Background(), start.ID)
	if err != nil {
		t.Fatalf("submit errored: %v", err)
	}
	if event != nil {
		t.Fatal("event created despite malformed date")
	}
	if draft.Errors["date"] != "Event date must use the YYYY-MM-DD format" {
		t.Fatalf("unexpected date error: %q", draft.Errors["date"])
	}
}

func TestEventWizard_SubmitCancelled(t *testing.T) {
	created := false
	repo := &stubEventRepo{createFn: func(context.Context, *domain.Event) error {
		created = true
		return nil
	}}
	kv := newMapKV()
	w := NewEventWizard(kv, repo, 50*time.Millisecond, time.Hour, zerolog.Nop())
	start, _ := w.Start(context.Background(), wizardSession())
	completeEventDraft(t, w, start.ID, domain.WizardSteps)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := w.Submit(ctx, start.ID); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if created {
		t.Fatal("cancelled submit reached the repository")
	}
}

func TestEventWizard_SubmitRepositoryFailure(t *testing.T) {
	repo := &stubEventRepo{createFn: func(context.Context, *domain.Event) error {
		return errors.New("write failed")
	}}
	kv := newMapKV()
	w := newTestEventWizard(kv, repo)
	start, _ := w.Start(context.Background(), wizardSession())
	completeEventDraft(t, w, start.ID, domain.WizardSteps)

	draft, event, err := w.Submit(context.Background(), start.ID)
	if err != nil {
		t.Fatalf("submit errored: %v", err)
	}
	if event != nil {
		t.Fatal("event returned despite repository failure")
	}
	if draft.Errors[domain.SubmitErrorKey] != "Failed to create event. Please try again." {
		t.Fatalf("unexpected submit error: %q", draft.Errors[domain.SubmitErrorKey])
	}
	if _, ok := kv.data["draft:event:"+start.ID]; !ok {
		t.Fatal("failed submit removed the draft")
	}
}

func TestEventWizard_SubmitSuccess(t *testing.T) {
	repo := &stubEventRepo{}
	kv := newMapKV()
	w := newTestEventWizard(kv, repo)
	start, _ := w.Start(context.Background(), wizardSession())
	completeEventDraft(t, w, start.ID, domain.WizardSteps)
	_, _ = w.AddValue(context.Background(), start.ID, "tags", "music")

	_, event, err := w.Submit(context.Background(), start.ID)
	if err != nil {
		t.Fatalf("submit errored: %v", err)
	}
	if event == nil {
		t.Fatal("expected a created event")
	}
	if event.Title != "Annual Gala" || event.City != "Mumbai" || event.Venue != "Main Lawn" {
		t.Fatalf("draft fields not carried onto the event: %+v", event)
	}
	if !event.Date.Equal(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected event date: %v", event.Date)
	}
	if len(event.Tags) != 1 || event.Tags[0] != "music" {
		t.Fatalf("unexpected event tags: %v", event.Tags)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(repo.events))
	}
	if _, ok := kv.data["draft:event:"+start.ID]; ok {
		t.Fatal("submitted draft not removed")
	}
}
