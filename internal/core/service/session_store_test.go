package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
)

func TestSessionStore_SaveRestore(t *testing.T) {
	kv := newMapKV()
	store := NewSessionStore(kv, zerolog.Nop())
	ctx := context.Background()

	sess := &domain.Session{
		ID:        "1",
		Email:     "admin@admin.com",
		Name:      "Super Admin",
		Role:      domain.RoleSuperAdmin,
		LastLogin: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
	}
	if err := store.Save(ctx, "sid-1", sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Restore(ctx, "sid-1")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got == nil {
		t.Fatalf("expected session, got nil")
	}
	if got.Email != sess.Email || got.Role != sess.Role {
		t.Fatalf("unexpected session: %+v", got)
	}
	if !got.LastLogin.Equal(sess.LastLogin) {
		t.Fatalf("last login not preserved: %v", got.LastLogin)
	}
}

func TestSessionStore_RestoreAbsent(t *testing.T) {
	store := NewSessionStore(newMapKV(), zerolog.Nop())

	got, err := store.Restore(context.Background(), "missing")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil session, got %+v", got)
	}
}

func TestSessionStore_RestoreMalformedDiscards(t *testing.T) {
	kv := newMapKV()
	kv.data["session:sid-1"] = "{not json"
	store := NewSessionStore(kv, zerolog.Nop())
	ctx := context.Background()

	got, err := store.Restore(ctx, "sid-1")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil session for malformed entry, got %+v", got)
	}
	if _, ok := kv.data["session:sid-1"]; ok {
		t.Fatalf("malformed entry should have been discarded")
	}

	// a second restore behaves exactly like an absent key
	got, err = store.Restore(ctx, "sid-1")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) after discard, got (%+v, %v)", got, err)
	}
}

func TestSessionStore_RestoreStoreError(t *testing.T) {
	store := NewSessionStore(failingKV{}, zerolog.Nop())

	if _, err := store.Restore(context.Background(), "sid-1"); err == nil {
		t.Fatalf("expected error when store is down")
	}
}

func TestSessionStore_Clear(t *testing.T) {
	kv := newMapKV()
	store := NewSessionStore(kv, zerolog.Nop())
	ctx := context.Background()

	if err := store.Save(ctx, "sid-1", &domain.Session{ID: "1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx, "sid-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := store.Restore(ctx, "sid-1")
	if err != nil || got != nil {
		t.Fatalf("expected cleared session, got (%+v, %v)", got, err)
	}
}
