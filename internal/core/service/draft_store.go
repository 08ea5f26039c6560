package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// draftStore persists wizard drafts as JSON in the string-keyed store.
// Drafts expire after a TTL so abandoned wizards do not accumulate; a
// malformed entry is discarded and reported as not found, mirroring the
// session store's fail-soft restore.
type draftStore[T any] struct {
	kv     ports.KV
	prefix string
	ttl    time.Duration
	log    zerolog.Logger
}

func newDraftStore[T any](kv ports.KV, kind domain.DraftKind, ttl time.Duration, log zerolog.Logger) draftStore[T] {
	return draftStore[T]{kv: kv, prefix: "draft:" + string(kind) + ":", ttl: ttl, log: log}
}

func (s draftStore[T]) load(ctx context.Context, id string) (*T, error) {
	raw, ok, err := s.kv.Get(ctx, s.prefix+id)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if !ok {
		return nil, domain.ErrDraftNotFound
	}

	var draft T
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		s.log.Warn().Err(err).Str("draft_id", id).Msg("discarding malformed draft entry")
		_ = s.kv.Del(ctx, s.prefix+id)
		return nil, domain.ErrDraftNotFound
	}
	return &draft, nil
}

func (s draftStore[T]) save(ctx context.Context, id string, draft *T) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	if err := s.kv.Set(ctx, s.prefix+id, string(raw), s.ttl); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s draftStore[T]) delete(ctx context.Context, id string) error {
	return s.kv.Del(ctx, s.prefix+id)
}
