package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// SessionStore persists operator sessions in a durable string-keyed store.
// Sessions carry no TTL: they live until an explicit logout or until a
// malformed entry is discarded during restore.
type SessionStore struct {
	kv  ports.KV
	log zerolog.Logger
}

func NewSessionStore(kv ports.KV, log zerolog.Logger) *SessionStore {
	return &SessionStore{kv: kv, log: log}
}

// Restore loads the session saved under id. An absent key means logged out,
// not an error. A value that fails to deserialize is discarded and likewise
// treated as logged out, so repeated restores of a corrupt entry converge on
// an empty store.
func (s *SessionStore) Restore(ctx context.Context, id string) (*domain.Session, error) {
	raw, ok, err := s.kv.Get(ctx, sessionKey(id))
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.log.Warn().Err(err).Str("session_id", id).Msg("discarding malformed session entry")
		if delErr := s.kv.Del(ctx, sessionKey(id)); delErr != nil {
			s.log.Warn().Err(delErr).Str("session_id", id).Msg("failed to discard session entry")
		}
		return nil, nil
	}
	return &sess, nil
}

// Save serializes and persists the session, overwriting any prior value.
func (s *SessionStore) Save(ctx context.Context, id string, sess *domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := s.kv.Set(ctx, sessionKey(id), string(raw), 0); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the persisted session.
func (s *SessionStore) Clear(ctx context.Context, id string) error {
	if err := s.kv.Del(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return "session:" + id
}
