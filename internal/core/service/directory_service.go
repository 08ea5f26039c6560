package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// DirectoryService implements the operator directory list view.
type DirectoryService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewDirectoryService(users ports.UserRepository, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{users: users, log: log}
}

func (s *DirectoryService) ListUsers(ctx context.Context, filter ports.UserFilter) (*ports.Page[*domain.User], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.users.List(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list users")
		return nil, err
	}
	return buildPage(items, total, filter.Page, filter.Limit), nil
}

func (s *DirectoryService) RoleCounts(ctx context.Context) (map[domain.Role]int64, error) {
	return s.users.CountByRole(ctx)
}
