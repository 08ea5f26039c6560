package fixtures

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// UserRepository is the in-memory operator directory.
type UserRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: seedUsers()}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, domain.ErrUserExists
		}
	}

	copied := *user
	if copied.ID == "" {
		copied.ID = strconv.Itoa(len(r.users) + 1)
	}
	r.users = append(r.users, &copied)

	created := copied
	return &created, nil
}

func (r *UserRepository) List(ctx context.Context, filter ports.UserFilter) ([]*domain.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.User
	for _, u := range r.users {
		if filter.Role != "" && string(u.Role) != filter.Role {
			continue
		}
		if filter.Search != "" && !containsFold(u.Name, filter.Search) && !containsFold(u.Email, filter.Search) {
			continue
		}
		matched = append(matched, u)
	}

	page, total := paginate(matched, filter.Page, filter.Limit)
	return page, total, nil
}

func (r *UserRepository) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.Role]int64)
	for _, u := range r.users {
		counts[u.Role]++
	}
	return counts, nil
}
