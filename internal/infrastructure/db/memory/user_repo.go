package memory

import (
	"context"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// userRepo implements ports.UserRepository over the shared store, keyed by
// email.
type userRepo struct {
	s *Store
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	_ = ctx
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := u
	return &clone, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	_ = ctx
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.s.users[user.Email] = *user
	clone := *user
	return &clone, nil
}
