package memory

import (
	"context"
	"sort"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// memberRepo implements ports.MemberRepository over the shared store.
type memberRepo struct {
	s *Store
}

func (r *memberRepo) List(ctx context.Context) ([]domain.Member, error) {
	_ = ctx
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Member, len(r.s.members))
	copy(out, r.s.members)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memberRepo) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	_ = ctx
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.members {
		if m.ID == id {
			clone := m
			return &clone, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *memberRepo) Insert(ctx context.Context, m *domain.Member) error {
	_ = ctx
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.members = append([]domain.Member{*m}, r.s.members...)
	return nil
}

func (r *memberRepo) UpdateStatus(ctx context.Context, id string, status domain.MemberStatus) error {
	_ = ctx
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.members {
		if r.s.members[i].ID == id {
			r.s.members[i].Status = status
			return nil
		}
	}
	return nil // absent id is a no-op
}
