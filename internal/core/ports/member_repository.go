package ports

import (
	"context"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// MemberRepository defines persistence operations for membership
// applications. List is ordered newest createdAt first.
type MemberRepository interface {
	List(ctx context.Context) ([]domain.Member, error)
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	Insert(ctx context.Context, m *domain.Member) error
	// UpdateStatus sets the status field only, leaving every other field
	// untouched. An absent id is a no-op, not an error.
	UpdateStatus(ctx context.Context, id string, status domain.MemberStatus) error
}
