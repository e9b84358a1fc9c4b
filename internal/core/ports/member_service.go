package ports

import (
	"context"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// CreateMemberInput carries the registration-form fields. Status is
// intentionally absent: the service always assigns pending.
type CreateMemberInput struct {
	Email       string
	FullName    string
	Nickname    string
	BirthDate   string
	BirthPlace  string
	Address     string
	Phone       string
	CarType     string
	CarYear     string
	CarColor    string
	PlateNumber string
	ShirtSize   string
	Reason      string
}

// MemberService defines use-case operations for membership applications.
type MemberService interface {
	// List returns all members, newest createdAt first.
	List(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	Create(ctx context.Context, input CreateMemberInput) (*domain.Member, error)
	// UpdateStatus moves a member to the given status. Unknown status values
	// return domain.ErrInvalidStatus; an absent id is a no-op.
	UpdateStatus(ctx context.Context, id string, status string) error
}
