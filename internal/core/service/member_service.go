package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

// RegistrationGuard abstracts the double-submit store (Redis). A nil guard
// disables the check entirely.
type RegistrationGuard interface {
	IsDuplicate(ctx context.Context, email string) (bool, error)
	Mark(ctx context.Context, email string) error
}

var ErrDuplicateRegistration = fmt.Errorf("registration already submitted")

// MemberService implements membership-application use cases.
type MemberService struct {
	repo   ports.MemberRepository
	guard  RegistrationGuard
	logger zerolog.Logger
}

func NewMemberService(repo ports.MemberRepository, guard RegistrationGuard, logger zerolog.Logger) *MemberService {
	return &MemberService{repo: repo, guard: guard, logger: logger}
}

func (s *MemberService) List(ctx context.Context) ([]domain.Member, error) {
	return s.repo.List(ctx)
}

// Create stores a new membership application. Status is always pending and
// createdAt is stamped here, regardless of caller input. When a guard is
// wired, a repeated submission for the same email within the guard window is
// rejected; a guard outage degrades to processing.
func (s *MemberService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MemberService) Create(ctx context.Context, input ports.CreateMemberInput) (*domain.Member, error) {
	if s.guard != nil {
		isDup, err := s.guard.IsDuplicate(ctx, input.Email)
		if err != nil {
			s.logger.Warn().Err(err).Str("email", input.Email).Msg("registration guard check failed, processing anyway")
		} else if isDup {
			s.logger.Info().Str("email", input.Email).Msg("duplicate registration skipped")
			return nil, ErrDuplicateRegistration
		}
	}

	member := &domain.Member{
		ID:          uuid.NewString(),
		Email:       input.Email,
		FullName:    input.FullName,
		Nickname:    input.Nickname,
		BirthDate:   input.BirthDate,
		BirthPlace:  input.BirthPlace,
		Address:     input.Address,
		Phone:       input.Phone,
		CarType:     input.CarType,
		CarYear:     input.CarYear,
		CarColor:    input.CarColor,
		PlateNumber: input.PlateNumber,
		ShirtSize:   input.ShirtSize,
		Reason:      input.Reason,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, member); err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create member")
		return nil, fmt.Errorf("create member: %w", err)
	}

	if s.guard != nil {
		if err := s.guard.Mark(ctx, input.Email); err != nil {
			s.logger.Warn().Err(err).Str("email", input.Email).Msg("failed to set registration guard key")
		}
	}

	s.logger.Info().Str("id", member.ID).Str("email", member.Email).Msg("member registered")
	return member, nil
}

// UpdateStatus moves a member to the given status. Only the status field
// changes; every other field is untouched. An absent id is a no-op.
func (s *MemberService) UpdateStatus(ctx context.Context, id string, status string) error {
	next := domain.MemberStatus(status)
	if !next.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to update member status")
		return fmt.Errorf("update member status: %w", err)
	}

	s.logger.Info().Str("id", id).Str("status", status).Msg("member status updated")
	return nil
}
