package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

type stubMemberRepo struct {
	members []domain.Member
}

func (r *stubMemberRepo) List(_ context.Context) ([]domain.Member, error) {
	out := make([]domain.Member, len(r.members))
	copy(out, r.members)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubMemberRepo) FindByID(_ context.Context, id string) (*domain.Member, error) {
	for _, m := range r.members {
		if m.ID == id {
			clone := m
			return &clone, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) Insert(_ context.Context, m *domain.Member) error {
	r.members = append([]domain.Member{*m}, r.members...)
	return nil
}

func (r *stubMemberRepo) UpdateStatus(_ context.Context, id string, status domain.MemberStatus) error {
	for i := range r.members {
		if r.members[i].ID == id {
			r.members[i].Status = status
			return nil
		}
	}
	return nil // absent id is a no-op
}

type stubGuard struct {
	seen    map[string]bool
	isDupErr error
}

func newStubGuard() *stubGuard { return &stubGuard{seen: make(map[string]bool)} }

func (g *stubGuard) IsDuplicate(_ context.Context, email string) (bool, error) {
	if g.isDupErr != nil {
		return false, g.isDupErr
	}
	return g.seen[email], nil
}

func (g *stubGuard) Mark(_ context.Context, email string) error {
	g.seen[email] = true
	return nil
}

func registrationInput() ports.CreateMemberInput {
	return ports.CreateMemberInput{
		Email:       "a@x.com",
		FullName:    "A B",
		Nickname:    "ab",
		BirthDate:   "1990-05-01",
		BirthPlace:  "Springfield",
		Address:     "1 Main St",
		Phone:       "555-0100",
		CarType:     "Coupe",
		CarYear:     "1998",
		CarColor:    "Red",
		PlateNumber: "XYZ-1",
		ShirtSize:   "M",
		Reason:      "love of cars",
	}
}

func TestMemberService_Create_ForcesPending(t *testing.T) {
	repo := &stubMemberRepo{}
	svc := NewMemberService(repo, nil, zerolog.Nop())

	before := time.Now().UTC()
	member, err := svc.Create(context.Background(), registrationInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if member.Status != domain.StatusPending {
		t.Fatalf("expected status pending, got %q", member.Status)
	}
	if member.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if member.CreatedAt.Before(before) {
		t.Fatalf("expected createdAt to be stamped at creation")
	}
	if member.PlateNumber != "XYZ-1" || member.ShirtSize != "M" {
		t.Fatalf("form fields lost: %+v", member)
	}

	list, _ := svc.List(context.Background())
	if len(list) != 1 || list[0].ID != member.ID {
		t.Fatalf("expected new member first in listing")
	}
}

func TestMemberService_Create_NewestFirst(t *testing.T) {
	repo := &stubMemberRepo{}
	svc := NewMemberService(repo, nil, zerolog.Nop())

	older, _ := svc.Create(context.Background(), registrationInput())
	repo.members[0].CreatedAt = repo.members[0].CreatedAt.Add(-time.Minute)

	in := registrationInput()
	in.Email = "b@x.com"
	newer, _ := svc.Create(context.Background(), in)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if list[0].ID != newer.ID || list[1].ID != older.ID {
		t.Fatalf("expected newest createdAt first")
	}
}

func TestMemberService_UpdateStatus_RoundTrip(t *testing.T) {
	repo := &stubMemberRepo{}
	svc := NewMemberService(repo, nil, zerolog.Nop())

	member, _ := svc.Create(context.Background(), registrationInput())

	if err := svc.UpdateStatus(context.Background(), member.ID, "approved"); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), member.ID, "pending"); err != nil {
		t.Fatalf("UpdateStatus back to pending returned error: %v", err)
	}

	got, err := repo.FindByID(context.Background(), member.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("expected pending after round trip, got %q", got.Status)
	}
	// Everything except status must be unchanged.
	if got.Email != member.Email || got.FullName != member.FullName ||
		got.PlateNumber != member.PlateNumber || !got.CreatedAt.Equal(member.CreatedAt) {
		t.Fatalf("non-status fields changed: %+v", got)
	}
}

func TestMemberService_UpdateStatus_InvalidValue(t *testing.T) {
	svc := NewMemberService(&stubMemberRepo{}, nil, zerolog.Nop())

	err := svc.UpdateStatus(context.Background(), "any", "banned")
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestMemberService_UpdateStatus_AbsentIDIsNoop(t *testing.T) {
	svc := NewMemberService(&stubMemberRepo{}, nil, zerolog.Nop())

	if err := svc.UpdateStatus(context.Background(), "missing", "approved"); err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}
}

func TestMemberService_Create_DuplicateGuard(t *testing.T) {
	repo := &stubMemberRepo{}
	guard := newStubGuard()
	svc := NewMemberService(repo, guard, zerolog.Nop())

	if _, err := svc.Create(context.Background(), registrationInput()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), registrationInput()); !errors.Is(err, ErrDuplicateRegistration) {
		t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
	}
	if len(repo.members) != 1 {
		t.Fatalf("duplicate must not be stored")
	}
}

func TestMemberService_Create_GuardOutageDegrades(t *testing.T) {
	repo := &stubMemberRepo{}
	guard := newStubGuard()
	guard.isDupErr = errors.New("redis down")
	svc := NewMemberService(repo, guard, zerolog.Nop())

	if _, err := svc.Create(context.Background(), registrationInput()); err != nil {
		t.Fatalf("guard outage must not block registration: %v", err)
	}
}

func TestMemberService_GetByID(t *testing.T) {
	repo := &stubMemberRepo{members: []domain.Member{
		{ID: "m-1", Email: "rina@example.com", Status: domain.StatusPending},
	}}
	svc := NewMemberService(repo, nil, zerolog.Nop())

	got, err := svc.GetByID(context.Background(), "m-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "rina@example.com" {
		t.Fatalf("unexpected member: %+v", got)
	}

	if _, err := svc.GetByID(context.Background(), "ghost"); !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}
