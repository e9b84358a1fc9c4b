package handler

import (
	"strings"
	"testing"
)

func TestValidator_CategoryFromDomainSet(t *testing.T) {
	v := NewValidator()

	ok := createArticleRequest{Title: "t", Content: "c", Category: "Maintenance"}
	if err := v.Validate(&ok); err != nil {
		t.Fatalf("expected valid category accepted, got %v", err)
	}

	bad := createArticleRequest{Title: "t", Content: "c", Category: "Gossip"}
	err := v.Validate(&bad)
	if err == nil {
		t.Fatal("expected unknown category rejected")
	}
	if !strings.Contains(err.Error(), "category must be one of") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestValidator_ShirtSizeFromDomainSet(t *testing.T) {
	v := NewValidator()

	req := createMemberRequest{
		Email: "a@b.com", FullName: "A", Phone: "1",
		CarType: "Civic", PlateNumber: "B 1 A", ShirtSize: "XXXL",
	}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("expected valid shirt size accepted, got %v", err)
	}

	req.ShirtSize = "HUGE"
	if err := v.Validate(&req); err == nil {
		t.Fatal("expected unknown shirt size rejected")
	}
}

func TestValidator_MemberStatusFromDomainSet(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&updateMemberStatusRequest{Status: "rejected"}); err != nil {
		t.Fatalf("expected valid status accepted, got %v", err)
	}
	if err := v.Validate(&updateMemberStatusRequest{Status: "vip"}); err == nil {
		t.Fatal("expected unknown status rejected")
	}
}

func TestValidator_ExplicitSlug(t *testing.T) {
	v := NewValidator()

	ok := createArticleRequest{Title: "t", Content: "c", Category: "News", Slug: "track-day-2026"}
	if err := v.Validate(&ok); err != nil {
		t.Fatalf("expected well-formed slug accepted, got %v", err)
	}

	bad := createArticleRequest{Title: "t", Content: "c", Category: "News", Slug: "Track Day!"}
	if err := v.Validate(&bad); err == nil {
		t.Fatal("expected malformed slug rejected")
	}

	derived := createArticleRequest{Title: "t", Content: "c", Category: "News"}
	if err := v.Validate(&derived); err != nil {
		t.Fatalf("expected empty slug accepted for derivation, got %v", err)
	}
}
