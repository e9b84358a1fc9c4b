package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	if err := s.Seed(context.Background(), "admin@demo.com", "password"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestSeed_PopulatesDemoData(t *testing.T) {
	s := seededStore(t)

	articles, err := s.Articles().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("expected 3 demo articles, got %d", len(articles))
	}
	if articles[0].Slug != "future-electric-sports-cars" {
		t.Fatalf("expected staggered timestamps to keep demo order, got %q first", articles[0].Slug)
	}

	settings, err := s.Settings().Get(context.Background())
	if err != nil {
		t.Fatalf("Get settings: %v", err)
	}
	if *settings != domain.DefaultSettings() {
		t.Fatalf("expected default settings, got %+v", settings)
	}

	admin, err := s.Users().FindByEmail(context.Background(), "admin@demo.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("password")) != nil {
		t.Fatalf("admin password not stored as a matching bcrypt hash")
	}
}

func TestSeed_IsIdempotentAndNeverOverwrites(t *testing.T) {
	s := seededStore(t)

	custom := domain.SiteSettings{HeroTitle: "Customized"}
	if err := s.Settings().Upsert(context.Background(), &custom); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := s.Articles().Delete(context.Background(), "3"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if err := s.Seed(context.Background(), "admin@demo.com", "password"); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	articles, _ := s.Articles().List(context.Background())
	if len(articles) != 2 {
		t.Fatalf("second seed must not re-add articles, got %d", len(articles))
	}
	settings, _ := s.Settings().Get(context.Background())
	if settings.HeroTitle != "Customized" {
		t.Fatalf("second seed must not overwrite settings, got %q", settings.HeroTitle)
	}
}

func TestArticleRepo_PrependAndOrdering(t *testing.T) {
	s := NewStore()
	repo := s.Articles()
	now := time.Now().UTC()

	_ = repo.Insert(context.Background(), &domain.Article{ID: "older", Slug: "older", PublishedAt: now.Add(-time.Hour)})
	_ = repo.Insert(context.Background(), &domain.Article{ID: "newer", Slug: "newer", PublishedAt: now})

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list[0].ID != "newer" || list[1].ID != "older" {
		t.Fatalf("expected newest publishedAt first, got %v", []string{list[0].ID, list[1].ID})
	}
}

func TestArticleRepo_CloneIsolation(t *testing.T) {
	s := NewStore()
	repo := s.Articles()

	_ = repo.Insert(context.Background(), &domain.Article{ID: "a", Slug: "a", Title: "Original"})

	got, err := repo.FindByID(context.Background(), "a")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	got.Title = "Mutated by caller"

	again, _ := repo.FindByID(context.Background(), "a")
	if again.Title != "Original" {
		t.Fatalf("stored record mutated through a returned clone")
	}
}

func TestArticleRepo_UpdateReplacesInPlace(t *testing.T) {
	s := NewStore()
	repo := s.Articles()

	_ = repo.Insert(context.Background(), &domain.Article{ID: "a", Slug: "a", Title: "v1"})
	if err := repo.Update(context.Background(), &domain.Article{ID: "a", Slug: "a", Title: "v2"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	list, _ := repo.List(context.Background())
	if len(list) != 1 || list[0].Title != "v2" {
		t.Fatalf("expected single replaced record, got %+v", list)
	}

	if err := repo.Update(context.Background(), &domain.Article{ID: "ghost"}); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestMemberRepo_StatusOnlyUpdate(t *testing.T) {
	s := NewStore()
	repo := s.Members()

	member := &domain.Member{
		ID:        "m1",
		Email:     "a@x.com",
		FullName:  "A B",
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	_ = repo.Insert(context.Background(), member)

	if err := repo.UpdateStatus(context.Background(), "m1", domain.StatusApproved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, _ := repo.FindByID(context.Background(), "m1")
	if got.Status != domain.StatusApproved {
		t.Fatalf("expected approved, got %q", got.Status)
	}
	if got.Email != member.Email || got.FullName != member.FullName {
		t.Fatalf("non-status fields changed: %+v", got)
	}

	if err := repo.UpdateStatus(context.Background(), "ghost", domain.StatusRejected); err != nil {
		t.Fatalf("absent id must be a no-op, got %v", err)
	}
}

func TestBlobStore_RoundTrip(t *testing.T) {
	s := NewStore()
	blobs := s.Blobs()

	if err := blobs.Put(context.Background(), "k", "image/png", []byte("png")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	rc, contentType, err := blobs.Open(context.Background(), "k")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	if contentType != "image/png" {
		t.Fatalf("content type lost: %q", contentType)
	}

	if _, _, err := blobs.Open(context.Background(), "missing"); !errors.Is(err, ports.ErrBlobNotFound) {
		t.Fatalf("expected ErrBlobNotFound, got %v", err)
	}
}

func TestArticleRepo_DuplicateSlugsAllowed(t *testing.T) {
	s := NewStore()
	repo := s.Articles()
	now := time.Now().UTC()

	older := domain.Article{ID: "a1", Slug: "same-slug", Title: "First", PublishedAt: now.Add(-time.Hour)}
	newer := domain.Article{ID: "a2", Slug: "same-slug", Title: "Second", PublishedAt: now}
	if err := repo.Insert(context.Background(), &older); err != nil {
		t.Fatalf("Insert older: %v", err)
	}
	if err := repo.Insert(context.Background(), &newer); err != nil {
		t.Fatalf("Insert newer: %v", err)
	}

	articles, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected both duplicates stored, got %d", len(articles))
	}

	got, err := repo.FindBySlug(context.Background(), "same-slug")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if got.ID != "a2" {
		t.Fatalf("expected the most recently published match, got %q", got.ID)
	}
}
