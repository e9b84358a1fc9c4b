// Package memory is the simulated storage backend: a process-lifetime
// store satisfying the same repository contracts as the MongoDB backend.
// It is used when no real database is configured.
package memory

import (
	"sync"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

type blob struct {
	contentType string
	data        []byte
}

// Store holds every entity type behind a single lock and hands out
// per-entity repository views. Records are cloned on the way in and out so
// callers can never mutate stored state directly. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	articles []domain.Article
	members  []domain.Member
	settings *domain.SiteSettings
	users    map[string]domain.User
	blobs    map[string]blob

	seeded bool
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]domain.User),
		blobs: make(map[string]blob),
	}
}

func (s *Store) Articles() ports.ArticleRepository { return &articleRepo{s: s} }
func (s *Store) Members() ports.MemberRepository   { return &memberRepo{s: s} }
func (s *Store) Settings() ports.SettingsRepository {
	return &settingsRepo{s: s}
}
func (s *Store) Users() ports.UserRepository { return &userRepo{s: s} }
func (s *Store) Blobs() ports.BlobStore      { return &blobStore{s: s} }
