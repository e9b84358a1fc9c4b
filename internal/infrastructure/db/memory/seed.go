package memory

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// Seed populates the store with demo content and the admin account. It is
// an explicit one-time initialization step invoked at startup rather than
// an on-every-read existence check; calling it again is a no-op and it
// never overwrites data already present.
func (s *Store) Seed(ctx context.Context, adminEmail, adminPassword string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seeded {
		return nil
	}

	if len(s.articles) == 0 {
		s.articles = demoArticles(time.Now().UTC())
	}

	if s.settings == nil {
		defaults := domain.DefaultSettings()
		s.settings = &defaults
	}

	if _, exists := s.users[adminEmail]; !exists {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
		s.users[adminEmail] = domain.User{
			ID:           "admin",
			Email:        adminEmail,
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
			CreatedAt:    time.Now().UTC(),
		}
	}

	s.seeded = true
	return nil
}

// demoArticles returns the demo content shown before any real article has
// been written. Timestamps are staggered so the listing order is stable.
func demoArticles(now time.Time) []domain.Article {
	return []domain.Article{
		{
			ID:          "1",
			Title:       "The Future of Electric Sports Cars",
			Slug:        "future-electric-sports-cars",
			Excerpt:     "Exploring the shift from combustion engines to high-torque electric motors in modern racing.",
			Content:     "Full content goes here...",
			Image:       "https://picsum.photos/seed/car1/800/600",
			Category:    "News",
			Author:      domain.DefaultAuthor,
			PublishedAt: now,
			Featured:    true,
		},
		{
			ID:          "2",
			Title:       "Maintenance Tips for Vintage Classics",
			Slug:        "maintenance-vintage-classics",
			Excerpt:     "How to keep your old school ride running smooth in the modern era.",
			Content:     "Full content goes here...",
			Image:       "https://picsum.photos/seed/car2/800/600",
			Category:    "Maintenance",
			Author:      domain.DefaultAuthor,
			PublishedAt: now.Add(-time.Hour),
		},
		{
			ID:          "3",
			Title:       "Annual Grand Tour 2024 Recap",
			Slug:        "grand-tour-2024-recap",
			Excerpt:     "A look back at the most exciting moments from our yearly cross-country gathering.",
			Content:     "Full content goes here...",
			Image:       "https://picsum.photos/seed/car3/800/600",
			Category:    "Events",
			Author:      domain.DefaultAuthor,
			PublishedAt: now.Add(-2 * time.Hour),
		},
	}
}
