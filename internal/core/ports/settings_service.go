package ports

import (
	"context"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// SettingsService manages the singleton site-settings record.
type SettingsService interface {
	// Get never fails on an empty store: it returns the deterministic
	// default value set when no record exists yet.
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Save(ctx context.Context, s *domain.SiteSettings) error
}
