package ports

import (
	"context"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// SettingsRepository persists the singleton site-settings record.
type SettingsRepository interface {
	// Get returns domain.ErrSettingsNotFound when no record exists yet.
	Get(ctx context.Context) (*domain.SiteSettings, error)
	// Upsert creates the record on first write and updates it afterwards.
	Upsert(ctx context.Context, s *domain.SiteSettings) error
}
