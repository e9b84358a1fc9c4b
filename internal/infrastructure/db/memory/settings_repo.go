package memory

import (
	"context"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// settingsRepo implements ports.SettingsRepository over the shared store.
type settingsRepo struct {
	s *Store
}

func (r *settingsRepo) Get(ctx context.Context) (*domain.SiteSettings, error) {
	_ = ctx
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.settings == nil {
		return nil, domain.ErrSettingsNotFound
	}
	clone := *r.s.settings
	return &clone, nil
}

func (r *settingsRepo) Upsert(ctx context.Context, settings *domain.SiteSettings) error {
	_ = ctx
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	clone := *settings
	r.s.settings = &clone
	return nil
}
