package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

// SettingsService manages the singleton site-settings record.
type SettingsService struct {
	repo   ports.SettingsRepository
	logger zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, logger: logger}
}

// Get returns the stored settings, falling back to the deterministic
// defaults while no record exists. The settings collaborator may not be
// provisioned yet, so a missing record is never an error.
func (s *SettingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return stored, nil
}

// Save upserts the singleton record: the first write creates it, every
// later write updates it in place.
func (s *SettingsService) Save(ctx context.Context, settings *domain.SiteSettings) error {
	if err := s.repo.Upsert(ctx, settings); err != nil {
		s.logger.Error().Err(err).Msg("failed to save settings")
		return fmt.Errorf("save settings: %w", err)
	}
	s.logger.Info().Msg("settings saved")
	return nil
}
