package settings

import (
	"context"
	"errors"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/settings"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"go.uber.org/zap"
)

// SettingsService manages the storefront settings row
type SettingsService struct {
	repo   settings.SettingsRepository
	logger *zap.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo settings.SettingsRepository, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, logger: logger}
}

// EnsureDefault creates the settings row with default values if it does not exist.
// Call it once at startup so request paths can use a plain read.
func (s *SettingsService) EnsureDefault(ctx context.Context) error {
	created, err := s.repo.CreateIfMissing(ctx, settings.NewDefaultSettings())
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("default site settings created")
	}
	return nil
}

// GetPublic returns the settings served to the storefront
func (s *SettingsService) GetPublic(ctx context.Context) (*PublicSettings, error) {
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return ToPublicSettings(current), nil
}

// Get returns the settings for the admin form
func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return ToSettingsResponse(current), nil
}

// Update replaces all editable settings
func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error) {
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := current.Apply(req.toDomain(current.IsActive)); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info("site settings updated")
	return ToSettingsResponse(current), nil
}

// load reads the settings row, recreating it if it has gone missing
func (s *SettingsService) load(ctx context.Context) (*settings.SiteSettings, error) {
	current, err := s.repo.Get(ctx)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	s.logger.Warn("site settings row missing, recreating defaults")
	if err := s.EnsureDefault(ctx); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx)
}
