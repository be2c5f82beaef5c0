package persistence

import (
	"context"
	"errors"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/settings"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get loads the singleton settings row
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.SiteSettings, error) {
	var model models.SiteSettingsModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", settings.SingletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// CreateIfMissing inserts the row unless one with the same ID exists
func (r *GormSettingsRepository) CreateIfMissing(ctx context.Context, s *settings.SiteSettings) (bool, error) {
	var model models.SiteSettingsModel
	model.FromDomain(s)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&model)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Save updates the settings row
func (r *GormSettingsRepository) Save(ctx context.Context, s *settings.SiteSettings) error {
	var model models.SiteSettingsModel
	model.FromDomain(s)

	result := r.db.WithContext(ctx).Model(&models.SiteSettingsModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSettingsRepository implements SettingsRepository
var _ settings.SettingsRepository = (*GormSettingsRepository)(nil)
