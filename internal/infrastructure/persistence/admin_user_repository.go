package persistence

import (
	"context"
	"errors"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/identity"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAdminUserRepository implements AdminUserRepository using GORM
type GormAdminUserRepository struct {
	db *gorm.DB
}

// NewGormAdminUserRepository creates a new GormAdminUserRepository
func NewGormAdminUserRepository(db *gorm.DB) *GormAdminUserRepository {
	return &GormAdminUserRepository{db: db}
}

// FindByID finds an admin user by ID
func (r *GormAdminUserRepository) FindByID(ctx context.Context, id uint64) (*identity.AdminUser, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByUsername finds an admin user by username
func (r *GormAdminUserRepository) FindByUsername(ctx context.Context, username string) (*identity.AdminUser, error) {
	return r.findOne(ctx, "username = ?", username)
}

// ExistsByUsername checks whether the username is taken
func (r *GormAdminUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AdminUserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an admin user
func (r *GormAdminUserRepository) Save(ctx context.Context, user *identity.AdminUser) error {
	var model models.AdminUserModel
	model.FromDomain(user)
	db := r.db.WithContext(ctx)

	if user.IsNew() {
		if err := db.Create(&model).Error; err != nil {
			return err
		}
		user.ID = model.ID
		return nil
	}

	result := db.Model(&models.AdminUserModel{}).
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

func (r *GormAdminUserRepository) findOne(ctx context.Context, cond string, arg any) (*identity.AdminUser, error) {
	var model models.AdminUserModel
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormAdminUserRepository implements AdminUserRepository
var _ identity.AdminUserRepository = (*GormAdminUserRepository)(nil)
