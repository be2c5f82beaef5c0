package identity

import "context"

// AdminUserRepository defines the interface for admin user persistence
type AdminUserRepository interface {
	// FindByID finds an admin user by ID
	FindByID(ctx context.Context, id uint64) (*AdminUser, error)

	// FindByUsername finds an admin user by username
	FindByUsername(ctx context.Context, username string) (*AdminUser, error)

	// ExistsByUsername checks whether the username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Save creates or updates an admin user
	Save(ctx context.Context, user *AdminUser) error
}
