package identity

import (
	"time"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/identity"
)

// LoginRequest represents an admin login request
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=150"`
	Password string `json:"password" form:"password" binding:"required,max=72"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	ExpiresAt   time.Time          `json:"expires_at"`
	User        *AdminUserResponse `json:"user"`
}

// AdminUserResponse represents an admin user in API responses
type AdminUserResponse struct {
	ID          uint64     `json:"id"`
	Username    string     `json:"username"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	LastLoginIP string     `json:"last_login_ip,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToAdminUserResponse converts a domain admin user to a response DTO
func ToAdminUserResponse(u *identity.AdminUser) *AdminUserResponse {
	return &AdminUserResponse{
		ID:          u.ID,
		Username:    u.Username,
		LastLoginAt: u.LastLoginAt,
		LastLoginIP: u.LastLoginIP,
		CreatedAt:   u.CreatedAt,
	}
}

// SessionInfo identifies the token of the current admin session
type SessionInfo struct {
	UserID    uint64
	TokenID   string
	ExpiresAt time.Time
}
