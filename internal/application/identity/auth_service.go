package identity

import (
	"context"
	"errors"
	"time"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/identity"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid credentials")

// TokenIssuer issues admin session tokens
type TokenIssuer interface {
	GenerateToken(userID uint64, username string) (*auth.Token, error)
}

// TokenRevoker revokes session tokens until they expire
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService handles admin authentication
type AuthService struct {
	users   identity.AdminUserRepository
	tokens  TokenIssuer
	revoker TokenRevoker
	logger  *zap.Logger
	now     func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(users identity.AdminUserRepository, tokens TokenIssuer, revoker TokenRevoker, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:   users,
		tokens:  tokens,
		revoker: revoker,
		logger:  logger,
		now:     time.Now,
	}
}

// Login verifies credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, req LoginRequest, clientIP string) (*LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Info("login failed: unknown user", zap.String("username", req.Username), zap.String("client_ip", clientIP))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Info("login failed: wrong password", zap.String("username", req.Username), zap.String("client_ip", clientIP))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	user.RecordLogin(clientIP)
	if err := s.users.Save(ctx, user); err != nil {
		s.logger.Warn("failed to record login", zap.Uint64("user_id", user.ID), zap.Error(err))
	}

	s.logger.Info("admin logged in", zap.Uint64("user_id", user.ID), zap.String("client_ip", clientIP))
	return &LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User:        ToAdminUserResponse(user),
	}, nil
}

// Logout revokes the session token for the rest of its lifetime
func (s *AuthService) Logout(ctx context.Context, session SessionInfo) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if err := s.revoker.Revoke(ctx, session.TokenID, ttl); err != nil {
		return err
	}
	s.logger.Info("admin logged out", zap.Uint64("user_id", session.UserID))
	return nil
}

// GetCurrentUser returns the admin user of the current session
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uint64) (*AdminUserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToAdminUserResponse(user), nil
}

// EnsureAdmin creates the bootstrap admin account if the username is not taken.
// It reports whether an account was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	user, err := identity.NewAdminUser(username, password)
	if err != nil {
		return false, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return false, err
	}

	s.logger.Info("bootstrap admin user created", zap.String("username", user.Username))
	return true, nil
}
