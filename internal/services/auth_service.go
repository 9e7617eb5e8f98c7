package services

import (
	"context"
	"errors"
	"log"

	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/session"
)

// PostLoginPath is where a successful sign-in navigates. The guard sends non-admins on to the dashboard.
const PostLoginPath = "/admin"

// Compile-time check to ensure authService implements AuthService
var _ AuthService = (*authService)(nil)

type authService struct {
	provider identity.Provider
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(provider identity.Provider) AuthService {
	return &authService{provider: provider}
}

// Login handles user sign-in through the session
func (s *authService) Login(ctx context.Context, sc *session.Context, req *models.LoginRequest) (string, error) {
	if err := sc.Login(ctx, req.Email, req.Password); err != nil {
		log.Printf("[INFO] Sign-in rejected: %s", identity.Code(err))
		return "", err
	}
	return PostLoginPath, nil
}

// Logout ends the session's sign-in
func (s *authService) Logout(ctx context.Context, sc *session.Context) error {
	return sc.Logout(ctx)
}

// RequestPasswordReset emails a reset link without revealing whether the email is registered
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	err := s.provider.SendPasswordReset(ctx, email)
	if errors.Is(err, identity.ErrUserNotFound) {
		log.Printf("[DEBUG] Password reset requested for unknown email")
		return nil
	}
	return err
}

// ConfirmPasswordReset consumes a reset token
func (s *authService) ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirmRequest) error {
	return s.provider.ResetPassword(ctx, req.Token, req.NewPassword)
}
