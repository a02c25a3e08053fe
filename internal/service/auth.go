package service

import (
	"context"
	"log/slog"

	"github.com/foreskyapp/foresky-cli/internal/domain"
	"github.com/foreskyapp/foresky-cli/internal/session"
	"github.com/foreskyapp/foresky-cli/internal/validation"
)

// AuthService handles registration, verification, and the login flow.
type AuthService struct {
	gw        Gateway
	session   *session.Manager
	validator *validation.Validator
	logger    *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(gw Gateway, sess *session.Manager, v *validation.Validator, logger *slog.Logger) *AuthService {
	return &AuthService{
		gw:        gw,
		session:   sess,
		validator: v,
		logger:    logger,
	}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// Login exchanges credentials for a session. On an unverified-account
// failure the error passes through untouched so the caller can offer a
// resend prompt; the session stays exactly as it was.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if err := s.validator.Validate(loginInput{Email: email, Password: password}); err != nil {
		return err
	}

	token, err := s.gw.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := s.session.Login(token); err != nil {
		return err
	}
	s.logger.Info("logged in", "email", email)
	return nil
}

// Logout tears the session down locally. There is no remote call; the
// token simply stops being presented.
func (s *AuthService) Logout() error {
	return s.session.Logout()
}

// Register creates a new account. The password confirmation mismatch
// is caught before any remote call.
func (s *AuthService) Register(ctx context.Context, email, password, confirm string) (*domain.User, error) {
	input := registerInput{Email: email, Password: password, ConfirmPassword: confirm}
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}
	return s.gw.Register(ctx, email, password)
}

// Verify exchanges the emailed token for a confirmation message.
func (s *AuthService) Verify(ctx context.Context, token string) (string, error) {
	return s.gw.Verify(ctx, token)
}

// Resend asks for a fresh verification email.
func (s *AuthService) Resend(ctx context.Context, email string) error {
	return s.gw.ResendVerification(ctx, email)
}

// Profile bundles the outcome of the independent profile and stats
// fetches. Either side may have failed without taking the other down.
type Profile struct {
	User  *domain.User
	Stats *domain.Stats
}

// Profile fetches the user's profile and stats together. The two
// fetches are independent: each failure is isolated and logged, and
// the call only errors when both come back empty-handed.
func (s *AuthService) Profile(ctx context.Context) (*Profile, error) {
	p := &Profile{}

	user, userErr := s.gw.Me(ctx)
	if userErr != nil {
		s.logger.Warn("profile fetch failed", "error", userErr)
	} else {
		p.User = user
	}

	stats, statsErr := s.gw.Stats(ctx)
	if statsErr != nil {
		s.logger.Warn("stats fetch failed", "error", statsErr)
	} else {
		p.Stats = stats
	}

	if userErr != nil && statsErr != nil {
		return nil, userErr
	}
	return p, nil
}
