package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/samaladyasa/spice-and-soul-backend/internal/auth"
	"github.com/samaladyasa/spice-and-soul-backend/internal/codes"
	"github.com/samaladyasa/spice-and-soul-backend/internal/config"
	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
	"github.com/samaladyasa/spice-and-soul-backend/internal/events"
	"github.com/samaladyasa/spice-and-soul-backend/internal/repository"
	apperrors "github.com/samaladyasa/spice-and-soul-backend/pkg/util"
)

// Identical message for unknown email and wrong password so the response
// does not reveal which half of the pair failed.
const invalidCredentialsMsg = "Invalid email or password"

// AuthService coordinates signup, login and the password-reset flow.
type AuthService struct {
	users      repository.UserRepository
	codeStore  *codes.Store
	tokens     *auth.TokenService
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	CodeStore  *codes.Store
	Tokens     *auth.TokenService
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		codeStore:  deps.CodeStore,
		tokens:     deps.Tokens,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		bcryptCost: cfg.BcryptCost,
	}
}

// Signup creates a new customer account and returns a first-party token.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	email = domain.NormalizeEmail(email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewValidationError("Email already registered", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Email:        email,
		UserID:       uuid.NewString(),
		PasswordHash: hash,
		Name:         name,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokens.Issue(user.UserID, user.Email, user.Name)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.logger.Info("new user created", zap.String("email", email))
	return user, token, exp, nil
}

// Login authenticates a customer.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentialsMsg)
	}
	if err != nil {
		return nil, "", time.Time{}, err
	}

	if !auth.PasswordMatches(user.PasswordHash, password) {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentialsMsg)
	}

	token, exp, err := s.tokens.Issue(user.UserID, user.Email, user.Name)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.logger.Info("user logged in", zap.String("email", user.Email))
	return user, token, exp, nil
}

// SendResetCode issues a fresh verification code for an existing account
// and publishes the event that triggers the code email. Email delivery is
// best-effort: the code is stored either way.
func (s *AuthService) SendResetCode(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)

	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewValidationError("No account found with this email", nil)
		}
		return err
	}

	code, err := s.codeStore.Issue(ctx, email)
	if err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:    events.EventResetCodeIssued,
			Email:   email,
			Payload: map[string]any{"code": code},
		})
	}
	return nil
}

// VerifyResetCode checks a submitted code without consuming it.
func (s *AuthService) VerifyResetCode(ctx context.Context, email, code string) error {
	result, err := s.codeStore.Check(ctx, email, code)
	if err != nil {
		return err
	}

	switch result {
	case codes.CheckOK:
		return nil
	case codes.CheckNoCode:
		return apperrors.NewValidationError("No verification code found. Please request a new code.", nil)
	case codes.CheckExpired:
		return apperrors.NewValidationError("Verification code has expired. Please try again.", nil)
	default:
		return apperrors.NewValidationError("Invalid verification code. Please try again.", nil)
	}
}

// ResetPassword re-checks the code, updates the stored hash and consumes
// the code. The code survives the earlier verification step so it is
// validated here one final time.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = domain.NormalizeEmail(email)

	result, err := s.codeStore.Check(ctx, email, code)
	if err != nil {
		return err
	}
	switch result {
	case codes.CheckOK:
	case codes.CheckNoCode:
		return apperrors.NewValidationError("No verification code found", nil)
	default:
		return apperrors.NewValidationError("Invalid or expired verification code", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, email, hash); err != nil {
		return err
	}

	if err := s.codeStore.Consume(ctx, email); err != nil {
		return err
	}

	s.logger.Info("password reset", zap.String("email", email))
	return nil
}

// TokenService exposes the underlying token service for middleware usage.
func (s *AuthService) TokenService() *auth.TokenService {
	return s.tokens
}
