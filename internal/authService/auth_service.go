package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bid-marketplace/internal/credentials"
	"bid-marketplace/internal/marketerrors"
	"bid-marketplace/internal/models"
	"bid-marketplace/internal/repository"
)

// dummyHash keeps password verification running even when no user row
// exists, so unknown emails and wrong passwords take comparable time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements the registration and login workflows.
type AuthService struct {
	store repository.MarketStore
	creds *credentials.Service
}

// NewAuthService creates a new AuthService instance
func NewAuthService(store repository.MarketStore, creds *credentials.Service) *AuthService {
	return &AuthService{
		store: store,
		creds: creds,
	}
}

// Register validates a new account, persists it, and returns a session token
// bound to the stored user's id and email.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	if len(username) < 2 {
		return "", marketerrors.NewValidation("Username must be at least 2 characters.")
	}
	if email == "" || !strings.Contains(email, "@") {
		return "", marketerrors.NewValidation("Invalid email.")
	}
	if len(password) < 6 {
		return "", marketerrors.NewValidation("Password too short.")
	}

	// uniqueness pre-check; concurrent registrations can still race past it,
	// the store-side unique constraint is the only backstop
	_, err := s.store.FindUserByEmail(ctx, email)
	if err == nil {
		return "", fmt.Errorf("service: register: %w", marketerrors.ErrEmailTaken)
	}
	if !errors.Is(err, marketerrors.ErrUserNotFound) {
		return "", fmt.Errorf("service: failed to check existing user: %w", err)
	}

	hashed, err := s.creds.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}

	created, err := s.store.CreateUser(ctx, models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	})
	if err != nil {
		return "", fmt.Errorf("service: failed to create user: %w", err)
	}

	token, err := s.creds.IssueToken(created.ID, created.Email)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}

	return token, nil
}

// Login verifies credentials and returns a session token. Unknown emails and
// wrong passwords produce the identical error so callers cannot probe which
// emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", marketerrors.NewValidation("Email and password required")
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, marketerrors.ErrUserNotFound) {
		return "", fmt.Errorf("service: failed to look up user: %w", err)
	}

	hash := dummyHash
	if err == nil {
		hash = user.Password
	}

	if ok := s.creds.VerifyPassword(password, hash); err != nil || !ok {
		return "", fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
	}

	token, err := s.creds.IssueToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}

	return token, nil
}
