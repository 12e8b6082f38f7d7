package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/unicart/unicart/internal/events"
	"github.com/unicart/unicart/internal/hash"
	"github.com/unicart/unicart/internal/logging"
	"github.com/unicart/unicart/internal/models"
	"github.com/unicart/unicart/internal/repo"
	"github.com/unicart/unicart/internal/tokens"
)

type AuthService struct {
	Repo     *repo.GormRepo
	Tokens   *tokens.Service
	Producer *events.Producer
}

type AuthResult struct {
	User  *models.User
	Token string
}

// Register creates a customer account and issues a session token. Emails are
// stored lowercased so lookups are case-insensitive.
func (s *AuthService) Register(ctx context.Context, email, password string, firstName, lastName *string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.Repo.UserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", ErrEmailTaken)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: pwHash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         models.RoleCustomer,
		IsActive:     true,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	token, err := s.Tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicUserEvents, user.ID.String(), map[string]any{
		"type":   "user.registered",
		"userId": user.ID,
		"email":  user.Email,
	}); err != nil {
		l.Error("event publish error", "error", err)
	}

	return &AuthResult{User: &user, Token: token}, nil
}

// Login verifies credentials against the stored hash, updates last-login and
// issues a session token. Unknown email and wrong password collapse into the
// same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid email or password: %w", ErrInvalidCredentials)
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account is inactive: %w", ErrInactiveAccount)
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("invalid email or password: %w", ErrInvalidCredentials)
	}

	now := time.Now().UTC()
	if err := s.Repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	token, err := s.Tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicUserEvents, user.ID.String(), map[string]any{
		"type":   "user.logged_in",
		"userId": user.ID,
		"email":  user.Email,
	}); err != nil {
		l.Error("event publish error", "error", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}
