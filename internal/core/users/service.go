package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/auth"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/mail"
)

const (
	minPasswordLength = 8
	resetTokenTTL     = 3 * 24 * time.Hour
)

type userService struct {
	repo     Repository
	tokens   TokenRepository
	mailer   mail.Mailer
	baseURL  string // frontend origin used in reset links
	logger   *slog.Logger
	hash     func(string) (string, error)
	verify   func(encoded, password string) (bool, error)
	newToken func() string
}

// NewService creates a new account service. baseURL is the frontend origin
// embedded in password reset links.
func NewService(repo Repository, tokens TokenRepository, mailer mail.Mailer, baseURL string, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:     repo,
		tokens:   tokens,
		mailer:   mailer,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
		hash:     auth.HashPassword,
		verify:   auth.VerifyPassword,
		newToken: uuid.NewString,
	}
}

// Register creates a new account and returns it.
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if err := validateRegister(req); err != nil {
		return nil, err
	}

	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}

	// Duplicate unique fields come back as field errors, matching the
	// shape the register form renders.
	if err := s.repo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			return nil, NewFieldError("username", "username already taken")
		case errors.Is(err, ErrEmailTaken):
			return nil, NewFieldError("email", "email already taken")
		default:
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	return user, nil
}

// Login authenticates by username or email.
func (s *userService) Login(ctx context.Context, req LoginRequest) (*User, error) {
	identifier := strings.TrimSpace(req.UsernameOrEmail)
	if identifier == "" {
		return nil, NewFieldError("usernameOrEmail", "username or email is required")
	}

	var user *User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.repo.GetByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = s.repo.GetByUsername(ctx, identifier)
	}
	if errors.Is(err, ErrUserNotFound) {
		return nil, NewFieldError("usernameOrEmail", "that user doesn't exist")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := s.verify(user.Password, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, NewFieldError("password", "incorrect password")
	}

	return user, nil
}

// GetByID retrieves a user by id.
func (s *userService) GetByID(ctx context.Context, id int) (*User, error) {
	if id == 0 {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// RequestPasswordReset issues a reset token and mails a reset link. An
// unknown email is reported as success.
func (s *userService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token := s.newToken()
	if err := s.tokens.Create(ctx, token, user.ID, time.Now().UTC().Add(resetTokenTTL)); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := fmt.Sprintf("%s/change-password/%s", s.baseURL, token)
	body := fmt.Sprintf(`<a href="%s">Reset password</a>`, link)
	if err := s.mailer.Send(ctx, user.Email, "Reset your password", body); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.logger.Info("password reset requested", "user_id", user.ID)
	return nil
}

// ResetPassword consumes a reset token and stores the new password hash.
func (s *userService) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*User, error) {
	if len(req.NewPassword) < minPasswordLength {
		return nil, NewFieldError("newPassword",
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	userID, err := s.tokens.Consume(ctx, req.Token)
	if errors.Is(err, ErrTokenNotFound) {
		return nil, NewFieldError("token", "token expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to consume reset token: %w", err)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, NewFieldError("token", "user no longer exists")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := s.hash(req.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	user.Password = hashed
	return user, nil
}

// validateRegister mirrors the register form's field checks.
func validateRegister(req RegisterRequest) error {
	if !strings.Contains(req.Email, "@") {
		return NewFieldError("email", "invalid email")
	}
	if len(req.Username) <= 2 {
		return NewFieldError("username", "username must be longer than 2 characters")
	}
	if strings.Contains(req.Username, "@") {
		return NewFieldError("username", "username cannot include an @ sign")
	}
	if len(req.Password) < minPasswordLength {
		return NewFieldError("password",
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	return nil
}
