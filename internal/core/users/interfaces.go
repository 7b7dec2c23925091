package users

import (
	"context"
	"time"
)

// Service defines the business logic interface for accounts
type Service interface {
	// Register validates the input, hashes the password, and stores the
	// account. Duplicate username/email surface as field-level
	// ValidationErrors, not hard failures.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login authenticates by username or email. Unknown users and wrong
	// passwords surface as field-level ValidationErrors.
	Login(ctx context.Context, req LoginRequest) (*User, error)

	// GetByID retrieves a user, for the "who am I" query.
	GetByID(ctx context.Context, id int) (*User, error)

	// RequestPasswordReset issues a reset token and mails a reset link.
	// Always reports success so the endpoint can't be used to probe which
	// emails are registered.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword consumes an emailed token, stores the new password
	// hash, and returns the user so the caller can establish a session.
	ResetPassword(ctx context.Context, req ResetPasswordRequest) (*User, error)
}

// Repository defines the data access interface for the credential store
type Repository interface {
	// Create inserts a user and fills in generated fields.
	// Returns ErrUsernameTaken or ErrEmailTaken on unique violations.
	Create(ctx context.Context, user *User) error

	// GetByID returns ErrUserNotFound when absent.
	GetByID(ctx context.Context, id int) (*User, error)

	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// UpdatePassword replaces the stored hash and refreshes updated_at.
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

// TokenRepository persists single-use password reset tokens. It stands in
// for the original deployment's external key/value token store.
type TokenRepository interface {
	// Create stores a token for userID, valid until expiresAt.
	Create(ctx context.Context, token string, userID int, expiresAt time.Time) error

	// Consume atomically deletes an unexpired token and returns the user
	// it belongs to. Returns ErrTokenNotFound for unknown or expired
	// tokens.
	Consume(ctx context.Context, token string) (int, error)
}
