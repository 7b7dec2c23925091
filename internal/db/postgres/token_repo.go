package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/users"
)

type postgresTokenRepo struct {
	db *sql.DB
}

// NewTokenRepository creates a new PostgreSQL password reset token repository
func NewTokenRepository(db *sql.DB) users.TokenRepository {
	return &postgresTokenRepo{db: db}
}

// Create stores a reset token. Expired rows are purged opportunistically on
// the way in, so the table never needs a separate sweeper.
func (r *postgresTokenRepo) Create(ctx context.Context, token string, userID int, expiresAt time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE expires_at <= NOW()`); err != nil {
		return fmt.Errorf("failed to purge expired tokens: %w", err)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO password_reset_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, userID, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	return nil
}

// Consume deletes an unexpired token and returns its user in one
// statement, so a token can never be redeemed twice.
func (r *postgresTokenRepo) Consume(ctx context.Context, token string) (int, error) {
	var userID int
	err := r.db.QueryRowContext(ctx, `
		DELETE FROM password_reset_tokens
		WHERE token = $1 AND expires_at > NOW()
		RETURNING user_id
	`, token).Scan(&userID)

	if err == sql.ErrNoRows {
		return 0, users.ErrTokenNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to consume reset token: %w", err)
	}

	return userID, nil
}
