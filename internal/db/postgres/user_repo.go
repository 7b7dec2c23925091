package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) error {
	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, user.Username, user.Email, user.Password).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return users.ErrUsernameTaken
		}
		if isUniqueViolation(err, "users_email_key") {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int) (*users.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByEmail retrieves a user by email
func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

// GetByUsername retrieves a user by username
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	return r.getBy(ctx, "username = $1", username)
}

func (r *postgresUserRepo) getBy(ctx context.Context, where string, arg interface{}) (*users.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, password, created_at, updated_at
		FROM users
		WHERE %s
	`, where)

	var user users.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.CreatedAt, &user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdatePassword replaces the stored hash for a user
func (r *postgresUserRepo) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`,
		id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check password update: %w", err)
	}
	if affected == 0 {
		return users.ErrUserNotFound
	}

	return nil
}
