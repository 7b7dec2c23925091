package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/votes"
)

type postgresVoteRepo struct {
	db *sql.DB
}

// NewVoteRepository creates a new PostgreSQL vote repository
func NewVoteRepository(db *sql.DB) votes.Repository {
	return &postgresVoteRepo{db: db}
}

// GetByUserAndPost retrieves a user's vote on a post
func (r *postgresVoteRepo) GetByUserAndPost(ctx context.Context, userID, postID int) (*votes.Vote, error) {
	query := `
		SELECT user_id, post_id, value, created_at, updated_at
		FROM votes
		WHERE user_id = $1 AND post_id = $2
	`

	var vote votes.Vote
	err := r.db.QueryRowContext(ctx, query, userID, postID).Scan(
		&vote.UserID, &vote.PostID, &vote.Value, &vote.CreatedAt, &vote.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, votes.ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return &vote, nil
}

// CreateWithScore inserts a new ledger row and applies delta to the post's
// points. Both statements run inside one transaction so a partial write can
// never leave the cached score out of sync with the ledger.
func (r *postgresVoteRepo) CreateWithScore(ctx context.Context, vote *votes.Vote, delta int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin vote transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insert := `
		INSERT INTO votes (user_id, post_id, value)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, insert, vote.UserID, vote.PostID, vote.Value).
		Scan(&vote.CreatedAt, &vote.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "votes_pkey") {
			return votes.ErrVoteAlreadyExists
		}
		if isForeignKeyViolation(err, "votes_post_id_fkey") {
			return votes.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	if err := applyScoreDelta(ctx, tx, vote.PostID, delta); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote transaction: %w", err)
	}
	return nil
}

// UpdateWithScore flips an existing ledger row to vote.Value and applies
// delta to the post's points, atomically.
//
// The flip is a compare-and-swap: the row is only touched when its current
// value differs from vote.Value, and the score delta is only applied when
// the flip landed. Without the guard, two concurrent flips computed from
// the same stale read would both apply their delta under READ COMMITTED
// (the second blocks on the row lock, then re-sets the same value), and
// the cached score would drift from the ledger sum for good.
func (r *postgresVoteRepo) UpdateWithScore(ctx context.Context, vote *votes.Vote, delta int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin vote transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	update := `
		UPDATE votes
		SET value = $3, updated_at = NOW()
		WHERE user_id = $1 AND post_id = $2 AND value <> $3
		RETURNING created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, update, vote.UserID, vote.PostID, vote.Value).
		Scan(&vote.CreatedAt, &vote.UpdatedAt)
	if err == sql.ErrNoRows {
		// The row already holds vote.Value (a concurrent caller got there
		// first) or is gone entirely. Either way the intent is satisfied
		// and the score must not move.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to update vote: %w", err)
	}

	if err := applyScoreDelta(ctx, tx, vote.PostID, delta); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote transaction: %w", err)
	}
	return nil
}

// applyScoreDelta moves the post's cached score by delta. The increment is
// a single SQL expression, so concurrent votes on the same post cannot
// lose updates to a read-modify-write race.
func applyScoreDelta(ctx context.Context, tx *sql.Tx, postID, delta int) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE posts SET points = points + $2 WHERE id = $1`, postID, delta)
	if err != nil {
		return fmt.Errorf("failed to update post score: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check score update: %w", err)
	}
	if affected == 0 {
		return votes.ErrPostNotFound
	}
	return nil
}
