package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// postViewColumns is the select list shared by the feed and single-post
// queries: the post, its creator's public fields, and the viewer's vote.
const postViewColumns = `
	p.id, p.title, p.text, p.points, p.creator_id, p.created_at, p.updated_at,
	u.id, u.username, u.email, u.created_at, u.updated_at,
	v.value
`

// ListNewest fetches posts in reverse-chronological order with id as the
// deterministic tie-break for identical timestamps. The caller passes the
// over-fetched limit; the cursor filter is strictly created_at < before.
func (r *postgresPostRepo) ListNewest(ctx context.Context, limit int, before *time.Time, viewerID int) ([]*posts.PostView, error) {
	whereConditions := []string{}
	args := []interface{}{viewerID}
	paramIndex := 2

	if before != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("p.created_at < $%d", paramIndex))
		args = append(args, *before)
		paramIndex++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = "WHERE " + strings.Join(whereConditions, " AND ")
	}

	args = append(args, limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		INNER JOIN users u ON p.creator_id = u.id
		LEFT JOIN votes v ON v.post_id = p.id AND v.user_id = $1
		%s
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $%d
	`, postViewColumns, whereClause, paramIndex)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var views []*posts.PostView
	for rows.Next() {
		view, err := scanPostView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return views, nil
}

// GetView retrieves one post with the same creator and viewer-vote joins
// as the feed query.
func (r *postgresPostRepo) GetView(ctx context.Context, id, viewerID int) (*posts.PostView, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		INNER JOIN users u ON p.creator_id = u.id
		LEFT JOIN votes v ON v.post_id = p.id AND v.user_id = $1
		WHERE p.id = $2
	`, postViewColumns)

	row := r.db.QueryRowContext(ctx, query, viewerID, id)
	view, err := scanPostView(row)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return view, nil
}

// Create inserts a new post
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (title, text, creator_id)
		VALUES ($1, $2, $3)
		RETURNING id, points, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, post.Title, post.Text, post.CreatorID).
		Scan(&post.ID, &post.Points, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err, "posts_creator_id_fkey") {
			return fmt.Errorf("creator %d not found: %w", post.CreatorID, err)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// Update applies non-nil fields where the post belongs to creatorID
func (r *postgresPostRepo) Update(ctx context.Context, id, creatorID int, req posts.UpdatePostRequest) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET title = COALESCE($3, title),
		    text = COALESCE($4, text),
		    updated_at = NOW()
		WHERE id = $1 AND creator_id = $2
		RETURNING id, title, text, points, creator_id, created_at, updated_at
	`

	var title, text sql.NullString
	if req.Title != nil {
		title = sql.NullString{String: *req.Title, Valid: true}
	}
	if req.Text != nil {
		text = sql.NullString{String: *req.Text, Valid: true}
	}

	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id, creatorID, title, text).Scan(
		&post.ID, &post.Title, &post.Text, &post.Points,
		&post.CreatorID, &post.CreatedAt, &post.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return &post, nil
}

// Delete removes a post where it belongs to creatorID. The votes FK is ON
// DELETE CASCADE, so the ledger rows go with it.
func (r *postgresPostRepo) Delete(ctx context.Context, id, creatorID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM posts WHERE id = $1 AND creator_id = $2`, id, creatorID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPostView(s scanner) (*posts.PostView, error) {
	var (
		view    posts.PostView
		creator posts.CreatorView
		vote    sql.NullInt64
	)

	err := s.Scan(
		&view.ID, &view.Title, &view.Text, &view.Points,
		&view.CreatorID, &view.CreatedAt, &view.UpdatedAt,
		&creator.ID, &creator.Username, &creator.Email,
		&creator.CreatedAt, &creator.UpdatedAt,
		&vote,
	)
	if err != nil {
		return nil, err
	}

	view.Creator = &creator
	if vote.Valid {
		value := int(vote.Int64)
		view.VoteStatus = &value
	}

	return &view, nil
}
