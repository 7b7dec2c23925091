package posts

import (
	"context"
	"time"
)

// Service defines the business logic interface for posts
type Service interface {
	// List returns one page of the reverse-chronological feed.
	// The limit is clamped to 50; the cursor, when present, is the decimal
	// millisecond timestamp of the last post on the previous page.
	List(ctx context.Context, req ListRequest) (*Feed, error)

	// Get retrieves a single post with its creator and the viewer's vote.
	Get(ctx context.Context, id, viewerID int) (*PostView, error)

	// Create stores a new post owned by userID.
	Create(ctx context.Context, userID int, req CreatePostRequest) (*Post, error)

	// Update edits a post's title/text. Only the creator may edit; a post
	// owned by someone else reads as not found.
	Update(ctx context.Context, userID, id int, req UpdatePostRequest) (*Post, error)

	// Delete removes a post and its votes. Only the creator may delete.
	Delete(ctx context.Context, userID, id int) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// ListNewest returns up to limit posts ordered by created_at DESC with
	// id DESC as the tie-break, optionally restricted to posts created
	// strictly before the given time. Each row is joined with its creator
	// and with viewerID's vote when viewerID is non-zero.
	ListNewest(ctx context.Context, limit int, before *time.Time, viewerID int) ([]*PostView, error)

	// GetView retrieves one post with the same joins as ListNewest.
	// Returns ErrNotFound when the post doesn't exist.
	GetView(ctx context.Context, id, viewerID int) (*PostView, error)

	// Create inserts a post and fills in its generated fields.
	Create(ctx context.Context, post *Post) error

	// Update applies non-nil fields where the post exists and belongs to
	// creatorID. Returns ErrNotFound otherwise.
	Update(ctx context.Context, id, creatorID int, req UpdatePostRequest) (*Post, error)

	// Delete removes the post and its ledger rows where it belongs to
	// creatorID. Returns ErrNotFound otherwise.
	Delete(ctx context.Context, id, creatorID int) error
}
