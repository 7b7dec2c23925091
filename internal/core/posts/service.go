package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// maxPageSize is the hard cap on feed page size regardless of what the
// caller requests.
const maxPageSize = 50

type postService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new post service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:   repo,
		logger: logger,
	}
}

// List returns one page of the feed. It requests one row beyond the page
// size purely to learn whether a next page exists, then trims it off.
func (s *postService) List(ctx context.Context, req ListRequest) (*Feed, error) {
	limit := req.Limit
	if limit < 0 {
		limit = 0
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	before, err := parseCursor(req.Cursor)
	if err != nil {
		return nil, err
	}

	views, err := s.repo.ListNewest(ctx, limit+1, before, req.ViewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	hasMore := len(views) == limit+1
	if hasMore {
		views = views[:limit]
	}
	if views == nil {
		views = []*PostView{}
	}

	return &Feed{Posts: views, HasMore: hasMore}, nil
}

// Get retrieves a single post with creator and viewer-vote enrichment.
func (s *postService) Get(ctx context.Context, id, viewerID int) (*PostView, error) {
	return s.repo.GetView(ctx, id, viewerID)
}

// Create stores a new post owned by userID.
func (s *postService) Create(ctx context.Context, userID int, req CreatePostRequest) (*Post, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	post := &Post{
		Title:     strings.TrimSpace(req.Title),
		Text:      req.Text,
		CreatorID: userID,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// Update edits a post. The repository scopes the write to the creator, so
// editing someone else's post reads as not found.
func (s *postService) Update(ctx context.Context, userID, id int, req UpdatePostRequest) (*Post, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrTitleRequired
	}

	return s.repo.Update(ctx, id, userID, req)
}

// Delete removes a post and its votes.
func (s *postService) Delete(ctx context.Context, userID, id int) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	return s.repo.Delete(ctx, id, userID)
}

// parseCursor decodes the feed cursor: the decimal string of a millisecond
// Unix timestamp marking the end of the previous page. Nil or empty means
// "first page".
func parseCursor(cursor *string) (*time.Time, error) {
	if cursor == nil || *cursor == "" {
		return nil, nil
	}

	millis, err := strconv.ParseInt(*cursor, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: expected a millisecond timestamp", ErrInvalidCursor)
	}

	t := time.UnixMilli(millis).UTC()
	return &t, nil
}
