package posts

import "errors"

var (
	// ErrNotFound indicates the requested post doesn't exist (or is owned
	// by someone else, for creator-only operations)
	ErrNotFound = errors.New("post not found")

	// ErrInvalidCursor indicates the pagination cursor is not a decimal
	// millisecond timestamp
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrTitleRequired indicates a post was submitted without a title
	ErrTitleRequired = errors.New("title is required")

	// ErrUnauthenticated indicates no identity was supplied for an
	// operation that requires one
	ErrUnauthenticated = errors.New("authentication required")
)
