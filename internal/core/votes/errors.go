package votes

import "errors"

var (
	// ErrVoteNotFound indicates the user has no ledger entry for the post
	ErrVoteNotFound = errors.New("vote not found")

	// ErrPostNotFound indicates the post being voted on doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrVoteAlreadyExists indicates a concurrent insert won the race for
	// the (user, post) pair
	ErrVoteAlreadyExists = errors.New("vote already exists")

	// ErrUnauthenticated indicates no identity was supplied for an
	// operation that requires one
	ErrUnauthenticated = errors.New("authentication required")
)
