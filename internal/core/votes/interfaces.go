package votes

import "context"

// Service defines the business logic interface for votes
type Service interface {
	// CastVote applies a user's vote intent to a post, keeping the ledger
	// and the post's aggregate score consistent.
	// Outcomes:
	//   - No existing vote -> insert ledger row, points += value
	//   - Existing vote with a different value -> flip row, points += 2*value
	//   - Existing vote with the same value -> no-op (idempotent)
	CastVote(ctx context.Context, userID, postID, direction int) error
}

// Repository defines the data access interface for the vote ledger.
// The *WithScore methods apply the ledger write and the score adjustment on
// the posts table as a single transaction: either both persist or neither
// does. A partial application would permanently break the invariant that a
// post's points equal the sum of its ledger values.
type Repository interface {
	// GetByUserAndPost retrieves a user's vote on a post.
	// Returns ErrVoteNotFound when the user has not voted.
	GetByUserAndPost(ctx context.Context, userID, postID int) (*Vote, error)

	// CreateWithScore inserts a new ledger row and adds delta to the
	// post's points in one transaction.
	CreateWithScore(ctx context.Context, vote *Vote, delta int) error

	// UpdateWithScore sets an existing ledger row to vote.Value and adds
	// delta to the post's points in one transaction. The write is a
	// compare-and-swap: when the row already holds vote.Value (because a
	// concurrent caller flipped it first) nothing is written, no delta is
	// applied, and nil is returned. Callers may therefore compute delta
	// from a read taken before the transaction without risking a double
	// application.
	UpdateWithScore(ctx context.Context, vote *Vote, delta int) error
}
