package votes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// voteService implements the Service interface for vote operations
type voteService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new vote service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &voteService{
		repo:   repo,
		logger: logger,
	}
}

// CastVote applies a directional vote for userID on postID.
// Repeated identical votes are a no-op; a changed vote swings the post's
// points by twice the new value so the aggregate moves from old to new.
func (s *voteService) CastVote(ctx context.Context, userID, postID, direction int) error {
	if userID == 0 {
		return ErrUnauthenticated
	}

	// Anything other than an explicit downvote counts as an upvote.
	// Matches the permissive input handling the API has always had.
	value := Upvote
	if direction == Downvote {
		value = Downvote
	}

	existing, err := s.repo.GetByUserAndPost(ctx, userID, postID)
	if err != nil && !errors.Is(err, ErrVoteNotFound) {
		return fmt.Errorf("failed to look up existing vote: %w", err)
	}

	switch {
	case existing == nil:
		// First vote: one new ledger row, score moves by the vote value.
		vote := &Vote{UserID: userID, PostID: postID, Value: value}
		if err := s.repo.CreateWithScore(ctx, vote, value); err != nil {
			if errors.Is(err, ErrVoteAlreadyExists) {
				// Lost a first-vote race: a concurrent call inserted the
				// row after our lookup. Fall through to the flip path; its
				// compare-and-swap makes this a no-op when the winner cast
				// the same direction.
				if err := s.repo.UpdateWithScore(ctx, vote, 2*value); err != nil {
					return fmt.Errorf("failed to change vote: %w", err)
				}
				break
			}
			return fmt.Errorf("failed to record vote: %w", err)
		}

	case existing.Value != value:
		// Vote change: the aggregate swings from the old value to the new
		// one, e.g. -1 -> +1 moves the score by +2.
		vote := &Vote{UserID: userID, PostID: postID, Value: value}
		if err := s.repo.UpdateWithScore(ctx, vote, 2*value); err != nil {
			return fmt.Errorf("failed to change vote: %w", err)
		}

	default:
		// Re-casting the same direction changes neither the ledger nor the
		// score.
		return nil
	}

	s.logger.Debug("vote recorded",
		"user_id", userID,
		"post_id", postID,
		"value", value)

	return nil
}
