package votes

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVoteRepository struct {
	mock.Mock
}

func (m *mockVoteRepository) GetByUserAndPost(ctx context.Context, userID, postID int) (*Vote, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Vote), args.Error(1)
}

func (m *mockVoteRepository) CreateWithScore(ctx context.Context, vote *Vote, delta int) error {
	args := m.Called(ctx, vote, delta)
	return args.Error(0)
}

func (m *mockVoteRepository) UpdateWithScore(ctx context.Context, vote *Vote, delta int) error {
	args := m.Called(ctx, vote, delta)
	return args.Error(0)
}

func TestCastVote_Unauthenticated(t *testing.T) {
	repo := new(mockVoteRepository)
	service := NewService(repo, nil)

	err := service.CastVote(context.Background(), 0, 42, Upvote)

	assert.ErrorIs(t, err, ErrUnauthenticated)
	repo.AssertNotCalled(t, "GetByUserAndPost")
	repo.AssertNotCalled(t, "CreateWithScore")
	repo.AssertNotCalled(t, "UpdateWithScore")
}

func TestCastVote_FirstVote(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		wantValue int
	}{
		{"upvote inserts +1 and moves score by +1", 1, 1},
		{"downvote inserts -1 and moves score by -1", -1, -1},
		// The observed normalization: anything that isn't exactly -1 is an
		// upvote, including zero and out-of-range values.
		{"zero direction is treated as an upvote", 0, 1},
		{"out-of-range direction is treated as an upvote", 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockVoteRepository)
			repo.On("GetByUserAndPost", mock.Anything, 1, 42).Return(nil, ErrVoteNotFound)
			repo.On("CreateWithScore", mock.Anything,
				&Vote{UserID: 1, PostID: 42, Value: tt.wantValue}, tt.wantValue).Return(nil)

			service := NewService(repo, nil)
			err := service.CastVote(context.Background(), 1, 42, tt.direction)

			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestCastVote_Swing(t *testing.T) {
	tests := []struct {
		name      string
		existing  int
		direction int
		wantDelta int
	}{
		{"down to up swings score by +2", -1, 1, 2},
		{"up to down swings score by -2", 1, -1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockVoteRepository)
			repo.On("GetByUserAndPost", mock.Anything, 1, 42).
				Return(&Vote{UserID: 1, PostID: 42, Value: tt.existing}, nil)
			repo.On("UpdateWithScore", mock.Anything,
				&Vote{UserID: 1, PostID: 42, Value: tt.direction}, tt.wantDelta).Return(nil)

			service := NewService(repo, nil)
			err := service.CastVote(context.Background(), 1, 42, tt.direction)

			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestCastVote_SameDirectionIsIdempotent(t *testing.T) {
	repo := new(mockVoteRepository)
	repo.On("GetByUserAndPost", mock.Anything, 1, 42).
		Return(&Vote{UserID: 1, PostID: 42, Value: 1}, nil)

	service := NewService(repo, nil)

	// Casting the same direction twice produces no writes at all.
	require.NoError(t, service.CastVote(context.Background(), 1, 42, 1))
	require.NoError(t, service.CastVote(context.Background(), 1, 42, 1))

	repo.AssertNotCalled(t, "CreateWithScore")
	repo.AssertNotCalled(t, "UpdateWithScore")
}

func TestCastVote_RepositoryErrorsPropagate(t *testing.T) {
	storeDown := errors.New("connection refused")

	t.Run("lookup failure", func(t *testing.T) {
		repo := new(mockVoteRepository)
		repo.On("GetByUserAndPost", mock.Anything, 1, 42).Return(nil, storeDown)

		service := NewService(repo, nil)
		err := service.CastVote(context.Background(), 1, 42, 1)

		assert.ErrorIs(t, err, storeDown)
	})

	t.Run("write failure", func(t *testing.T) {
		repo := new(mockVoteRepository)
		repo.On("GetByUserAndPost", mock.Anything, 1, 42).Return(nil, ErrVoteNotFound)
		repo.On("CreateWithScore", mock.Anything, mock.Anything, 1).Return(storeDown)

		service := NewService(repo, nil)
		err := service.CastVote(context.Background(), 1, 42, 1)

		assert.ErrorIs(t, err, storeDown)
	})

	t.Run("missing post", func(t *testing.T) {
		repo := new(mockVoteRepository)
		repo.On("GetByUserAndPost", mock.Anything, 1, 99).Return(nil, ErrVoteNotFound)
		repo.On("CreateWithScore", mock.Anything, mock.Anything, 1).Return(ErrPostNotFound)

		service := NewService(repo, nil)
		err := service.CastVote(context.Background(), 1, 99, 1)

		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

// fakeLedger is an in-memory Repository that mirrors the SQL semantics:
// the ledger write and the score adjustment land together or not at all.
type fakeLedger struct {
	mu     sync.Mutex
	votes  map[[2]int]*Vote // keyed by (userID, postID)
	points map[int]int      // postID -> aggregate score
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		votes:  make(map[[2]int]*Vote),
		points: make(map[int]int),
	}
}

func (f *fakeLedger) GetByUserAndPost(_ context.Context, userID, postID int) (*Vote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.votes[[2]int{userID, postID}]
	if !ok {
		return nil, ErrVoteNotFound
	}
	copied := *v
	return &copied, nil
}

func (f *fakeLedger) CreateWithScore(_ context.Context, vote *Vote, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]int{vote.UserID, vote.PostID}
	if _, ok := f.votes[key]; ok {
		return ErrVoteAlreadyExists
	}
	copied := *vote
	f.votes[key] = &copied
	f.points[vote.PostID] += delta
	return nil
}

func (f *fakeLedger) UpdateWithScore(_ context.Context, vote *Vote, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]int{vote.UserID, vote.PostID}
	existing, ok := f.votes[key]
	if !ok || existing.Value == vote.Value {
		// Compare-and-swap semantics: a row that is missing or already
		// holds the target value absorbs the flip without moving the score.
		return nil
	}
	existing.Value = vote.Value
	f.points[vote.PostID] += delta
	return nil
}

func (f *fakeLedger) sumLedger(postID int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	sum := 0
	for key, v := range f.votes {
		if key[1] == postID {
			sum += v.Value
		}
	}
	return sum
}

// TestCastVote_AggregateInvariant drives many users through arbitrary vote
// sequences on one post and checks that the cached score always equals the
// sum of the ledger values.
func TestCastVote_AggregateInvariant(t *testing.T) {
	ledger := newFakeLedger()
	service := NewService(ledger, nil)
	ctx := context.Background()

	const postID = 7
	sequence := []struct {
		userID    int
		direction int
	}{
		{1, 1}, {2, -1}, {3, 1}, {1, 1}, // user 1 repeats: no-op
		{2, 1},  // user 2 swings -1 -> +1
		{4, -1}, {5, -1}, {3, -1}, // user 3 swings +1 -> -1
		{5, -1}, // repeat: no-op
		{4, 1},  // swing
		{1, -1}, // swing
	}

	for i, step := range sequence {
		require.NoError(t, service.CastVote(ctx, step.userID, postID, step.direction),
			"step %d", i)
		assert.Equal(t, ledger.sumLedger(postID), ledger.points[postID],
			"invariant broken after step %d", i)
	}

	// Final state: user1=-1, user2=+1, user3=-1, user4=+1, user5=-1
	assert.Equal(t, -1, ledger.points[postID])
	assert.Equal(t, ledger.sumLedger(postID), ledger.points[postID])
}

// staleReadLedger wraps a fakeLedger but keeps answering lookups with a
// snapshot taken at construction, simulating two callers that both read the
// vote row before either one's write lands.
type staleReadLedger struct {
	*fakeLedger
	stale *Vote
	err   error
}

func (s *staleReadLedger) GetByUserAndPost(context.Context, int, int) (*Vote, error) {
	if s.err != nil {
		return nil, s.err
	}
	copied := *s.stale
	return &copied, nil
}

func TestCastVote_ConcurrentFlipsFromStaleRead(t *testing.T) {
	ledger := newFakeLedger()
	ctx := context.Background()
	const postID = 7

	// User 1 has an established downvote.
	seed := NewService(ledger, nil)
	require.NoError(t, seed.CastVote(ctx, 1, postID, -1))
	require.Equal(t, -1, ledger.points[postID])

	// Both flip attempts observed the old -1; the winner swings the score
	// by +2, the loser re-sets the same value and must not swing it again.
	stale := &staleReadLedger{
		fakeLedger: ledger,
		stale:      &Vote{UserID: 1, PostID: postID, Value: -1},
	}
	service := NewService(stale, nil)

	require.NoError(t, service.CastVote(ctx, 1, postID, 1))
	require.NoError(t, service.CastVote(ctx, 1, postID, 1))

	assert.Equal(t, 1, ledger.points[postID])
	assert.Equal(t, ledger.sumLedger(postID), ledger.points[postID],
		"score must equal the ledger sum after racing flips")
}

func TestCastVote_LostFirstVoteRace(t *testing.T) {
	ctx := context.Background()
	const postID = 7

	t.Run("winner cast the same direction", func(t *testing.T) {
		ledger := newFakeLedger()
		require.NoError(t, NewService(ledger, nil).CastVote(ctx, 1, postID, 1))

		// The loser looked up before the winner's insert, so it sees no
		// vote, tries to insert, and collides.
		stale := &staleReadLedger{fakeLedger: ledger, err: ErrVoteNotFound}
		require.NoError(t, NewService(stale, nil).CastVote(ctx, 1, postID, 1))

		assert.Equal(t, 1, ledger.points[postID])
		assert.Equal(t, ledger.sumLedger(postID), ledger.points[postID])
	})

	t.Run("winner cast the opposite direction", func(t *testing.T) {
		ledger := newFakeLedger()
		require.NoError(t, NewService(ledger, nil).CastVote(ctx, 1, postID, -1))

		stale := &staleReadLedger{fakeLedger: ledger, err: ErrVoteNotFound}
		require.NoError(t, NewService(stale, nil).CastVote(ctx, 1, postID, 1))

		assert.Equal(t, 1, ledger.points[postID])
		assert.Equal(t, ledger.sumLedger(postID), ledger.points[postID])
	})
}
