package votes

import "time"

// Vote is a single ledger entry: one row per (user, post) pair.
// Absence of a row means the user has not voted; Value is always +1 or -1,
// there is no stored "no vote" state.
type Vote struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	UserID    int       `json:"userId" db:"user_id"`
	PostID    int       `json:"postId" db:"post_id"`
	Value     int       `json:"value" db:"value"`
}

// Upvote and Downvote are the only values a ledger entry may hold.
const (
	Upvote   = 1
	Downvote = -1
)
