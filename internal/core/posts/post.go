package posts

import (
	"strconv"
	"time"
)

// Post is a stored post. Points is the cached aggregate score and is only
// ever mutated through the voting service.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Title     string    `json:"title" db:"title"`
	Text      string    `json:"text" db:"text"`
	ID        int       `json:"id" db:"id"`
	Points    int       `json:"points" db:"points"`
	CreatorID int       `json:"creatorId" db:"creator_id"`
}

// CreatorView is the public slice of a user embedded in post responses.
// The password hash never crosses this boundary.
type CreatorView struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ID        int       `json:"id"`
}

// PostView is a post joined with its creator and, when the caller is
// authenticated, the caller's own vote on it (+1, -1, or null).
type PostView struct {
	Post
	Creator    *CreatorView `json:"creator,omitempty"`
	VoteStatus *int         `json:"voteStatus,omitempty"`
}

// Feed is one page of the reverse-chronological post feed. HasMore reports
// whether another page exists beyond this one.
type Feed struct {
	Posts   []*PostView `json:"posts"`
	HasMore bool        `json:"hasMore"`
}

// NextCursor returns the cursor for the page after this one: the
// millisecond timestamp of the last post's creation time, as a decimal
// string. Nil when the page is empty.
func (f *Feed) NextCursor() *string {
	if len(f.Posts) == 0 {
		return nil
	}
	last := f.Posts[len(f.Posts)-1]
	cursor := strconv.FormatInt(last.CreatedAt.UnixMilli(), 10)
	return &cursor
}

// ListRequest carries the feed query arguments. ViewerID is zero for
// anonymous callers.
type ListRequest struct {
	Cursor   *string
	Limit    int
	ViewerID int
}

// CreatePostRequest is the input for creating a post.
type CreatePostRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// UpdatePostRequest is the input for editing a post. Nil fields are left
// unchanged.
type UpdatePostRequest struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
}
