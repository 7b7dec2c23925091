package vote

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/votes"
)

// mockVoteService implements votes.Service for testing
type mockVoteService struct {
	castFunc func(ctx context.Context, userID, postID, direction int) error

	gotUserID    int
	gotPostID    int
	gotDirection int
	called       bool
}

func (m *mockVoteService) CastVote(ctx context.Context, userID, postID, direction int) error {
	m.called = true
	m.gotUserID = userID
	m.gotPostID = postID
	m.gotDirection = direction
	if m.castFunc != nil {
		return m.castFunc(ctx, userID, postID, direction)
	}
	return nil
}

func newVoteRouter(service votes.Service) chi.Router {
	r := chi.NewRouter()
	handler := NewCastVoteHandler(service, nil)
	r.Post("/api/posts/{id}/vote", handler.HandleCastVote)
	return r
}

func castVoteRequestFor(postID interface{}, body string, userID int) *http.Request {
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/posts/%v/vote", postID), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
		req = req.WithContext(ctx)
	}
	return req
}

func TestCastVoteHandler_Success(t *testing.T) {
	service := &mockVoteService{}
	router := newVoteRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, castVoteRequestFor(17, `{"direction": -1}`, 42))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.True(t, service.called)
	assert.Equal(t, 42, service.gotUserID)
	assert.Equal(t, 17, service.gotPostID)
	assert.Equal(t, -1, service.gotDirection)
}

func TestCastVoteHandler_Unauthenticated(t *testing.T) {
	service := &mockVoteService{
		castFunc: func(ctx context.Context, userID, postID, direction int) error {
			return votes.ErrUnauthenticated
		},
	}
	router := newVoteRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, castVoteRequestFor(17, `{"direction": 1}`, 0))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AuthRequired")
}

func TestCastVoteHandler_PostNotFound(t *testing.T) {
	service := &mockVoteService{
		castFunc: func(ctx context.Context, userID, postID, direction int) error {
			return votes.ErrPostNotFound
		},
	}
	router := newVoteRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, castVoteRequestFor(999, `{"direction": 1}`, 42))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PostNotFound")
}

func TestCastVoteHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		postID interface{}
		body   string
	}{
		{"non-numeric post id", "abc", `{"direction": 1}`},
		{"zero post id", 0, `{"direction": 1}`},
		{"malformed body", 17, `{"direction":`},
		{"missing direction", 17, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockVoteService{}
			router := newVoteRouter(service)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, castVoteRequestFor(tt.postID, tt.body, 42))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, service.called, "service should not be reached")
		})
	}
}
