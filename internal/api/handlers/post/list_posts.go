package post

import (
	"net/http"
	"strconv"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/posts"
)

// ListPostsHandler serves the paginated feed
type ListPostsHandler struct {
	service posts.Service
}

// NewListPostsHandler creates a new list posts handler
func NewListPostsHandler(service posts.Service) *ListPostsHandler {
	return &ListPostsHandler{service: service}
}

// HandleListPosts returns one page of the feed, newest first
// GET /api/posts?limit=10&cursor=1693526400000
func (h *ListPostsHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	req := posts.ListRequest{
		Limit:    10,
		ViewerID: middleware.UserID(r),
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "limit must be an integer")
			return
		}
		req.Limit = limit
	}

	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		req.Cursor = &cursor
	}

	feed, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"posts":      feed.Posts,
		"hasMore":    feed.HasMore,
		"nextCursor": feed.NextCursor(),
	})
}
