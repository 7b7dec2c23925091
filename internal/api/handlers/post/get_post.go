package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/posts"
)

// GetPostHandler serves a single post
type GetPostHandler struct {
	service posts.Service
}

// NewGetPostHandler creates a new get post handler
func NewGetPostHandler(service posts.Service) *GetPostHandler {
	return &GetPostHandler{service: service}
}

// HandleGetPost returns one post with its creator and the viewer's vote
// GET /api/posts/{id}
func (h *GetPostHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	view, err := h.service.Get(r.Context(), id, middleware.UserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}
