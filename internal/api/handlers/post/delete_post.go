package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/posts"
)

// DeletePostHandler handles post deletion
type DeletePostHandler struct {
	service posts.Service
}

// NewDeletePostHandler creates a new delete post handler
func NewDeletePostHandler(service posts.Service) *DeletePostHandler {
	return &DeletePostHandler{service: service}
}

// HandleDeletePost removes a post and its votes. Only the creator may delete.
// DELETE /api/posts/{id}
func (h *DeletePostHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	if err := h.service.Delete(r.Context(), middleware.UserID(r), id); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
