package post

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/posts"
)

// UpdatePostHandler handles post edits
type UpdatePostHandler struct {
	service posts.Service
}

// NewUpdatePostHandler creates a new update post handler
func NewUpdatePostHandler(service posts.Service) *UpdatePostHandler {
	return &UpdatePostHandler{service: service}
}

// HandleUpdatePost edits a post's title or text. Only the creator may edit.
// PATCH /api/posts/{id}
//
// Request body: { "title": "...", "text": "..." } (both optional)
func (h *UpdatePostHandler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if req.Title == nil && req.Text == nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Nothing to update")
		return
	}

	updated, err := h.service.Update(r.Context(), middleware.UserID(r), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
