package post

import (
	"encoding/json"
	"net/http"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/posts"
)

// CreatePostHandler handles post creation
type CreatePostHandler struct {
	service posts.Service
}

// NewCreatePostHandler creates a new create post handler
func NewCreatePostHandler(service posts.Service) *CreatePostHandler {
	return &CreatePostHandler{service: service}
}

// HandleCreatePost creates a post owned by the authenticated user
// POST /api/posts
//
// Request body: { "title": "...", "text": "..." }
func (h *CreatePostHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
