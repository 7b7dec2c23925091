package post

import (
	"errors"
	"log"
	"net/http"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/posts"
)

// handleServiceError converts service errors to appropriate HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrUnauthenticated):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case errors.Is(err, posts.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case errors.Is(err, posts.ErrInvalidCursor):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid cursor")
	case errors.Is(err, posts.ErrTitleRequired):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "title is required")
	default:
		log.Printf("Post handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
