package vote

import (
	"errors"
	"log"
	"net/http"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/votes"
)

// handleServiceError converts service errors to appropriate HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, votes.ErrUnauthenticated):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case errors.Is(err, votes.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case errors.Is(err, votes.ErrVoteAlreadyExists):
		// The service resolves insert races itself; this mapping is for any
		// future caller that surfaces the sentinel directly.
		handlers.WriteError(w, http.StatusConflict, "AlreadyExists", "Vote already exists")
	default:
		log.Printf("Vote handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to cast vote")
	}
}
