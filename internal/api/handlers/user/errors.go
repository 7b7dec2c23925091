package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/users"
)

// handleServiceError converts service errors to appropriate HTTP responses.
// Validation failures (bad input, duplicate username, wrong password) come
// back as per-field errors the frontend maps onto form inputs.
func handleServiceError(w http.ResponseWriter, err error) {
	if ve, ok := users.AsValidationError(err); ok {
		handlers.WriteFieldErrors(w, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	default:
		log.Printf("User handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
