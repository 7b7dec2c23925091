package user

import (
	"net/http"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/users"
)

// MeHandler answers the "who am I" query
type MeHandler struct {
	service users.Service
}

// NewMeHandler creates a new me handler
func NewMeHandler(service users.Service) *MeHandler {
	return &MeHandler{service: service}
}

// HandleMe returns the authenticated user, or null for anonymous callers.
// The frontend uses the null case to render logged-out navigation, so an
// anonymous request is 200, not 401.
// GET /api/users/me
func (h *MeHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == 0 {
		handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"user": nil,
		})
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if err == users.ErrUserNotFound {
			// Session names a deleted account; treat as logged out.
			handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
				"user": nil,
			})
			return
		}
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
