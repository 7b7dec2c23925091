package user

import (
	"log"
	"net/http"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
)

// LogoutHandler tears down the caller's session
type LogoutHandler struct {
	sessions *middleware.SessionAuth
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(sessions *middleware.SessionAuth) *LogoutHandler {
	return &LogoutHandler{sessions: sessions}
}

// HandleLogout expires the session cookie. Always reports success; logging
// out without a session is a no-op.
// POST /api/users/logout
func (h *LogoutHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
