package user

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/users"
)

// LoginHandler handles session establishment
type LoginHandler struct {
	service  users.Service
	sessions *middleware.SessionAuth
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service users.Service, sessions *middleware.SessionAuth) *LoginHandler {
	return &LoginHandler{
		service:  service,
		sessions: sessions,
	}
}

// HandleLogin authenticates by username or email and starts a session
// POST /api/users/login
//
// Request body: { "usernameOrEmail": "...", "password": "..." }
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req users.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		log.Printf("Failed to establish session after login: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to establish session")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
