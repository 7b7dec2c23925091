package user

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/users"
)

// RegisterHandler handles account creation
type RegisterHandler struct {
	service  users.Service
	sessions *middleware.SessionAuth
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(service users.Service, sessions *middleware.SessionAuth) *RegisterHandler {
	return &RegisterHandler{
		service:  service,
		sessions: sessions,
	}
}

// HandleRegister creates an account and signs the new user in
// POST /api/users/register
//
// Request body: { "username": "...", "email": "...", "password": "..." }
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		log.Printf("Failed to establish session after register: %v", err)
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"user": user,
	})
}
