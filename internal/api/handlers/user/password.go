package user

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/users"
)

// PasswordHandler handles the forgot/reset password flow
type PasswordHandler struct {
	service  users.Service
	sessions *middleware.SessionAuth
}

// NewPasswordHandler creates a new password handler
func NewPasswordHandler(service users.Service, sessions *middleware.SessionAuth) *PasswordHandler {
	return &PasswordHandler{
		service:  service,
		sessions: sessions,
	}
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// HandleForgotPassword issues a reset token and mails a reset link.
// Always answers success so the endpoint can't probe registered emails.
// POST /api/users/forgot-password
//
// Request body: { "email": "..." }
func (h *PasswordHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		// Still report success; the failure is logged server-side.
		log.Printf("Password reset request failed: %v", err)
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// HandleResetPassword consumes an emailed token, stores the new password,
// and signs the user in.
// POST /api/users/reset-password
//
// Request body: { "token": "...", "newPassword": "..." }
func (h *PasswordHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req users.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.ResetPassword(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		log.Printf("Failed to establish session after password reset: %v", err)
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
