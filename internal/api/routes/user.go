package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers/user"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/users"
)

// RegisterUserRoutes registers account and session endpoints.
func RegisterUserRoutes(r chi.Router, service users.Service, auth *middleware.SessionAuth) {
	registerHandler := user.NewRegisterHandler(service, auth)
	loginHandler := user.NewLoginHandler(service, auth)
	logoutHandler := user.NewLogoutHandler(auth)
	meHandler := user.NewMeHandler(service)
	passwordHandler := user.NewPasswordHandler(service, auth)

	r.Post("/api/users/register", registerHandler.HandleRegister)
	r.Post("/api/users/login", loginHandler.HandleLogin)
	r.Post("/api/users/logout", logoutHandler.HandleLogout)
	r.Get("/api/users/me", meHandler.HandleMe)
	r.Post("/api/users/forgot-password", passwordHandler.HandleForgotPassword)
	r.Post("/api/users/reset-password", passwordHandler.HandleResetPassword)
}
