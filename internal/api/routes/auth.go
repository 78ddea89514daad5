package routes

import (
	"github.com/go-chi/chi/v5"

	authHandlers "Postline/internal/api/handlers/auth"
	"Postline/internal/core/auth"
)

// RegisterAuthRoutes registers the registration and login endpoints.
// Both are anonymous: they are how a client obtains its bearer token.
func RegisterAuthRoutes(r chi.Router, service auth.Service) {
	registerHandler := authHandlers.NewRegisterHandler(service)
	loginHandler := authHandlers.NewLoginHandler(service)

	r.Post("/auth/register", registerHandler.HandleRegister)
	r.Post("/auth/login", loginHandler.HandleLogin)
}
