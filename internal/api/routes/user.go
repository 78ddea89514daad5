package routes

import (
	"github.com/go-chi/chi/v5"

	userHandlers "Postline/internal/api/handlers/user"
	"Postline/internal/api/middleware"
	"Postline/internal/core/users"
)

// RegisterUserRoutes registers profile endpoints; all require a session
func RegisterUserRoutes(r chi.Router, service users.Service, authMiddleware *middleware.AuthMiddleware) {
	meHandler := userHandlers.NewMeHandler(service)
	avatarHandler := userHandlers.NewAvatarHandler(service)

	r.With(authMiddleware.RequireAuth).Get("/users/me", meHandler.HandleMe)
	r.With(authMiddleware.RequireAuth).Put("/users/me/avatar", avatarHandler.HandleUpdateAvatar)
}
