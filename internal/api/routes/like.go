package routes

import (
	"github.com/go-chi/chi/v5"

	likeHandlers "Postline/internal/api/handlers/like"
	"Postline/internal/api/middleware"
	"Postline/internal/core/likes"
)

// RegisterLikeRoutes registers like endpoints
func RegisterLikeRoutes(r chi.Router, service likes.Service, authMiddleware *middleware.AuthMiddleware) {
	likeHandler := likeHandlers.NewLikeHandler(service)
	unlikeHandler := likeHandlers.NewUnlikeHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/posts/{postID}/like", likeHandler.HandleLike)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{postID}/like", unlikeHandler.HandleUnlike)
}
