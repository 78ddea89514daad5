package routes

import (
	"github.com/go-chi/chi/v5"

	commentHandlers "Postline/internal/api/handlers/comment"
	"Postline/internal/api/middleware"
	"Postline/internal/core/comments"
)

// RegisterCommentRoutes registers comment endpoints
func RegisterCommentRoutes(r chi.Router, service comments.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := commentHandlers.NewCreateHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/posts/{postID}/comments", createHandler.HandleCreate)
}
