package routes

import (
	"github.com/go-chi/chi/v5"

	postHandlers "Postline/internal/api/handlers/post"
	"Postline/internal/api/middleware"
	"Postline/internal/core/comments"
	"Postline/internal/core/posts"
)

// RegisterPostRoutes registers the post lifecycle and feed endpoints.
// Mutations require a session; feed and detail tolerate anonymous viewers.
func RegisterPostRoutes(r chi.Router, postService posts.Service, commentService comments.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := postHandlers.NewCreateHandler(postService)
	updateHandler := postHandlers.NewUpdateHandler(postService)
	deleteHandler := postHandlers.NewDeleteHandler(postService)
	getHandler := postHandlers.NewGetHandler(postService, commentService)
	feedHandler := postHandlers.NewFeedHandler(postService)

	r.With(authMiddleware.RequireAuth).Post("/posts", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/posts/{postID}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{postID}", deleteHandler.HandleDelete)

	r.With(authMiddleware.OptionalAuth).Get("/posts/{postID}", getHandler.HandleGet)
	r.With(authMiddleware.OptionalAuth).Get("/feed", feedHandler.HandleFeed)
}
