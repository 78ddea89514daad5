package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mediaHandlers "Postline/internal/api/handlers/media"
	"Postline/internal/core/media"
)

// RegisterMediaRoutes registers the media fetch endpoint and the static
// /uploads mount over the upload root. Both are anonymous.
func RegisterMediaRoutes(r chi.Router, store *media.Store) {
	serveHandler := mediaHandlers.NewServeHandler(store)

	r.Get("/media/{filename}", serveHandler.HandleServe)

	// Uploaded images reference themselves as /uploads/<name>
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(store.Root())))
	r.Handle("/uploads/*", uploads)
}
