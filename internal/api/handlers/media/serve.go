package media

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	coremedia "Postline/internal/core/media"
)

// ServeHandler serves uploaded files by filename
type ServeHandler struct {
	store *coremedia.Store
}

// NewServeHandler creates a new media serving handler
func NewServeHandler(store *coremedia.Store) *ServeHandler {
	return &ServeHandler{store: store}
}

// HandleServe streams a stored upload. Filenames that would escape the
// upload root resolve as not found.
// GET /media/{filename}
func (h *ServeHandler) HandleServe(w http.ResponseWriter, r *http.Request) {
	path, err := h.store.Resolve(chi.URLParam(r, "filename"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		if encErr := json.NewEncoder(w).Encode(map[string]string{
			"error":   "NotFound",
			"message": "File not found",
		}); encErr != nil {
			log.Printf("Failed to encode error response: %v", encErr)
		}
		return
	}

	http.ServeFile(w, r, path)
}
