package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Postline/internal/api/middleware"
	"Postline/internal/core/posts"
)

// DeleteHandler handles post deletion
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new post deletion handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete removes the caller's own post; comments, likes and media
// records go with it
// DELETE /posts/{postID}
//
// Response: { "status": "ok" }
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetUser(r)

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")
		return
	}

	if err := h.service.Delete(r.Context(), viewer.ID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
