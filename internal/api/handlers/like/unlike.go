package like

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Postline/internal/api/middleware"
	"Postline/internal/core/likes"
)

// UnlikeHandler handles removing a like
type UnlikeHandler struct {
	service likes.Service
}

// NewUnlikeHandler creates a new unlike handler
func NewUnlikeHandler(service likes.Service) *UnlikeHandler {
	return &UnlikeHandler{service: service}
}

// HandleUnlike removes the viewer's like. Unliking a post that was never
// liked succeeds silently.
// DELETE /posts/{postID}/like
//
// Response: { "status": "ok" }
func (h *UnlikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetUser(r)

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")
		return
	}

	if err := h.service.Unlike(r.Context(), viewer.ID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
