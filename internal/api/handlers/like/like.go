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

// LikeHandler handles liking a post
type LikeHandler struct {
	service likes.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service likes.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

// HandleLike records a like. Liking an already-liked post is an error,
// not a no-op.
// POST /posts/{postID}/like
//
// Response: { "status": "ok" }
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetUser(r)

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")
		return
	}

	if err := h.service.Like(r.Context(), viewer.ID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
