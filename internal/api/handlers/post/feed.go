package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Postline/internal/api/middleware"
	"Postline/internal/core/posts"
)

// FeedHandler handles the global feed listing
type FeedHandler struct {
	service posts.Service
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(service posts.Service) *FeedHandler {
	return &FeedHandler{service: service}
}

// HandleFeed lists posts newest-first. limit defaults to 20 and is clamped
// to [1,50]; offset is clamped to >= 0. Authenticated viewers get
// liked_by_me computed per post.
// GET /feed?limit=20&offset=0
func (h *FeedHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	limit := posts.DefaultFeedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			offset = parsed
		}
	}

	views, err := h.service.ListFeed(r.Context(), posts.FeedRequest{
		Limit:    limit,
		Offset:   offset,
		ViewerID: middleware.GetViewerID(r),
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(views); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
