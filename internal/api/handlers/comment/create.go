package comment

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Postline/internal/api/middleware"
	"Postline/internal/core/comments"
)

// CreateHandler handles comment creation
type CreateHandler struct {
	service comments.Service
}

// NewCreateHandler creates a new comment creation handler
func NewCreateHandler(service comments.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// CreateCommentInput is the request body for adding a comment
type CreateCommentInput struct {
	Text string `json:"text"`
}

// HandleCreate adds a comment to an existing post. Any authenticated user
// may comment, not just the post author.
// POST /posts/{postID}/comments
//
// Request body: { "text": "..." }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetUser(r)

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")
		return
	}

	var input CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", "Invalid request body")
		return
	}

	view, err := h.service.Add(r.Context(), viewer, postID, input.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
