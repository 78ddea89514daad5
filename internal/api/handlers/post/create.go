package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Postline/internal/api/middleware"
	"Postline/internal/core/posts"
)

// CreateHandler handles post creation
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new post creation handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a post and returns its hydrated view
// POST /posts
//
// Multipart form fields: "text" (required), "image" (optional file)
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetUser(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", "Invalid multipart form")
		return
	}

	image, err := imageUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", "Failed to read uploaded image")
		return
	}

	view, err := h.service.Create(r.Context(), viewer.ID, posts.CreatePostRequest{
		Text:  r.FormValue("text"),
		Image: image,
	})
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
