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

// UpdateHandler handles post edits
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new post update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate edits the caller's own post
// PUT /posts/{postID}
//
// Multipart form fields: "text" (required), "image" (optional file),
// "remove_image" ("true" to clear the image when no new one is supplied)
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetUser(r)

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", "Invalid multipart form")
		return
	}

	image, err := imageUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", "Failed to read uploaded image")
		return
	}

	removeImage, _ := strconv.ParseBool(r.FormValue("remove_image"))

	view, err := h.service.Update(r.Context(), viewer.ID, postID, posts.UpdatePostRequest{
		Text:        r.FormValue("text"),
		Image:       image,
		RemoveImage: removeImage,
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
