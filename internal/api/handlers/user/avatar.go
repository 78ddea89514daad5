package user

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"Postline/internal/api/middleware"
	"Postline/internal/core/users"
)

// maxUploadBytes bounds multipart parsing for avatar uploads (10MB)
const maxUploadBytes = 10 << 20

// AvatarHandler handles avatar uploads
type AvatarHandler struct {
	service users.Service
}

// NewAvatarHandler creates a new avatar handler
func NewAvatarHandler(service users.Service) *AvatarHandler {
	return &AvatarHandler{service: service}
}

// HandleUpdateAvatar stores an uploaded avatar image and returns the
// refreshed profile
// PUT /users/me/avatar
//
// Multipart form field: "file"
func (h *AvatarHandler) HandleUpdateAvatar(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetUser(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", "Failed to read uploaded file")
		return
	}

	view, err := h.service.UpdateAvatar(r.Context(), viewer, data, header.Filename)
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
