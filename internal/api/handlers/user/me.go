package user

import (
	"encoding/json"
	"log"
	"net/http"

	"Postline/internal/api/middleware"
	"Postline/internal/core/users"
)

// MeHandler returns the authenticated user's own profile
type MeHandler struct {
	service users.Service
}

// NewMeHandler creates a new profile handler
func NewMeHandler(service users.Service) *MeHandler {
	return &MeHandler{service: service}
}

// HandleMe returns the viewer's profile
// GET /users/me
func (h *MeHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetUser(r)

	view, err := h.service.Me(r.Context(), viewer.ID)
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
