package auth

import (
	"encoding/json"
	"log"
	"net/http"

	coreauth "Postline/internal/core/auth"
)

// RegisterHandler handles account registration
type RegisterHandler struct {
	service coreauth.Service
}

// NewRegisterHandler creates a new registration handler
func NewRegisterHandler(service coreauth.Service) *RegisterHandler {
	return &RegisterHandler{service: service}
}

// HandleRegister creates an account and returns a session token
// POST /auth/register
//
// Request body: { "name": "...", "email": "...", "password": "..." }
// Response: { "token": "..." }
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input coreauth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", "Invalid request body")
		return
	}

	token, err := h.service.Register(r.Context(), input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(token); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
