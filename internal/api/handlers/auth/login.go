package auth

import (
	"encoding/json"
	"log"
	"net/http"

	coreauth "Postline/internal/core/auth"
)

// LoginHandler handles credential login
type LoginHandler struct {
	service coreauth.Service
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service coreauth.Service) *LoginHandler {
	return &LoginHandler{service: service}
}

// HandleLogin verifies credentials and returns a fresh session token.
// Earlier tokens for the same user stay valid.
// POST /auth/login
//
// Request body: { "email": "...", "password": "..." }
// Response: { "token": "..." }
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input coreauth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", "Invalid request body")
		return
	}

	token, err := h.service.Login(r.Context(), input)
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
