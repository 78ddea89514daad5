package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Postline/internal/core/media"
	"Postline/internal/core/users"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, media.ErrUnsupportedFormat):
		writeError(w, http.StatusBadRequest, "UnsupportedFormat",
			"Image must be jpg, jpeg, png, gif or webp")

	case errors.Is(err, media.ErrEmptyFile):
		writeError(w, http.StatusBadRequest, "EmptyFile", "Uploaded file is empty")

	case errors.Is(err, users.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "User not found")

	default:
		log.Printf("Unexpected error in user handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
