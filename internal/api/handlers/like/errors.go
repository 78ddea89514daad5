package like

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Postline/internal/core/likes"
	"Postline/internal/core/posts"
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

// handleServiceError maps like service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, likes.ErrAlreadyLiked):
		writeError(w, http.StatusBadRequest, "AlreadyLiked", "Post is already liked")

	case errors.Is(err, posts.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")

	default:
		log.Printf("Unexpected error in like handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
