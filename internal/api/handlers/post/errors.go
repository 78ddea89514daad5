package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Postline/internal/core/comments"
	"Postline/internal/core/media"
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

// handleServiceError maps post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err) || comments.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "ValidationError", err.Error())

	case errors.Is(err, media.ErrUnsupportedFormat):
		writeError(w, http.StatusBadRequest, "UnsupportedFormat",
			"Image must be jpg, jpeg, png, gif or webp")

	case errors.Is(err, media.ErrEmptyFile):
		writeError(w, http.StatusBadRequest, "EmptyFile", "Uploaded file is empty")

	case errors.Is(err, posts.ErrNotPostAuthor):
		writeError(w, http.StatusForbidden, "Forbidden", "Only the post author may do this")

	case errors.Is(err, posts.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
