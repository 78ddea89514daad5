package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"Postline/internal/core/auth"
	"Postline/internal/core/users"
)

// contextKey is a private type for request context values
type contextKey string

// userKey holds the *users.User resolved from the bearer token
const userKey contextKey = "auth_user"

// AuthMiddleware resolves bearer session tokens for protected routes. The
// token is looked up once per request and the resulting user is threaded
// through the request context.
type AuthMiddleware struct {
	authService auth.Service
}

// NewAuthMiddleware creates a new session auth middleware
func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth ensures the request carries a valid bearer token.
// Unauthenticated requests receive 401; authenticated ones continue with
// the user injected into the context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		user, err := m.authService.ResolveSession(r.Context(), token)
		if err != nil {
			if err != auth.ErrUnauthenticated {
				log.Printf("Session resolution failed: %v", err)
			}
			writeAuthError(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// OptionalAuth loads the viewer when a valid token is present but lets
// anonymous requests through. A bad token degrades to anonymous rather
// than failing the request.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.authService.ResolveSession(r.Context(), token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// GetUser extracts the authenticated user from the request context.
// Returns nil for anonymous requests.
func GetUser(r *http.Request) *users.User {
	user, _ := r.Context().Value(userKey).(*users.User)
	return user
}

// GetViewerID returns the authenticated user's id, or zero for anonymous
// requests. Zero is the anonymous viewer in feed/detail queries.
func GetViewerID(r *http.Request) int64 {
	if user := GetUser(r); user != nil {
		return user.ID
	}
	return 0
}

// WithTestUser injects a user into the context. Tests only.
func WithTestUser(ctx context.Context, user *users.User) context.Context {
	return withUser(ctx, user)
}

func withUser(ctx context.Context, user *users.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"Unauthenticated","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
