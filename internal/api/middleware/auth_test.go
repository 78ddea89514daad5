package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Postline/internal/core/auth"
	"Postline/internal/core/users"
)

// stubAuthService resolves a single known token
type stubAuthService struct {
	token string
	user  *users.User
}

func (s *stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.TokenResponse, error) {
	panic("not used")
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.TokenResponse, error) {
	panic("not used")
}

func (s *stubAuthService) ResolveSession(ctx context.Context, token string) (*users.User, error) {
	if token == s.token {
		return s.user, nil
	}
	return nil, auth.ErrUnauthenticated
}

func newAuthTestMiddleware() *AuthMiddleware {
	return NewAuthMiddleware(&stubAuthService{
		token: "good-token",
		user:  &users.User{ID: 42, Name: "Alice"},
	})
}

func echoViewerHandler(t *testing.T, wantID int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantID, GetViewerID(r))
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	mw := newAuthTestMiddleware()
	handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r)
		require.NotNil(t, user)
		assert.Equal(t, int64(42), user.ID)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	mw := newAuthTestMiddleware()
	handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Unauthenticated")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	mw := newAuthTestMiddleware()
	handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid or expired token")
}

func TestRequireAuth_NonBearerScheme(t *testing.T) {
	mw := newAuthTestMiddleware()
	handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	mw := newAuthTestMiddleware()
	handler := mw.OptionalAuth(echoViewerHandler(t, 0))

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestOptionalAuth_ValidTokenInjectsViewer(t *testing.T) {
	mw := newAuthTestMiddleware()
	handler := mw.OptionalAuth(echoViewerHandler(t, 42))

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestOptionalAuth_BadTokenDegradesToAnonymous(t *testing.T) {
	mw := newAuthTestMiddleware()
	handler := mw.OptionalAuth(echoViewerHandler(t, 0))

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
