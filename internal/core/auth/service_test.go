package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Postline/internal/core/users"
)

// MockUserRepository is a mock implementation of users.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) (*users.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id int64, avatarURL string) (*users.User, error) {
	args := m.Called(ctx, id, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetUserByToken(ctx context.Context, token string) (*users.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func newTestService(userRepo *MockUserRepository, sessionRepo *MockSessionRepository) Service {
	return NewAuthService(userRepo, sessionRepo, "test-secret")
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestService(userRepo, sessionRepo)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *users.User) bool {
		return u.Name == "Alice" && u.Email == "alice@example.com" && u.PasswordHash != ""
	})).Return(&users.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)

	sessionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *Session) bool {
		return s.UserID == 1 && s.Token != ""
	})).Return(nil)

	resp, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.COM ",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	userRepo.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
}

func TestRegister_ValidationBeforeStore(t *testing.T) {
	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"empty name", RegisterRequest{Name: "", Email: "a@example.com", Password: "secret1"}},
		{"name too long", RegisterRequest{Name: strings.Repeat("a", 101), Email: "a@example.com", Password: "secret1"}},
		{"bad email", RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "secret1"}},
		{"short password", RegisterRequest{Name: "Alice", Email: "a@example.com", Password: "12345"}},
		{"long password", RegisterRequest{Name: "Alice", Email: "a@example.com", Password: strings.Repeat("a", 129)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			sessionRepo := new(MockSessionRepository)
			service := newTestService(userRepo, sessionRepo)

			_, err := service.Register(context.Background(), tc.req)

			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected ValidationError, got %v", err)
			userRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestService(userRepo, sessionRepo)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil, users.ErrDuplicateEmail)

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, users.ErrDuplicateEmail)
	sessionRepo.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestService(userRepo, sessionRepo)

	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&users.User{ID: 1, Email: "alice@example.com", PasswordHash: hash}, nil)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "Alice@Example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestService(userRepo, sessionRepo)

	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&users.User{ID: 1, Email: "alice@example.com", PasswordHash: hash}, nil)

	_, err = service.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	sessionRepo.AssertNotCalled(t, "Create")
}

func TestLogin_UnknownEmailIsIndistinguishable(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestService(userRepo, sessionRepo)

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, users.ErrUserNotFound)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret1",
	})

	// Same error as a wrong password: the response must not reveal
	// which field was wrong.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveSession_RoundTrip(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestService(userRepo, sessionRepo)

	var minted string
	userRepo.On("Create", mock.Anything, mock.Anything).
		Return(&users.User{ID: 7, Name: "Alice", Email: "alice@example.com"}, nil)
	sessionRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			minted = args.Get(1).(*Session).Token
		}).Return(nil)

	resp, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, minted, resp.Token)

	sessionRepo.On("GetUserByToken", mock.Anything, minted).
		Return(&users.User{ID: 7, Name: "Alice", Email: "alice@example.com"}, nil)

	user, err := service.ResolveSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestResolveSession_EmptyToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestService(userRepo, sessionRepo)

	_, err := service.ResolveSession(context.Background(), "")

	assert.ErrorIs(t, err, ErrUnauthenticated)
	sessionRepo.AssertNotCalled(t, "GetUserByToken")
}

func TestResolveSession_UnknownToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestService(userRepo, sessionRepo)

	sessionRepo.On("GetUserByToken", mock.Anything, "bogus").
		Return(nil, users.ErrUserNotFound)

	_, err := service.ResolveSession(context.Background(), "bogus")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}
