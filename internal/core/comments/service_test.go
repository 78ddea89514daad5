package comments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Postline/internal/core/posts"
	"Postline/internal/core/users"
)

// MockCommentRepository is a mock implementation of Repository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *Comment) (*Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*CommentView, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*CommentView), args.Error(1)
}

// MockPostRepository is a minimal mock of posts.Repository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *posts.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) GetView(ctx context.Context, id, viewerID int64) (*posts.PostView, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.PostView), args.Error(1)
}

func (m *MockPostRepository) ListFeed(ctx context.Context, limit, offset int, viewerID int64) ([]*posts.PostView, error) {
	args := m.Called(ctx, limit, offset, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.PostView), args.Error(1)
}

func testAuthor() *users.User {
	avatar := "/uploads/user1_avatar_abc.png"
	return &users.User{ID: 1, Name: "Alice", AvatarURL: &avatar}
}

func TestAdd_DenormalizesAuthor(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	service := NewCommentService(commentRepo, postRepo)

	postRepo.On("GetByID", mock.Anything, int64(10)).
		Return(&posts.Post{ID: 10, AuthorID: 2}, nil)
	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *Comment) bool {
		return c.PostID == 10 && c.AuthorID == 1 && c.Text == "nice post"
	})).Return(&Comment{ID: 5, PostID: 10, AuthorID: 1, Text: "nice post", CreatedAt: time.Now()}, nil)

	view, err := service.Add(context.Background(), testAuthor(), 10, "  nice post  ")

	require.NoError(t, err)
	assert.Equal(t, int64(5), view.ID)
	assert.Equal(t, "Alice", view.AuthorName)
	require.NotNil(t, view.AuthorAvatarURL)
	assert.Equal(t, "/uploads/user1_avatar_abc.png", *view.AuthorAvatarURL)
}

func TestAdd_RequiresText(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	service := NewCommentService(commentRepo, postRepo)

	_, err := service.Add(context.Background(), testAuthor(), 10, "   ")

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	postRepo.AssertNotCalled(t, "GetByID")
}

func TestAdd_RejectsOversizedText(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	service := NewCommentService(commentRepo, postRepo)

	_, err := service.Add(context.Background(), testAuthor(), 10, strings.Repeat("a", MaxCommentLength+1))

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestAdd_MissingPost(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	service := NewCommentService(commentRepo, postRepo)

	postRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, posts.ErrPostNotFound)

	_, err := service.Add(context.Background(), testAuthor(), 99, "hello")

	assert.ErrorIs(t, err, posts.ErrPostNotFound)
	commentRepo.AssertNotCalled(t, "Create")
}

func TestListForPost_OrderPreserved(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	postRepo := new(MockPostRepository)
	service := NewCommentService(commentRepo, postRepo)

	oldest := &CommentView{ID: 1, Text: "first"}
	newest := &CommentView{ID: 2, Text: "second"}
	commentRepo.On("ListByPost", mock.Anything, int64(10)).
		Return([]*CommentView{oldest, newest}, nil)

	views, err := service.ListForPost(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "first", views[0].Text)
	assert.Equal(t, "second", views[1].Text)
}
