package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Postline/internal/api/middleware"
	"Postline/internal/core/comments"
	"Postline/internal/core/posts"
)

// GetHandler handles post detail reads
type GetHandler struct {
	postService    posts.Service
	commentService comments.Service
}

// NewGetHandler creates a new post detail handler
func NewGetHandler(postService posts.Service, commentService comments.Service) *GetHandler {
	return &GetHandler{
		postService:    postService,
		commentService: commentService,
	}
}

// PostDetailOutput is the post detail response: the hydrated post plus its
// comments oldest-first.
type PostDetailOutput struct {
	Post      *posts.PostView         `json:"post"`
	Comments  []*comments.CommentView `json:"comments"`
	LikedByMe bool                    `json:"liked_by_me"`
}

// HandleGet returns a post with its full comment list. Anonymous viewers
// always see liked_by_me = false.
// GET /posts/{postID}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")
		return
	}

	viewerID := middleware.GetViewerID(r)

	view, err := h.postService.Get(r.Context(), postID, viewerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	commentList, err := h.commentService.ListForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	output := PostDetailOutput{
		Post:      view,
		Comments:  commentList,
		LikedByMe: view.LikedByMe,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(output); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
