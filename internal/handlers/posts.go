package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ishahbak/feed-service/internal/middleware"
	"github.com/ishahbak/feed-service/internal/service"
)

// PostHandler handles post HTTP requests.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new PostHandler instance.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest represents the create-post request payload. The author
// always comes from the verified token, never from the body.
type CreatePostRequest struct {
	Content string `json:"content"`
}

// List godoc
// @Summary List posts
// @Description Return all posts, most recent first, with resolved authors
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PostView
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		logAndRespondError(c, http.StatusInternalServerError, err, "Error fetching posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Create godoc
// @Summary Create a post
// @Description Create a post authored by the authenticated user
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreatePostRequest true "Post content"
// @Success 201 {object} models.PostView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication failed")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Content is required")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyContent):
			respondError(c, http.StatusBadRequest, "Content is required")
		case errors.Is(err, service.ErrAuthorNotFound):
			respondError(c, http.StatusUnauthorized, "authentication failed")
		default:
			logAndRespondError(c, http.StatusInternalServerError, err, "Error creating post")
		}
		return
	}

	c.JSON(http.StatusCreated, post)
}
