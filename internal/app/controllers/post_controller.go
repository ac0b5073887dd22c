package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaan/campushub/internal/app/models"
	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/app/services"
	"github.com/kaan/campushub/internal/middleware"
)

// PostController handles the post feed, likes and comments
type PostController struct {
	postService     *services.PostService
	relationService *services.RelationService
	logger          zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, relationService *services.RelationService, logger zerolog.Logger) *PostController {
	return &PostController{
		postService:     postService,
		relationService: relationService,
		logger:          logger,
	}
}

// ListPosts returns the feed, newest first
// @Summary List posts
// @Description Lists all posts with author, liker ids and comment count. q filters by content or author name.
// @Tags posts
// @Produce json
// @Param q query string false "Case-insensitive substring filter"
// @Success 200 {array} dto.PostResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /posts [get]
func (c *PostController) ListPosts(ctx *gin.Context) {
	posts, err := c.postService.ListFeed(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// CreatePost stores a new post for the session user
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Post content and optional file URL"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} dto.ErrorResponse "Empty content"
// @Failure 401 {object} dto.ErrorResponse
// @Router /posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Content is required"))
		return
	}

	post, err := c.postService.CreatePost(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// parsePostID reads the :postId path parameter as an integer id
func parsePostID(ctx *gin.Context) (int64, bool) {
	postID, err := strconv.ParseInt(ctx.Param("postId"), 10, 64)
	if err != nil || postID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid post ID"))
		return 0, false
	}
	return postID, true
}

// ToggleLike flips the session user's like on a post
// @Summary Toggle a like
// @Description Likes the post when no like exists, removes it otherwise. Returns the new state and fresh count.
// @Tags posts
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} dto.LikeToggleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{postId}/like [post]
func (c *PostController) ToggleLike(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	postID, ok := parsePostID(ctx)
	if !ok {
		return
	}

	liked, count, err := c.relationService.ToggleLike(ctx.Request.Context(), userID, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LikeToggleResponse{Liked: liked, Count: count})
}

// ListComments returns a post's comments oldest first
// @Summary List comments
// @Tags posts
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /posts/{postId}/comments [get]
func (c *PostController) ListComments(ctx *gin.Context) {
	postID, ok := parsePostID(ctx)
	if !ok {
		return
	}

	comments, err := c.postService.ListComments(ctx.Request.Context(), postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// CreateComment stores a new comment by the session user
// @Summary Create a comment
// @Tags posts
// @Accept json
// @Produce json
// @Param postId path int true "Post ID"
// @Param request body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Post does not exist"
// @Router /posts/{postId}/comments [post]
func (c *PostController) CreateComment(ctx *gin.Context) {
	value, exists := ctx.Get(middleware.ContextUserKey)
	user, ok := value.(*models.User)
	if !exists || !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	postID, ok := parsePostID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Post ID and content are required"))
		return
	}

	comment, err := c.postService.CreateComment(ctx.Request.Context(), user, postID, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}
