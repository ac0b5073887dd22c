package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kaan/campushub/internal/app/models"
	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/app/repositories"
	"github.com/kaan/campushub/internal/pkg/apperrors"
)

// PostService handles the feed and comments
type PostService struct {
	postRepo    repositories.IPostRepository
	commentRepo repositories.ICommentRepository
	logger      zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.IPostRepository, commentRepo repositories.ICommentRepository, logger zerolog.Logger) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// toPostResponse maps a joined post row to its response shape
func toPostResponse(post *models.PostWithMeta) dto.PostResponse {
	likes := post.LikeUserIDs
	if likes == nil {
		likes = []int64{}
	}

	return dto.PostResponse{
		ID:        post.ID,
		Content:   post.Content,
		FileURL:   post.FileURL,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		Author: dto.AuthorSummary{
			ID:        post.AuthorRow.ID,
			Name:      post.AuthorRow.Name,
			Email:     post.AuthorRow.Email,
			Major:     post.AuthorRow.Major,
			StudentID: post.AuthorRow.StudentID,
		},
		Likes:        likes,
		CommentCount: post.CommentCount,
	}
}

// ToPostResponses maps a slice of joined post rows to response shapes
func ToPostResponses(posts []*models.PostWithMeta) []dto.PostResponse {
	result := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		result = append(result, toPostResponse(post))
	}
	return result
}

// ListFeed returns all posts newest-first, optionally filtered by a
// case-insensitive substring over post content or author name.
func (s *PostService) ListFeed(ctx context.Context, search string) ([]dto.PostResponse, error) {
	posts, err := s.postRepo.ListWithMeta(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}

	return ToPostResponses(posts), nil
}

// CreatePost stores a new post for the given author and returns it in the
// same embedded shape the feed uses.
func (s *PostService) CreatePost(ctx context.Context, authorID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.ErrEmptyContent
	}

	post := &models.Post{
		Content:  content,
		FileURL:  req.FileURL,
		AuthorID: authorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("postID", post.ID).
		Int64("authorID", authorID).
		Msg("Post created")

	created, err := s.postRepo.GetWithMeta(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	response := toPostResponse(created)
	return &response, nil
}

// ListComments returns a post's comments oldest-first
func (s *PostService) ListComments(ctx context.Context, postID int64) ([]dto.CommentResponse, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		result = append(result, dto.CommentResponse{
			ID:        comment.ID,
			Content:   comment.Content,
			UserID:    comment.UserID,
			PostID:    comment.PostID,
			CreatedAt: comment.CreatedAt,
			User: dto.CommentAuthor{
				ID:    comment.User.ID,
				Name:  comment.User.Name,
				Major: comment.User.Major,
			},
		})
	}

	return result, nil
}

// CreateComment stores a new comment by the given user on a post
func (s *PostService) CreateComment(ctx context.Context, user *models.User, postID int64, content string) (*dto.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.ErrEmptyContent
	}

	comment := &models.Comment{
		Content: content,
		UserID:  user.ID,
		PostID:  postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("commentID", comment.ID).
		Int64("postID", postID).
		Msg("Comment created")

	return &dto.CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		UserID:    comment.UserID,
		PostID:    comment.PostID,
		CreatedAt: comment.CreatedAt,
		User: dto.CommentAuthor{
			ID:    user.ID,
			Name:  user.Name,
			Major: user.Major,
		},
	}, nil
}
