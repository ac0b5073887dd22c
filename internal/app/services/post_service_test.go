package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/campushub/internal/app/models"
	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/pkg/apperrors"
)

func newPostService(postRepo *fakePostRepo, commentRepo *fakeCommentRepo) *PostService {
	return NewPostService(postRepo, commentRepo, zerolog.Nop())
}

func TestCreatePostTrimsContent(t *testing.T) {
	postRepo := newFakePostRepo()
	svc := newPostService(postRepo, newFakeCommentRepo())

	post, err := svc.CreatePost(context.Background(), 1, &dto.CreatePostRequest{Content: "  hello campus  "})
	require.NoError(t, err)
	assert.Equal(t, "hello campus", post.Content)
	assert.Equal(t, int64(1), post.AuthorID)
}

func TestCreatePostEmptyContent(t *testing.T) {
	svc := newPostService(newFakePostRepo(), newFakeCommentRepo())

	_, err := svc.CreatePost(context.Background(), 1, &dto.CreatePostRequest{Content: "   "})
	assert.ErrorIs(t, err, apperrors.ErrEmptyContent)
}

func TestCreatePostEmptyLikesNotNull(t *testing.T) {
	svc := newPostService(newFakePostRepo(), newFakeCommentRepo())

	post, err := svc.CreatePost(context.Background(), 1, &dto.CreatePostRequest{Content: "first"})
	require.NoError(t, err)

	// A fresh post serializes likes as [] rather than null
	assert.NotNil(t, post.Likes)
	assert.Empty(t, post.Likes)
}

func TestListFeedPassesSearchThrough(t *testing.T) {
	postRepo := newFakePostRepo()
	svc := newPostService(postRepo, newFakeCommentRepo())

	_, err := svc.ListFeed(context.Background(), "  midterm ")
	require.NoError(t, err)
	assert.Equal(t, "midterm", postRepo.lastSearch)
}

func TestListCommentsEmbedsAuthor(t *testing.T) {
	commentRepo := newFakeCommentRepo()
	commentRepo.comments = append(commentRepo.comments, &models.Comment{
		ID:      1,
		Content: "welcome!",
		UserID:  2,
		PostID:  10,
		User:    &models.User{ID: 2, Name: "Mehmet Kaya", Major: "Electrical Engineering"},
	})
	svc := newPostService(newFakePostRepo(), commentRepo)

	comments, err := svc.ListComments(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Mehmet Kaya", comments[0].User.Name)
	assert.Equal(t, "Electrical Engineering", comments[0].User.Major)
}

func TestListCommentsEmptyPost(t *testing.T) {
	svc := newPostService(newFakePostRepo(), newFakeCommentRepo())

	comments, err := svc.ListComments(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestCreateCommentUsesSessionUser(t *testing.T) {
	commentRepo := newFakeCommentRepo()
	svc := newPostService(newFakePostRepo(), commentRepo)
	user := &models.User{ID: 3, Name: "Zeynep Arslan", Major: "Mathematics"}

	comment, err := svc.CreateComment(context.Background(), user, 10, " nice post ")
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Content)
	assert.Equal(t, int64(3), comment.UserID)
	assert.Equal(t, "Zeynep Arslan", comment.User.Name)
}

func TestCreateCommentEmptyContent(t *testing.T) {
	svc := newPostService(newFakePostRepo(), newFakeCommentRepo())
	user := &models.User{ID: 3}

	_, err := svc.CreateComment(context.Background(), user, 10, "")
	assert.ErrorIs(t, err, apperrors.ErrEmptyContent)
}
