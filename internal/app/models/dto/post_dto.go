package dto

import "time"

// CreatePostRequest represents a new post submission
type CreatePostRequest struct {
	Content string  `json:"content" binding:"required"`
	FileURL *string `json:"fileUrl,omitempty"`
}

// AuthorSummary is the author block embedded in every post response
type AuthorSummary struct {
	ID        int64  `json:"id" example:"1"`
	Name      string `json:"name" example:"Ayse Yilmaz"`
	Email     string `json:"email" example:"ayse@campus.edu"`
	Major     string `json:"major" example:"Computer Engineering"`
	StudentID string `json:"studentId" example:"20210101"`
}

// PostResponse is the feed item shape: the post itself plus its author
// summary, the ids of users who liked it and the number of comments.
type PostResponse struct {
	ID           int64         `json:"id"`
	Content      string        `json:"content"`
	FileURL      *string       `json:"fileUrl,omitempty"`
	AuthorID     int64         `json:"authorId"`
	CreatedAt    time.Time     `json:"createdAt"`
	Author       AuthorSummary `json:"author"`
	Likes        []int64       `json:"likes"`
	CommentCount int           `json:"commentCount"`
}

// LikeToggleResponse reports the resulting like state and the fresh
// like count of the affected post.
type LikeToggleResponse struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

// FollowToggleResponse reports the resulting follow state.
type FollowToggleResponse struct {
	Following bool `json:"following"`
}

// CreateCommentRequest represents a new comment submission
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentAuthor is the user block embedded in comment responses
type CommentAuthor struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Major string `json:"major"`
}

// CommentResponse is a single comment with its author embedded
type CommentResponse struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	UserID    int64         `json:"userId"`
	PostID    int64         `json:"postId"`
	CreatedAt time.Time     `json:"createdAt"`
	User      CommentAuthor `json:"user"`
}
