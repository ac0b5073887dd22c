package models

import (
	"time"
)

// Like is a relationship row keyed by the unique pair (user_id, post_id).
// The row's existence means "this user likes this post"; the composite
// unique constraint uq_likes_user_post guarantees at most one row per pair.
type Like struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostID    int64     `json:"postId" db:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
