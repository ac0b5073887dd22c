package models

import (
	"time"
)

// Follow is a relationship row keyed by the unique ordered pair
// (follower_id, following_id). A user may never follow themselves;
// uq_follows_pair guarantees at most one row per ordered pair.
type Follow struct {
	ID          int64     `json:"id" db:"id"`
	FollowerID  int64     `json:"followerId" db:"follower_id"`
	FollowingID int64     `json:"followingId" db:"following_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
