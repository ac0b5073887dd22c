package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/campushub/internal/pkg/apperrors"
	"github.com/kaan/campushub/internal/pkg/dberrors"
)

// IFollowRepository defines the interface for follow-relationship database operations
type IFollowRepository interface {
	Insert(ctx context.Context, followerID, followingID int64) (bool, error)
	Delete(ctx context.Context, followerID, followingID int64) (bool, error)
}

// FollowRepository handles database operations for the follows relationship
type FollowRepository struct {
	db *pgxpool.Pool
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{db: db}
}

// Insert creates the (follower, following) row if absent and reports
// whether a row was actually inserted. uq_follows_pair absorbs concurrent
// duplicate inserts: false means the pair was already present.
func (r *FollowRepository) Insert(ctx context.Context, followerID, followingID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, following_id) DO NOTHING`,
		followerID, followingID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return false, apperrors.ErrUserNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("error inserting follow: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes the (follower, following) row and reports whether one existed.
func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM follows
		WHERE follower_id = $1 AND following_id = $2`,
		followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("error deleting follow: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
