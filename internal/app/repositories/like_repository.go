package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/campushub/internal/pkg/apperrors"
	"github.com/kaan/campushub/internal/pkg/dberrors"
)

// ILikeRepository defines the interface for like-relationship database operations
type ILikeRepository interface {
	Insert(ctx context.Context, userID, postID int64) (bool, error)
	Delete(ctx context.Context, userID, postID int64) (bool, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
}

// LikeRepository handles database operations for the likes relationship
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// Insert creates the (user, post) like row if it does not exist yet and
// reports whether a row was actually inserted. The statement is guarded by
// uq_likes_user_post, so a concurrent duplicate insert is absorbed instead
// of failing: false means the pair was already present.
func (r *LikeRepository) Insert(ctx context.Context, userID, postID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return false, apperrors.ErrPostNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			// Constraint raced ahead of the ON CONFLICT clause; the pair exists.
			return false, nil
		}
		return false, fmt.Errorf("error inserting like: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes the (user, post) like row and reports whether one existed.
func (r *LikeRepository) Delete(ctx context.Context, userID, postID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM likes
		WHERE user_id = $1 AND post_id = $2`,
		userID, postID)
	if err != nil {
		return false, fmt.Errorf("error deleting like: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// CountByPost returns the number of likes a post currently has
func (r *LikeRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting likes: %w", err)
	}

	return count, nil
}
