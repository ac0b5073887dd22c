package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/campushub/internal/app/models"
	"github.com/kaan/campushub/internal/pkg/apperrors"
	"github.com/kaan/campushub/internal/pkg/dberrors"
)

// ICommentRepository defines the interface for comment-related database operations
type ICommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error)
}

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a new comment and fills the generated id and timestamp.
// A foreign key violation on post_id surfaces as ErrPostNotFound.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO comments (content, user_id, post_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		comment.Content, comment.UserID, comment.PostID).
		Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("error creating comment: %w", err)
	}

	return nil
}

// ListByPost retrieves all comments for a post oldest-first, each with
// its author's id, name and major embedded.
func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	query := squirrel.Select(
		"c.id", "c.content", "c.user_id", "c.post_id", "c.created_at",
		"u.name", "u.major",
	).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(squirrel.Eq{"c.post_id": postID}).
		OrderBy("c.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment := &models.Comment{User: &models.User{}}
		err := rows.Scan(
			&comment.ID, &comment.Content, &comment.UserID, &comment.PostID, &comment.CreatedAt,
			&comment.User.Name, &comment.User.Major,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		comment.User.ID = comment.UserID
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}
