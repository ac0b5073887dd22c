package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/campushub/internal/app/models"
	"github.com/kaan/campushub/internal/pkg/apperrors"
	"github.com/kaan/campushub/internal/pkg/dberrors"
)

// IPostRepository defines the interface for post-related database operations
type IPostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetWithMeta(ctx context.Context, id int64) (*models.PostWithMeta, error)
	ListWithMeta(ctx context.Context, search string) ([]*models.PostWithMeta, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*models.PostWithMeta, error)
}

// PostRepository handles database operations for posts
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post and fills the generated id and timestamp.
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO posts (content, file_url, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		post.Content, post.FileURL, post.AuthorID).
		Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating post: %w", err)
	}

	return nil
}

// metaQuery builds the feed select: one row per post, joined with the
// author and aggregated like user-ids and comment counts. Both aggregates
// must deduplicate: the two LEFT JOINs multiply rows (likes x comments),
// so without DISTINCT each liker id would repeat once per comment.
func metaQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"p.id", "p.content", "p.file_url", "p.author_id", "p.created_at",
		"u.name", "u.email", "u.major", "u.student_id",
		"COALESCE(array_agg(DISTINCT l.user_id) FILTER (WHERE l.user_id IS NOT NULL), '{}') AS like_user_ids",
		"COUNT(DISTINCT c.id) AS comment_count",
	).
		From("posts p").
		Join("users u ON u.id = p.author_id").
		LeftJoin("likes l ON l.post_id = p.id").
		LeftJoin("comments c ON c.post_id = p.id").
		GroupBy("p.id", "u.id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *PostRepository) queryMeta(ctx context.Context, query squirrel.SelectBuilder) ([]*models.PostWithMeta, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []*models.PostWithMeta
	for rows.Next() {
		post := &models.PostWithMeta{}
		err := rows.Scan(
			&post.ID, &post.Content, &post.FileURL, &post.AuthorID, &post.CreatedAt,
			&post.AuthorRow.Name, &post.AuthorRow.Email, &post.AuthorRow.Major, &post.AuthorRow.StudentID,
			&post.LikeUserIDs, &post.CommentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		post.AuthorRow.ID = post.AuthorID
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// GetWithMeta retrieves a single post with its feed metadata
func (r *PostRepository) GetWithMeta(ctx context.Context, id int64) (*models.PostWithMeta, error) {
	posts, err := r.queryMeta(ctx, metaQuery().Where(squirrel.Eq{"p.id": id}))
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, apperrors.ErrPostNotFound
	}

	return posts[0], nil
}

// likePatternEscaper neutralizes the LIKE metacharacters so a search term
// is always a literal substring match.
var likePatternEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListWithMeta retrieves all posts newest-first, optionally filtered by a
// case-insensitive substring match against post content or author name.
func (r *PostRepository) ListWithMeta(ctx context.Context, search string) ([]*models.PostWithMeta, error) {
	query := metaQuery().OrderBy("p.created_at DESC")
	if search != "" {
		pattern := "%" + likePatternEscaper.Replace(search) + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"p.content": pattern},
			squirrel.ILike{"u.name": pattern},
		})
	}

	return r.queryMeta(ctx, query)
}

// ListByAuthor retrieves one author's posts newest-first with feed metadata
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*models.PostWithMeta, error) {
	query := metaQuery().
		Where(squirrel.Eq{"p.author_id": authorID}).
		OrderBy("p.created_at DESC")

	return r.queryMeta(ctx, query)
}
