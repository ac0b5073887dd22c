package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	UserRepository    *UserRepository
	PostRepository    *PostRepository
	CommentRepository *CommentRepository
	LikeRepository    *LikeRepository
	FollowRepository  *FollowRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		PostRepository:    NewPostRepository(db),
		CommentRepository: NewCommentRepository(db),
		LikeRepository:    NewLikeRepository(db),
		FollowRepository:  NewFollowRepository(db),
	}
}
