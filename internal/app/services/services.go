package services

import (
	"github.com/rs/zerolog"

	"github.com/kaan/campushub/internal/app/repositories"
	"github.com/kaan/campushub/internal/config"
)

// Services holds all service instances
type Services struct {
	Session  *SessionService
	Auth     *AuthService
	Post     *PostService
	Relation *RelationService
	User     *UserService
}

// NewServices wires all services onto the shared repositories
func NewServices(repos *repositories.Repositories, cfg *config.Config, logger zerolog.Logger) *Services {
	return &Services{
		Session: NewSessionService(
			repos.UserRepository,
			cfg.Session.CookieName,
			cfg.Session.MaxAge,
			cfg.IsProduction(),
		),
		Auth:     NewAuthService(repos.UserRepository, logger),
		Post:     NewPostService(repos.PostRepository, repos.CommentRepository, logger),
		Relation: NewRelationService(repos.LikeRepository, repos.FollowRepository, logger),
		User:     NewUserService(repos.UserRepository, repos.PostRepository, logger),
	}
}
