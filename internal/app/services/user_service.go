package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kaan/campushub/internal/app/models"
	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/app/repositories"
)

// UserService handles user listings, profiles and settings
type UserService struct {
	userRepo repositories.IUserRepository
	postRepo repositories.IPostRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, postRepo repositories.IPostRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
		logger:   logger,
	}
}

// ToUserSummary maps a user row to its account summary shape
func ToUserSummary(user *models.User) dto.UserSummary {
	return dto.UserSummary{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Major:     user.Major,
		StudentID: user.StudentID,
		AvatarURL: user.AvatarURL,
	}
}

// ListPeople returns up to limit newest users, excluding the caller when
// excludeID is set.
func (s *UserService) ListPeople(ctx context.Context, excludeID int64, limit int) ([]dto.UserCard, error) {
	users, err := s.userRepo.ListRecent(ctx, excludeID, limit)
	if err != nil {
		return nil, err
	}

	cards := make([]dto.UserCard, 0, len(users))
	for _, user := range users {
		cards = append(cards, dto.UserCard{
			ID:        user.ID,
			Name:      user.Name,
			Major:     user.Major,
			StudentID: user.StudentID,
			AvatarURL: user.AvatarURL,
		})
	}

	return cards, nil
}

// GetProfile returns a user's public profile together with their posts
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		StudentID: user.StudentID,
		Major:     user.Major,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
		Posts:     ToPostResponses(posts),
	}, nil
}

// UpdateSettings applies a settings update and returns the fresh summary
func (s *UserService) UpdateSettings(ctx context.Context, userID int64, req *dto.UpdateSettingsRequest) (*dto.UserSummary, error) {
	user, err := s.userRepo.UpdateSettings(ctx, userID, strings.TrimSpace(req.Name), strings.TrimSpace(req.Major))
	if err != nil {
		return nil, err
	}

	summary := ToUserSummary(user)
	return &summary, nil
}

// DeleteUser removes a user and everything they own. Admin-only surface.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.DeleteWithPosts(ctx, userID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("userID", userID).
		Msg("User deleted with their posts")

	return nil
}
