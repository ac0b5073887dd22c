package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kaan/campushub/internal/app/models"
	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/app/repositories"
	"github.com/kaan/campushub/internal/pkg/apperrors"
	"github.com/kaan/campushub/internal/pkg/auth"
	"github.com/kaan/campushub/internal/pkg/dberrors"
)

// AuthService handles registration and credential checks
type AuthService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a new user account with a hashed password.
// Email and student id must both be unused; the pre-checks give friendly
// errors and the unique constraints are the backstop for races.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	emailTaken, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if emailTaken {
		return nil, apperrors.ErrEmailTaken
	}

	idTaken, err := s.userRepo.StudentIDExists(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student id: %w", err)
	}
	if idTaken {
		return nil, apperrors.ErrStudentIDTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		StudentID: req.StudentID,
		Major:     strings.TrimSpace(req.Major),
		Password:  hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the pre-checks; the unique
		// constraints decide the winner and the loser gets a conflict.
		if dberrors.IsDuplicateConstraintError(err, "uq_users_email") {
			return nil, apperrors.ErrEmailTaken
		}
		if dberrors.IsDuplicateConstraintError(err, "uq_users_student_id") {
			return nil, apperrors.ErrStudentIDTaken
		}
		return nil, err
	}

	s.logger.Info().
		Int64("userID", user.ID).
		Str("email", user.Email).
		Msg("User registered")

	return user, nil
}

// Login verifies the submitted credentials and returns the matching user.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Debug().
		Int64("userID", user.ID).
		Msg("User logged in")

	return user, nil
}
