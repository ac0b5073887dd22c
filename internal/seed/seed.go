package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kaan/campushub/internal/app/models"
	appRepos "github.com/kaan/campushub/internal/app/repositories"
	"github.com/kaan/campushub/internal/pkg/auth"
)

// demoUser is one entry of the development dataset.
type demoUser struct {
	Name      string
	Email     string
	StudentID string
	Major     string
	Password  string
	Posts     []string
}

var demoUsers = []demoUser{
	{
		Name:      "Ayse Demir",
		Email:     "ayse@campushub.edu",
		StudentID: "20210001",
		Major:     "Computer Engineering",
		Password:  "Password123!",
		Posts: []string{
			"Anyone up for a study group before the algorithms midterm?",
			"The new library hours are great for night owls.",
		},
	},
	{
		Name:      "Mehmet Kaya",
		Email:     "mehmet@campushub.edu",
		StudentID: "20210002",
		Major:     "Electrical Engineering",
		Password:  "Password123!",
		Posts: []string{
			"Selling a barely used oscilloscope, DM me.",
		},
	},
	{
		Name:      "Zeynep Arslan",
		Email:     "zeynep@campushub.edu",
		StudentID: "20200015",
		Major:     "Mathematics",
		Password:  "Password123!",
		Posts:     nil,
	},
}

// CreateDemoData populates the database with a small demo dataset for
// development environments. Existing users are left untouched, so the
// function is safe to run on every startup.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	postRepo := appRepos.NewPostRepository(dbPool)
	followRepo := appRepos.NewFollowRepository(dbPool)
	likeRepo := appRepos.NewLikeRepository(dbPool)

	lgr.Info().Msg("Checking/Creating demo data...")
	var finalErr error

	userIDs := make([]int64, 0, len(demoUsers))
	var firstPostID int64

	for _, du := range demoUsers {
		exists, err := userRepo.EmailExists(ctx, du.Email)
		if err != nil {
			lgr.Error().Err(err).Str("email", du.Email).Msg("Error checking demo user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			existing, err := userRepo.GetByEmail(ctx, du.Email)
			if err != nil {
				finalErr = errors.Join(finalErr, err)
				continue
			}
			userIDs = append(userIDs, existing.ID)
			continue
		}

		hashed, err := auth.HashPassword(du.Password)
		if err != nil {
			lgr.Error().Err(err).Str("email", du.Email).Msg("Error hashing demo password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &appModels.User{
			Name:      du.Name,
			Email:     du.Email,
			StudentID: du.StudentID,
			Major:     du.Major,
			Password:  hashed,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			lgr.Error().Err(err).Str("email", du.Email).Msg("Error creating demo user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		userIDs = append(userIDs, user.ID)
		lgr.Info().Int64("userID", user.ID).Str("email", du.Email).Msg("Demo user created")

		for _, content := range du.Posts {
			post := &appModels.Post{AuthorID: user.ID, Content: content}
			if err := postRepo.Create(ctx, post); err != nil {
				lgr.Error().Err(err).Int64("userID", user.ID).Msg("Error creating demo post")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			if firstPostID == 0 {
				firstPostID = post.ID
			}
		}
	}

	// Wire a few relations between the demo users; inserts are
	// conflict-free so re-running is harmless.
	if len(userIDs) >= 2 {
		if _, err := followRepo.Insert(ctx, userIDs[1], userIDs[0]); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}
	if len(userIDs) >= 3 {
		if _, err := followRepo.Insert(ctx, userIDs[2], userIDs[0]); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}
	if firstPostID > 0 && len(userIDs) >= 2 {
		if _, err := likeRepo.Insert(ctx, userIDs[1], firstPostID); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Demo data check/creation finished.")
	return finalErr
}
