package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/campushub/internal/app/models"
	"github.com/kaan/campushub/internal/app/models/dto"
	"github.com/kaan/campushub/internal/pkg/apperrors"
)

func seedUsers(t *testing.T, repo *fakeUserRepo, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		err := repo.Create(context.Background(), &models.User{
			Name:      fmt.Sprintf("User %d", i),
			Email:     fmt.Sprintf("user%d@campushub.edu", i),
			StudentID: fmt.Sprintf("2021%04d", i),
			Major:     "Computer Engineering",
		})
		require.NoError(t, err)
	}
}

func TestListPeopleExcludesCallerAndLimits(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUsers(t, userRepo, 8)
	svc := NewUserService(userRepo, newFakePostRepo(), zerolog.Nop())

	cards, err := svc.ListPeople(context.Background(), 8, 5)
	require.NoError(t, err)
	require.Len(t, cards, 5)

	// Newest first, caller excluded
	assert.Equal(t, int64(7), cards[0].ID)
	for _, card := range cards {
		assert.NotEqual(t, int64(8), card.ID)
	}
}

func TestGetProfileIncludesPosts(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUsers(t, userRepo, 2)
	postRepo := newFakePostRepo()
	require.NoError(t, postRepo.Create(context.Background(), &models.Post{AuthorID: 1, Content: "mine"}))
	require.NoError(t, postRepo.Create(context.Background(), &models.Post{AuthorID: 2, Content: "theirs"}))
	svc := NewUserService(userRepo, postRepo, zerolog.Nop())

	profile, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "User 1", profile.Name)
	require.Len(t, profile.Posts, 1)
	assert.Equal(t, "mine", profile.Posts[0].Content)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), newFakePostRepo(), zerolog.Nop())

	_, err := svc.GetProfile(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateSettings(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUsers(t, userRepo, 1)
	svc := NewUserService(userRepo, newFakePostRepo(), zerolog.Nop())

	summary, err := svc.UpdateSettings(context.Background(), 1, &dto.UpdateSettingsRequest{
		Name:  " New Name ",
		Major: " Mathematics ",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", summary.Name)
	assert.Equal(t, "Mathematics", summary.Major)
}

func TestDeleteUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUsers(t, userRepo, 1)
	svc := NewUserService(userRepo, newFakePostRepo(), zerolog.Nop())

	require.NoError(t, svc.DeleteUser(context.Background(), 1))
	_, err := userRepo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 1), apperrors.ErrUserNotFound)
}
