package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/campushub/internal/pkg/apperrors"
)

func newRelationService(likeRepo *fakeLikeRepo, followRepo *fakeFollowRepo) *RelationService {
	return NewRelationService(likeRepo, followRepo, zerolog.Nop())
}

func TestToggleLikeRoundTrip(t *testing.T) {
	likeRepo := newFakeLikeRepo()
	svc := newRelationService(likeRepo, newFakeFollowRepo())
	ctx := context.Background()

	liked, count, err := svc.ToggleLike(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	liked, count, err = svc.ToggleLike(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, count)

	// The pair is back to its initial state, so a third toggle likes again
	liked, count, err = svc.ToggleLike(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)
}

func TestToggleLikeCountsOnlyTargetPost(t *testing.T) {
	likeRepo := newFakeLikeRepo()
	svc := newRelationService(likeRepo, newFakeFollowRepo())
	ctx := context.Background()

	_, _, err := svc.ToggleLike(ctx, 1, 10)
	require.NoError(t, err)
	_, _, err = svc.ToggleLike(ctx, 2, 10)
	require.NoError(t, err)
	_, _, err = svc.ToggleLike(ctx, 1, 99)
	require.NoError(t, err)

	liked, count, err := svc.ToggleLike(ctx, 3, 10)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 3, count)
}

func TestToggleLikeLostInsertRace(t *testing.T) {
	// A concurrent request inserted the row between our delete and insert.
	// The insert reports no new row, but the pair is in the desired state,
	// so the toggle still resolves to liked.
	likeRepo := newFakeLikeRepo()
	likeRepo.forceConflict = true
	svc := newRelationService(likeRepo, newFakeFollowRepo())

	liked, count, err := svc.ToggleLike(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)
}

func TestToggleFollowRoundTrip(t *testing.T) {
	followRepo := newFakeFollowRepo()
	svc := newRelationService(newFakeLikeRepo(), followRepo)
	ctx := context.Background()

	following, err := svc.ToggleFollow(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = svc.ToggleFollow(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestToggleFollowDirectional(t *testing.T) {
	followRepo := newFakeFollowRepo()
	svc := newRelationService(newFakeLikeRepo(), followRepo)
	ctx := context.Background()

	following, err := svc.ToggleFollow(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, following)

	// The reverse direction is a distinct pair
	following, err = svc.ToggleFollow(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestToggleFollowSelfRejected(t *testing.T) {
	followRepo := newFakeFollowRepo()
	svc := newRelationService(newFakeLikeRepo(), followRepo)

	_, err := svc.ToggleFollow(context.Background(), 5, 5)
	assert.ErrorIs(t, err, apperrors.ErrSelfFollow)
	assert.Zero(t, followRepo.calls, "self-follow must be rejected before any store access")
}
