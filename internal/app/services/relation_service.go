package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kaan/campushub/internal/app/repositories"
	"github.com/kaan/campushub/internal/pkg/apperrors"
)

// RelationService flips the like and follow relationships. Both toggles
// share one pattern: delete the row keyed by the composite pair, and if
// nothing was there, insert it. Each arm is a single statement guarded by
// the pair's unique constraint, so concurrent duplicate toggles cannot
// leave two rows behind — a racing insert collapses into "already liked".
type RelationService struct {
	likeRepo   repositories.ILikeRepository
	followRepo repositories.IFollowRepository
	logger     zerolog.Logger
}

// NewRelationService creates a new RelationService
func NewRelationService(likeRepo repositories.ILikeRepository, followRepo repositories.IFollowRepository, logger zerolog.Logger) *RelationService {
	return &RelationService{
		likeRepo:   likeRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

// ToggleLike flips the like state of (userID, postID) and returns the new
// state together with the post's fresh like count.
func (s *RelationService) ToggleLike(ctx context.Context, userID, postID int64) (bool, int, error) {
	removed, err := s.likeRepo.Delete(ctx, userID, postID)
	if err != nil {
		return false, 0, err
	}

	liked := false
	if !removed {
		inserted, err := s.likeRepo.Insert(ctx, userID, postID)
		if err != nil {
			return false, 0, err
		}
		// inserted == false means another request created the row first;
		// the pair is in the desired state either way.
		liked = true
		_ = inserted
	}

	count, err := s.likeRepo.CountByPost(ctx, postID)
	if err != nil {
		return false, 0, err
	}

	s.logger.Debug().
		Int64("userID", userID).
		Int64("postID", postID).
		Bool("liked", liked).
		Msg("Like toggled")

	return liked, count, nil
}

// ToggleFollow flips the follow state of (followerID, followingID) and
// returns the new state. Self-follows are rejected before any store access.
func (s *RelationService) ToggleFollow(ctx context.Context, followerID, followingID int64) (bool, error) {
	if followerID == followingID {
		return false, apperrors.ErrSelfFollow
	}

	removed, err := s.followRepo.Delete(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}

	following := false
	if !removed {
		if _, err := s.followRepo.Insert(ctx, followerID, followingID); err != nil {
			return false, err
		}
		following = true
	}

	s.logger.Debug().
		Int64("followerID", followerID).
		Int64("followingID", followingID).
		Bool("following", following).
		Msg("Follow toggled")

	return following, nil
}
