package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"techblog/internal/model"
	"techblog/pkg/logger"
)

type LikeService struct {
	trManager   TxManager
	posts       PostStorage
	likes       LikeStorage
	invalidator DisplayInvalidator
	now         func() time.Time
}

func NewLikeService(trManager TxManager, posts PostStorage, likes LikeStorage, invalidator DisplayInvalidator) *LikeService {
	return &LikeService{
		trManager:   trManager,
		posts:       posts,
		likes:       likes,
		invalidator: invalidator,
		now:         time.Now,
	}
}

// ToggleLike flips the user's like on the post. Two calls in a row restore
// the original state.
func (s *LikeService) ToggleLike(ctx context.Context, postID, userID int64) (model.LikeState, error) {
	if userID <= 0 {
		return model.LikeState{}, fmt.Errorf("%w: anonymous user", ErrUnauthorized)
	}
	if postID <= 0 {
		return model.LikeState{}, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}

	var state model.LikeState
	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		exists, err := s.posts.PostExists(ctx, postID)
		if err != nil {
			return fmt.Errorf("check post %d: %w", postID, err)
		}
		if !exists {
			return fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}

		_, err = s.likes.GetLike(ctx, postID, userID)
		switch {
		case err == nil:
			removed, err := s.likes.DeleteLike(ctx, postID, userID)
			if err != nil {
				return fmt.Errorf("delete like: %w", err)
			}
			if !removed {
				s.logRace(ctx, postID, userID, "already unliked")
			}
			state.Liked = false
		case errors.Is(err, ErrNotFound):
			inserted, err := s.likes.InsertLike(ctx, model.Like{
				PostID:    postID,
				UserID:    userID,
				CreatedAt: s.now(),
			})
			if err != nil {
				return fmt.Errorf("insert like: %w", err)
			}
			if !inserted {
				s.logRace(ctx, postID, userID, "already liked")
			}
			state.Liked = true
		default:
			return fmt.Errorf("get like: %w", err)
		}

		state.Count, err = s.likes.CountLikes(ctx, postID)
		if err != nil {
			return fmt.Errorf("count likes: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.LikeState{}, storageFailure(err)
	}

	notifyDisplay(ctx, s.invalidator, postID, model.ReasonLikeToggled, s.now())
	return state, nil
}

// GetLikeState reports liked=false for anonymous users.
func (s *LikeService) GetLikeState(ctx context.Context, postID, userID int64) (model.LikeState, error) {
	if postID <= 0 {
		return model.LikeState{}, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}

	exists, err := s.posts.PostExists(ctx, postID)
	if err != nil {
		return model.LikeState{}, storageFailure(err)
	}
	if !exists {
		return model.LikeState{}, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}

	var state model.LikeState
	if userID > 0 {
		_, err := s.likes.GetLike(ctx, postID, userID)
		switch {
		case err == nil:
			state.Liked = true
		case !errors.Is(err, ErrNotFound):
			return model.LikeState{}, storageFailure(err)
		}
	}

	state.Count, err = s.likes.CountLikes(ctx, postID)
	if err != nil {
		return model.LikeState{}, storageFailure(err)
	}
	return state, nil
}

func (s *LikeService) logRace(ctx context.Context, postID, userID int64, outcome string) {
	logger.FromContext(ctx).Debug("like race resolved",
		"post_id", postID,
		"user_id", userID,
		"outcome", outcome,
		"err", ErrConflict,
	)
}
