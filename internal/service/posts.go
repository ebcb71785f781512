package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"techblog/internal/model"

	"github.com/go-playground/validator/v10"
)

type PostService struct {
	trManager   TxManager
	postStorage PostStorage
	invalidator DisplayInvalidator
	now         func() time.Time
}

func NewPostService(trManager TxManager, postStorage PostStorage, invalidator DisplayInvalidator) *PostService {
	return &PostService{
		trManager:   trManager,
		postStorage: postStorage,
		invalidator: invalidator,
		now:         time.Now,
	}
}

func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (model.Post, error) {
	if !req.Actor.IsAdmin() {
		return model.Post{}, fmt.Errorf("%w: only admins can publish posts", ErrUnauthorized)
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(req.Category)
	if err := validator.New().Struct(req); err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	now := s.now()
	p, err := s.postStorage.CreatePost(ctx, model.Post{
		AuthorID:  req.Actor.UserID,
		Title:     req.Title,
		Category:  req.Category,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.Post{}, storageFailure(err)
	}
	return p, nil
}

func (s *PostService) PostExists(ctx context.Context, postID int64) (bool, error) {
	if postID <= 0 {
		return false, nil
	}
	ok, err := s.postStorage.PostExists(ctx, postID)
	if err != nil {
		return false, storageFailure(err)
	}
	return ok, nil
}

// DeletePost removes the post together with its comments and likes.
func (s *PostService) DeletePost(ctx context.Context, actor model.Identity, postID int64) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only admins can delete posts", ErrUnauthorized)
	}
	if postID <= 0 {
		return fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}

	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		if err := s.postStorage.DeletePost(ctx, postID); err != nil {
			return fmt.Errorf("delete post %d: %w", postID, err)
		}
		return nil
	})
	if err != nil {
		return storageFailure(err)
	}

	notifyDisplay(ctx, s.invalidator, postID, model.ReasonPostDeleted, s.now())
	return nil
}
