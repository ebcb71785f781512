package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"techblog/internal/model"
	"techblog/pkg/logger"
	"techblog/pkg/pagination"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultCommentsLimit = 50
	MaxCommentsLimit     = 250
)

type CommentService struct {
	trManager   TxManager
	comments    CommentStorage
	posts       PostStorage
	threads     ThreadReader
	invalidator DisplayInvalidator
	subscriber  DisplaySubscriber
	now         func() time.Time
}

func NewCommentService(
	trManager TxManager,
	comments CommentStorage,
	posts PostStorage,
	invalidator DisplayInvalidator,
	subscriber DisplaySubscriber,
) *CommentService {
	return &CommentService{
		trManager:   trManager,
		comments:    comments,
		posts:       posts,
		threads:     comments,
		invalidator: invalidator,
		subscriber:  subscriber,
		now:         time.Now,
	}
}

// WithThreadReader routes ListThread through r, typically a cache in front of
// the comment storage.
func (s *CommentService) WithThreadReader(r ThreadReader) *CommentService {
	if r != nil {
		s.threads = r
	}
	return s
}

func (s *CommentService) CreateComment(ctx context.Context, req CreateCommentRequest) (model.Comment, error) {
	if req.AuthorID <= 0 {
		return model.Comment{}, fmt.Errorf("%w: anonymous author", ErrUnauthorized)
	}

	req.Content = strings.TrimSpace(req.Content)
	if err := validator.New().Struct(req); err != nil {
		return model.Comment{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.Content == model.Tombstone {
		logger.FromContext(ctx).Warn("comment content equals tombstone", "post_id", req.PostID, "author_id", req.AuthorID)
	}

	var created model.Comment
	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		if err := s.ensurePost(ctx, req.PostID); err != nil {
			return err
		}

		if req.ParentID != nil {
			parent, err := s.comments.GetCommentByID(ctx, *req.ParentID)
			if err != nil {
				return fmt.Errorf("get parent comment %d: %w", *req.ParentID, err)
			}
			if parent.PostID != req.PostID {
				return fmt.Errorf("%w: parent %d belongs to post %d", ErrInvalidRequest, parent.ID, parent.PostID)
			}
		}

		now := s.now()
		c, err := s.comments.CreateComment(ctx, model.Comment{
			PostID:    req.PostID,
			AuthorID:  req.AuthorID,
			ParentID:  req.ParentID,
			Content:   req.Content,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		created = c
		return nil
	})
	if err != nil {
		return model.Comment{}, storageFailure(err)
	}

	notifyDisplay(ctx, s.invalidator, created.PostID, model.ReasonCommentCreated, created.CreatedAt)
	return created, nil
}

func (s *CommentService) EditComment(ctx context.Context, req EditCommentRequest) (model.Comment, error) {
	if req.EditorID <= 0 {
		return model.Comment{}, fmt.Errorf("%w: anonymous editor", ErrUnauthorized)
	}

	req.Content = strings.TrimSpace(req.Content)
	if err := validator.New().Struct(req); err != nil {
		return model.Comment{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var edited model.Comment
	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		c, err := s.comments.GetCommentForUpdate(ctx, req.CommentID)
		if err != nil {
			return fmt.Errorf("lock comment %d: %w", req.CommentID, err)
		}
		if c.AuthorID != req.EditorID {
			return fmt.Errorf("%w: comment %d is not owned by user %d", ErrUnauthorized, c.ID, req.EditorID)
		}
		if c.IsDeleted() {
			// Authors may overwrite a moderator's tombstone. Kept visible in logs.
			logger.FromContext(ctx).Warn("editing tombstoned comment", "comment_id", c.ID, "author_id", c.AuthorID)
		}

		edited, err = s.comments.EditComment(ctx, c.ID, req.Content, s.now())
		if err != nil {
			return fmt.Errorf("edit comment %d: %w", c.ID, err)
		}
		return nil
	})
	if err != nil {
		return model.Comment{}, storageFailure(err)
	}

	notifyDisplay(ctx, s.invalidator, edited.PostID, model.ReasonCommentEdited, edited.UpdatedAt)
	return edited, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, req DeleteCommentRequest) (model.DeleteResult, error) {
	if !req.Actor.IsAuthenticated() {
		return model.DeleteResult{}, fmt.Errorf("%w: anonymous actor", ErrUnauthorized)
	}
	if err := validator.New().Struct(req); err != nil {
		return model.DeleteResult{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var res model.DeleteResult
	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		c, err := s.comments.GetCommentForUpdate(ctx, req.CommentID)
		if err != nil {
			return fmt.Errorf("lock comment %d: %w", req.CommentID, err)
		}

		mode := DecideDeletion(c.AuthorID == req.Actor.UserID, req.Actor.Role)
		switch mode {
		case model.DeletionHard:
			removed, err := s.comments.DeleteCommentTree(ctx, c.ID)
			if err != nil {
				return fmt.Errorf("delete comment %d: %w", c.ID, err)
			}
			res = model.DeleteResult{Mode: mode, Comment: c, Removed: removed}
		case model.DeletionSoft:
			t, err := s.comments.TombstoneComment(ctx, c.ID)
			if err != nil {
				return fmt.Errorf("tombstone comment %d: %w", c.ID, err)
			}
			res = model.DeleteResult{Mode: mode, Comment: t}
		default:
			return fmt.Errorf("%w: user %d may not delete comment %d", ErrUnauthorized, req.Actor.UserID, c.ID)
		}
		return nil
	})
	if err != nil {
		return model.DeleteResult{}, storageFailure(err)
	}

	logger.FromContext(ctx).Info("comment deleted",
		"comment_id", res.Comment.ID,
		"post_id", res.Comment.PostID,
		"mode", res.Mode.String(),
		"removed", res.Removed,
	)
	notifyDisplay(ctx, s.invalidator, res.Comment.PostID, model.ReasonCommentDeleted, s.now())
	return res, nil
}

func (s *CommentService) GetCommentByID(ctx context.Context, commentID int64) (model.Comment, error) {
	if commentID <= 0 {
		return model.Comment{}, ErrInvalidRequest
	}
	c, err := s.comments.GetCommentByID(ctx, commentID)
	if err != nil {
		return model.Comment{}, storageFailure(err)
	}
	return c, nil
}

// ListThread returns every comment of the post ordered by (created_at, id).
func (s *CommentService) ListThread(ctx context.Context, postID int64) ([]model.Comment, error) {
	if postID <= 0 {
		return nil, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, storageFailure(err)
	}

	comments, err := s.threads.GetThread(ctx, postID)
	if err != nil {
		return nil, storageFailure(err)
	}
	return comments, nil
}

func (s *CommentService) ListThreadPage(ctx context.Context, postID int64, in pagination.PageRequest) (pagination.Page[model.Comment], error) {
	var page pagination.Page[model.Comment]

	params, err := toGetThreadParams(postID, in)
	if err != nil {
		return page, err
	}
	if err := s.ensurePost(ctx, postID); err != nil {
		return page, storageFailure(err)
	}

	limit := params.Limit
	params.Limit = limit + 1

	items, err := s.comments.GetThreadPage(ctx, params)
	if err != nil {
		return page, storageFailure(err)
	}

	if len(items) == 0 {
		return page, nil
	}

	if len(items) > limit {
		page.HasNextPage = true
		items = items[:limit]
	}

	page.Items = items
	page.Count = len(items)

	startCursor := pagination.Cursor{
		CreatedAt: items[0].CreatedAt,
		ID:        items[0].ID,
	}
	endCursor := pagination.Cursor{
		CreatedAt: items[len(items)-1].CreatedAt,
		ID:        items[len(items)-1].ID,
	}

	page.StartCursor, page.EndCursor = startCursor.Encode(), endCursor.Encode()
	return page, nil
}

// Listen streams display-change events for the post until ctx is done.
func (s *CommentService) Listen(ctx context.Context, postID int64) (<-chan model.DisplayChanged, error) {
	if s.subscriber == nil {
		return nil, errors.New("no subscriber configured")
	}
	if postID <= 0 {
		return nil, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, storageFailure(err)
	}

	return s.subscriber.Subscribe(ctx, postID)
}

func (s *CommentService) ensurePost(ctx context.Context, postID int64) error {
	ok, err := s.posts.PostExists(ctx, postID)
	if err != nil {
		return fmt.Errorf("check post %d: %w", postID, err)
	}
	if !ok {
		return fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}
	return nil
}
