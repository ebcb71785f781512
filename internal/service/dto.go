package service

import (
	"errors"
	"fmt"

	"techblog/internal/adapter/out/storage"
	"techblog/internal/model"
	"techblog/pkg/pagination"
)

type CreateCommentRequest struct {
	PostID   int64  `validate:"required,gt=0"`
	ParentID *int64 `validate:"omitempty,gt=0"`
	AuthorID int64
	Content  string `validate:"required"`
}

type EditCommentRequest struct {
	CommentID int64 `validate:"required,gt=0"`
	EditorID  int64
	Content   string `validate:"required"`
}

type DeleteCommentRequest struct {
	CommentID int64 `validate:"required,gt=0"`
	Actor     model.Identity
}

type CreatePostRequest struct {
	Actor    model.Identity
	Title    string `validate:"required,max=200"`
	Category string `validate:"required,max=64"`
	Content  string `validate:"required"`
}

func toGetThreadParams(postID int64, in pagination.PageRequest) (storage.GetThreadParams, error) {
	if postID <= 0 {
		return storage.GetThreadParams{}, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}

	if in.Limit <= 0 {
		in.Limit = DefaultCommentsLimit
	}
	in.Limit = min(in.Limit, MaxCommentsLimit)

	after, err := pagination.Decode(in.AfterCursor)
	if err != nil {
		return storage.GetThreadParams{}, fmt.Errorf("decoding after-cursor: %w", errors.Join(ErrInvalidRequest, err))
	}

	return storage.GetThreadParams{
		PostID: postID,
		After:  after,
		Limit:  in.Limit,
	}, nil
}
