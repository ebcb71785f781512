package service

import (
	"context"
	"time"

	"techblog/internal/adapter/out/storage"
	"techblog/internal/model"
)

//go:generate mockgen -source=contracts.go -destination=./contracts_mock.go -package=service

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// CommentStorage returns ErrNotFound for missing rows. Mutating methods are
// expected to run inside TxManager.Do.
type CommentStorage interface {
	CreateComment(ctx context.Context, c model.Comment) (model.Comment, error)
	GetCommentByID(ctx context.Context, commentID int64) (model.Comment, error)
	GetCommentForUpdate(ctx context.Context, commentID int64) (model.Comment, error)
	EditComment(ctx context.Context, commentID int64, content string, updatedAt time.Time) (model.Comment, error)
	TombstoneComment(ctx context.Context, commentID int64) (model.Comment, error)
	DeleteCommentTree(ctx context.Context, commentID int64) (int64, error)
	GetThread(ctx context.Context, postID int64) ([]model.Comment, error)
	GetThreadPage(ctx context.Context, params storage.GetThreadParams) ([]model.Comment, error)
}

type PostStorage interface {
	PostExists(ctx context.Context, postID int64) (bool, error)
	CreatePost(ctx context.Context, p model.Post) (model.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	GetPostActivity(ctx context.Context, since time.Time) ([]model.PostActivity, error)
}

type LikeStorage interface {
	GetLike(ctx context.Context, postID, userID int64) (model.Like, error)
	// InsertLike reports false when the (post, user) pair already existed.
	InsertLike(ctx context.Context, like model.Like) (bool, error)
	// DeleteLike reports false when there was nothing to delete.
	DeleteLike(ctx context.Context, postID, userID int64) (bool, error)
	CountLikes(ctx context.Context, postID int64) (int, error)
}

type ThreadReader interface {
	GetThread(ctx context.Context, postID int64) ([]model.Comment, error)
}

type DisplayInvalidator interface {
	InvalidateDisplay(ctx context.Context, ev model.DisplayChanged) error
}

type DisplaySubscriber interface {
	Subscribe(ctx context.Context, postID int64) (<-chan model.DisplayChanged, error)
}
