package postgres

import (
	"context"
	"errors"
	"fmt"

	"techblog/internal/model"
	"techblog/internal/service"
	"techblog/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

type LikeStorage struct {
	db     DB
	getter *trmpgx.CtxGetter
}

func NewLikeStorage(db DB, getter *trmpgx.CtxGetter) *LikeStorage {
	return &LikeStorage{db: db, getter: getter}
}

func (s *LikeStorage) GetLike(ctx context.Context, postID, userID int64) (model.Like, error) {
	query, args, err := sq.
		Select(
			tableinfo.LikeIDColumn,
			tableinfo.LikePostIDColumn,
			tableinfo.LikeUserIDColumn,
			tableinfo.LikeCreatedAtColumn,
		).
		From(tableinfo.LikesTableName).
		Where(sq.Eq{
			tableinfo.LikePostIDColumn: postID,
			tableinfo.LikeUserIDColumn: userID,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Like{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	var out model.Like
	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(
		&out.ID,
		&out.PostID,
		&out.UserID,
		&out.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Like{}, service.ErrNotFound
		}
		return model.Like{}, fmt.Errorf("exec select like: %w", err)
	}
	return out, nil
}

// InsertLike returns false when a concurrent toggle already created the row.
func (s *LikeStorage) InsertLike(ctx context.Context, like model.Like) (bool, error) {
	query, args, err := sq.
		Insert(tableinfo.LikesTableName).
		Columns(
			tableinfo.LikePostIDColumn,
			tableinfo.LikeUserIDColumn,
			tableinfo.LikeCreatedAtColumn,
		).
		Values(like.PostID, like.UserID, like.CreatedAt).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%s, %s) DO NOTHING RETURNING %s",
			tableinfo.LikePostIDColumn,
			tableinfo.LikeUserIDColumn,
			tableinfo.LikeIDColumn,
		)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	var id int64
	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exec insert like: %w", err)
	}
	return true, nil
}

// DeleteLike returns false when a concurrent toggle already removed the row.
func (s *LikeStorage) DeleteLike(ctx context.Context, postID, userID int64) (bool, error) {
	query, args, err := sq.
		Delete(tableinfo.LikesTableName).
		Where(sq.Eq{
			tableinfo.LikePostIDColumn: postID,
			tableinfo.LikeUserIDColumn: userID,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("exec delete like: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *LikeStorage) CountLikes(ctx context.Context, postID int64) (int, error) {
	query, args, err := sq.
		Select("COUNT(*)").
		From(tableinfo.LikesTableName).
		Where(sq.Eq{tableinfo.LikePostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	var n int
	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("exec count likes: %w", err)
	}
	return n, nil
}
