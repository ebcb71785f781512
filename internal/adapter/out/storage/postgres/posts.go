package postgres

import (
	"context"
	"fmt"
	"time"

	"techblog/internal/model"
	"techblog/internal/service"
	"techblog/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
)

var postColumns = []string{
	tableinfo.PostIDColumn,
	tableinfo.PostAuthorIDColumn,
	tableinfo.PostTitleColumn,
	tableinfo.PostCategoryColumn,
	tableinfo.PostContentColumn,
	tableinfo.PostCreatedAtColumn,
	tableinfo.PostUpdatedAtColumn,
}

type PostStorage struct {
	db     DB
	getter *trmpgx.CtxGetter
}

func NewPostStorage(db DB, getter *trmpgx.CtxGetter) *PostStorage {
	return &PostStorage{db: db, getter: getter}
}

func (s *PostStorage) CreatePost(ctx context.Context, in model.Post) (model.Post, error) {
	query, args, err := sq.
		Insert(tableinfo.PostsTableName).
		Columns(
			tableinfo.PostAuthorIDColumn,
			tableinfo.PostTitleColumn,
			tableinfo.PostCategoryColumn,
			tableinfo.PostContentColumn,
			tableinfo.PostCreatedAtColumn,
			tableinfo.PostUpdatedAtColumn,
		).
		Values(in.AuthorID, in.Title, in.Category, in.Content, in.CreatedAt, in.UpdatedAt).
		Suffix(returning(postColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	var out model.Post
	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(
		&out.ID,
		&out.AuthorID,
		&out.Title,
		&out.Category,
		&out.Content,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return model.Post{}, fmt.Errorf("exec insert post: %w", err)
	}
	return out, nil
}

func (s *PostStorage) PostExists(ctx context.Context, postID int64) (bool, error) {
	query, args, err := sq.
		Select("1").
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	var exists bool
	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exec select post exists: %w", err)
	}
	return exists, nil
}

// DeletePost relies on ON DELETE CASCADE to remove the post's comments and likes.
func (s *PostStorage) DeletePost(ctx context.Context, postID int64) error {
	query, args, err := sq.
		Delete(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *PostStorage) GetPostActivity(ctx context.Context, since time.Time) ([]model.PostActivity, error) {
	query, args, err := sq.
		Select(
			tableinfo.PostIDColumn,
			tableinfo.PostCreatedAtColumn,
			tableinfo.PostUpdatedAtColumn,
		).
		From(tableinfo.PostsTableName).
		Where(sq.Or{
			sq.GtOrEq{tableinfo.PostCreatedAtColumn: since},
			sq.GtOrEq{tableinfo.PostUpdatedAtColumn: since},
		}).
		OrderBy(fmt.Sprintf("%s ASC", tableinfo.PostIDColumn)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select post activity: %w", err)
	}
	defer rows.Close()

	var out []model.PostActivity
	for rows.Next() {
		var a model.PostActivity
		if err := rows.Scan(&a.PostID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post activity: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}
