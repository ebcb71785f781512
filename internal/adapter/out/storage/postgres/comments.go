package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"techblog/internal/adapter/out/storage"
	"techblog/internal/model"
	"techblog/internal/service"
	"techblog/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

var commentColumns = []string{
	tableinfo.CommentIDColumn,
	tableinfo.CommentPostIDColumn,
	tableinfo.CommentAuthorIDColumn,
	tableinfo.CommentParentIDColumn,
	tableinfo.CommentContentColumn,
	tableinfo.CommentCreatedAtColumn,
	tableinfo.CommentUpdatedAtColumn,
}

type CommentStorage struct {
	db     DB
	getter *trmpgx.CtxGetter
}

func NewCommentStorage(db DB, getter *trmpgx.CtxGetter) *CommentStorage {
	return &CommentStorage{db: db, getter: getter}
}

func (s *CommentStorage) CreateComment(ctx context.Context, in model.Comment) (model.Comment, error) {
	query, args, err := sq.
		Insert(tableinfo.CommentsTableName).
		Columns(
			tableinfo.CommentPostIDColumn,
			tableinfo.CommentAuthorIDColumn,
			tableinfo.CommentParentIDColumn,
			tableinfo.CommentContentColumn,
			tableinfo.CommentCreatedAtColumn,
			tableinfo.CommentUpdatedAtColumn,
		).
		Values(in.PostID, in.AuthorID, in.ParentID, in.Content, in.CreatedAt, in.UpdatedAt).
		Suffix(returning(commentColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Comment{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanComment(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Comment{}, fmt.Errorf("exec insert comment: %w", err)
	}
	return out, nil
}

func (s *CommentStorage) GetCommentByID(ctx context.Context, commentID int64) (model.Comment, error) {
	return s.getComment(ctx, commentID, false)
}

// GetCommentForUpdate locks the row until the surrounding transaction ends.
func (s *CommentStorage) GetCommentForUpdate(ctx context.Context, commentID int64) (model.Comment, error) {
	return s.getComment(ctx, commentID, true)
}

func (s *CommentStorage) getComment(ctx context.Context, commentID int64, lock bool) (model.Comment, error) {
	qb := sq.
		Select(commentColumns...).
		From(tableinfo.CommentsTableName).
		Where(sq.Eq{tableinfo.CommentIDColumn: commentID}).
		PlaceholderFormat(sq.Dollar)
	if lock {
		qb = qb.Suffix("FOR UPDATE")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return model.Comment{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanComment(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Comment{}, service.ErrNotFound
		}
		return model.Comment{}, fmt.Errorf("exec select comment by id: %w", err)
	}
	return out, nil
}

func (s *CommentStorage) EditComment(ctx context.Context, commentID int64, content string, updatedAt time.Time) (model.Comment, error) {
	return s.updateComment(ctx, commentID, sq.Eq{
		tableinfo.CommentContentColumn:   content,
		tableinfo.CommentUpdatedAtColumn: updatedAt,
	})
}

// TombstoneComment swaps the content for model.Tombstone and leaves
// updated_at alone.
func (s *CommentStorage) TombstoneComment(ctx context.Context, commentID int64) (model.Comment, error) {
	return s.updateComment(ctx, commentID, sq.Eq{
		tableinfo.CommentContentColumn: model.Tombstone,
	})
}

func (s *CommentStorage) updateComment(ctx context.Context, commentID int64, set sq.Eq) (model.Comment, error) {
	query, args, err := sq.
		Update(tableinfo.CommentsTableName).
		SetMap(set).
		Where(sq.Eq{tableinfo.CommentIDColumn: commentID}).
		Suffix(returning(commentColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Comment{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanComment(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Comment{}, service.ErrNotFound
		}
		return model.Comment{}, fmt.Errorf("exec update comment: %w", err)
	}
	return out, nil
}

// DeleteCommentTree deletes the comment with all of its replies and returns
// the number of rows removed.
func (s *CommentStorage) DeleteCommentTree(ctx context.Context, commentID int64) (int64, error) {
	query, args, err := sq.
		Delete(tableinfo.CommentsTableName).
		Prefix(fmt.Sprintf(
			"WITH RECURSIVE subtree AS (SELECT %[1]s FROM %[2]s WHERE %[1]s = ? UNION ALL SELECT c.%[1]s FROM %[2]s c JOIN subtree t ON c.%[3]s = t.%[1]s)",
			tableinfo.CommentIDColumn,
			tableinfo.CommentsTableName,
			tableinfo.CommentParentIDColumn,
		), commentID).
		Where(fmt.Sprintf("%s IN (SELECT %s FROM subtree)", tableinfo.CommentIDColumn, tableinfo.CommentIDColumn)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec delete comment tree: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, service.ErrNotFound
	}
	return tag.RowsAffected(), nil
}

func (s *CommentStorage) GetThread(ctx context.Context, postID int64) ([]model.Comment, error) {
	query, args, err := threadQueryBuilder(storage.GetThreadParams{PostID: postID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}
	return s.queryComments(ctx, query, args)
}

func (s *CommentStorage) GetThreadPage(ctx context.Context, p storage.GetThreadParams) ([]model.Comment, error) {
	query, args, err := threadQueryBuilder(p).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}
	return s.queryComments(ctx, query, args)
}

func threadQueryBuilder(p storage.GetThreadParams) sq.SelectBuilder {
	where := sq.And{sq.Eq{tableinfo.CommentPostIDColumn: p.PostID}}
	if p.After != nil {
		where = append(where, sq.Expr(
			fmt.Sprintf("(%s, %s) > (?, ?)", tableinfo.CommentCreatedAtColumn, tableinfo.CommentIDColumn),
			p.After.CreatedAt, p.After.ID,
		))
	}

	qb := sq.
		Select(commentColumns...).
		From(tableinfo.CommentsTableName).
		Where(where).
		OrderBy(
			fmt.Sprintf("%s ASC", tableinfo.CommentCreatedAtColumn),
			fmt.Sprintf("%s ASC", tableinfo.CommentIDColumn),
		).
		PlaceholderFormat(sq.Dollar)
	if p.Limit > 0 {
		qb = qb.Limit(uint64(p.Limit))
	}
	return qb
}

func (s *CommentStorage) queryComments(ctx context.Context, query string, args []any) ([]model.Comment, error) {
	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select comments: %w", err)
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}

func scanComment(row rowScanner) (model.Comment, error) {
	var c model.Comment
	err := row.Scan(
		&c.ID,
		&c.PostID,
		&c.AuthorID,
		&c.ParentID,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
