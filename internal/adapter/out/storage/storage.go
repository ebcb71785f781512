package storage

import "techblog/pkg/pagination"

// GetThreadParams selects one page of a post's comments in (created_at, id)
// order. A nil After starts at the oldest comment.
type GetThreadParams struct {
	PostID int64
	After  *pagination.Cursor
	Limit  int
}
