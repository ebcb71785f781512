package model

import "time"

// Tombstone replaces the content of a comment removed by a moderator. The row
// itself stays so that replies keep their parent.
const Tombstone = "삭제된 댓글입니다"

type Comment struct {
	ID        int64
	PostID    int64
	AuthorID  int64
	ParentID  *int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Comment) IsDeleted() bool {
	return c.Content == Tombstone
}

// IsEdited never reports a tombstoned comment as edited.
func (c Comment) IsEdited() bool {
	return !c.IsDeleted() && c.UpdatedAt.After(c.CreatedAt)
}

func (c Comment) IsRoot() bool {
	return c.ParentID == nil
}

type DeletionMode int

const (
	DeletionDeny DeletionMode = iota
	DeletionHard
	DeletionSoft
)

func (m DeletionMode) String() string {
	switch m {
	case DeletionHard:
		return "hard"
	case DeletionSoft:
		return "soft"
	default:
		return "deny"
	}
}

type DeleteResult struct {
	Mode    DeletionMode
	Comment Comment
	// Removed counts physically deleted rows, descendants included.
	Removed int64
}
