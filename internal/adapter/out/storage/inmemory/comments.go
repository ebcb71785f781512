package inmemory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"techblog/internal/adapter/out/storage"
	"techblog/internal/model"
	"techblog/internal/service"
	"techblog/pkg/pagination"
)

// CommentStorage keeps comments in a 1-indexed slice. A removed comment leaves
// a zero value behind so ids are never reused.
type CommentStorage struct {
	mu sync.RWMutex

	comments []model.Comment
	byPost   map[int64][]int64
	byParent map[int64][]int64
}

func NewCommentStorage() *CommentStorage {
	return &CommentStorage{
		comments: []model.Comment{{}},
		byPost:   make(map[int64][]int64),
		byParent: make(map[int64][]int64),
	}
}

func (s *CommentStorage) CreateComment(_ context.Context, in model.Comment) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := in
	c.ID = int64(len(s.comments))
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	if in.ParentID != nil {
		pid := *in.ParentID
		c.ParentID = &pid
	}

	s.comments = append(s.comments, c)
	s.byPost[c.PostID] = append(s.byPost[c.PostID], c.ID)
	if c.ParentID != nil {
		s.byParent[*c.ParentID] = append(s.byParent[*c.ParentID], c.ID)
	}

	return c, nil
}

func (s *CommentStorage) GetCommentByID(_ context.Context, commentID int64) (model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.get(commentID)
}

// GetCommentForUpdate is a plain read. Row locking is provided by the
// transactor serializing every transaction.
func (s *CommentStorage) GetCommentForUpdate(ctx context.Context, commentID int64) (model.Comment, error) {
	return s.GetCommentByID(ctx, commentID)
}

func (s *CommentStorage) EditComment(_ context.Context, commentID int64, content string, updatedAt time.Time) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.get(commentID)
	if err != nil {
		return model.Comment{}, err
	}
	c.Content = content
	c.UpdatedAt = updatedAt
	s.comments[commentID] = c
	return c, nil
}

func (s *CommentStorage) TombstoneComment(_ context.Context, commentID int64) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.get(commentID)
	if err != nil {
		return model.Comment{}, err
	}
	c.Content = model.Tombstone
	s.comments[commentID] = c
	return c, nil
}

// DeleteCommentTree removes the comment and every reply below it.
func (s *CommentStorage) DeleteCommentTree(_ context.Context, commentID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	root, err := s.get(commentID)
	if err != nil {
		return 0, err
	}

	doomed := make(map[int64]struct{})
	queue := []int64{root.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		doomed[id] = struct{}{}
		queue = append(queue, s.byParent[id]...)
	}

	s.byPost[root.PostID] = slices.DeleteFunc(s.byPost[root.PostID], func(id int64) bool {
		_, ok := doomed[id]
		return ok
	})
	if root.ParentID != nil {
		pid := *root.ParentID
		s.byParent[pid] = slices.DeleteFunc(s.byParent[pid], func(id int64) bool { return id == root.ID })
	}
	for id := range doomed {
		delete(s.byParent, id)
		s.comments[id] = model.Comment{}
	}

	return int64(len(doomed)), nil
}

func (s *CommentStorage) GetThread(_ context.Context, postID int64) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.thread(postID), nil
}

func (s *CommentStorage) GetThreadPage(_ context.Context, p storage.GetThreadParams) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.thread(p.PostID)

	start := 0
	if p.After != nil {
		start, _ = slices.BinarySearchFunc(all, *p.After, func(c model.Comment, cur pagination.Cursor) int {
			if n := c.CreatedAt.Compare(cur.CreatedAt); n != 0 {
				return n
			}
			return cmp.Compare(c.ID, cur.ID)
		})
		for start < len(all) && !afterCursor(all[start], *p.After) {
			start++
		}
	}

	if start >= len(all) {
		return nil, nil
	}
	end := min(start+p.Limit, len(all))
	return all[start:end], nil
}

// PurgePost drops every comment of the post.
func (s *CommentStorage) PurgePost(_ context.Context, postID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byPost[postID]
	for _, id := range ids {
		delete(s.byParent, id)
		s.comments[id] = model.Comment{}
	}
	delete(s.byPost, postID)
	return len(ids)
}

func (s *CommentStorage) get(commentID int64) (model.Comment, error) {
	if commentID <= 0 || int(commentID) >= len(s.comments) {
		return model.Comment{}, service.ErrNotFound
	}
	c := s.comments[commentID]
	if c.ID == 0 {
		return model.Comment{}, service.ErrNotFound
	}
	return c, nil
}

func (s *CommentStorage) thread(postID int64) []model.Comment {
	ids := s.byPost[postID]
	if len(ids) == 0 {
		return nil
	}

	out := make([]model.Comment, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.comments[id])
	}
	slices.SortFunc(out, compareComments)
	return out
}

func compareComments(a, b model.Comment) int {
	if n := a.CreatedAt.Compare(b.CreatedAt); n != 0 {
		return n
	}
	return cmp.Compare(a.ID, b.ID)
}

func afterCursor(c model.Comment, cur pagination.Cursor) bool {
	if n := c.CreatedAt.Compare(cur.CreatedAt); n != 0 {
		return n > 0
	}
	return c.ID > cur.ID
}
