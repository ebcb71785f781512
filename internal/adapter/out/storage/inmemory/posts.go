package inmemory

import (
	"context"
	"sync"
	"time"

	"techblog/internal/model"
	"techblog/internal/service"
)

// PostStorage owns posts and cascades their deletion into the comment and
// like storages it was built with.
type PostStorage struct {
	mu    sync.RWMutex
	posts []model.Post
	byID  map[int64]model.Post

	comments *CommentStorage
	likes    *LikeStorage
}

func NewPostStorage(comments *CommentStorage, likes *LikeStorage) *PostStorage {
	return &PostStorage{
		posts:    []model.Post{{}},
		byID:     make(map[int64]model.Post),
		comments: comments,
		likes:    likes,
	}
}

func (s *PostStorage) CreatePost(_ context.Context, in model.Post) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = int64(len(s.posts))
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	if in.UpdatedAt.IsZero() {
		in.UpdatedAt = in.CreatedAt
	}
	s.posts = append(s.posts, in)
	s.byID[in.ID] = in
	return in, nil
}

func (s *PostStorage) GetPostByID(_ context.Context, postID int64) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if post, ok := s.byID[postID]; ok {
		return post, nil
	}
	return model.Post{}, service.ErrNotFound
}

func (s *PostStorage) PostExists(_ context.Context, postID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byID[postID]
	return ok, nil
}

func (s *PostStorage) DeletePost(ctx context.Context, postID int64) error {
	s.mu.Lock()
	if _, ok := s.byID[postID]; !ok {
		s.mu.Unlock()
		return service.ErrNotFound
	}
	delete(s.byID, postID)
	s.posts[postID] = model.Post{}
	s.mu.Unlock()

	if s.comments != nil {
		s.comments.PurgePost(ctx, postID)
	}
	if s.likes != nil {
		s.likes.PurgePost(ctx, postID)
	}
	return nil
}

// GetPostActivity lists posts created or updated at or after since.
func (s *PostStorage) GetPostActivity(_ context.Context, since time.Time) ([]model.PostActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.PostActivity
	for _, p := range s.posts[1:] {
		if p.ID == 0 {
			continue
		}
		if p.CreatedAt.Before(since) && p.UpdatedAt.Before(since) {
			continue
		}
		out = append(out, model.PostActivity{
			PostID:    p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return out, nil
}
