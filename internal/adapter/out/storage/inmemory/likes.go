package inmemory

import (
	"context"
	"sync"
	"time"

	"techblog/internal/model"
	"techblog/internal/service"
)

type likeKey struct {
	postID int64
	userID int64
}

// LikeStorage enforces one like per (post, user) through its map key.
type LikeStorage struct {
	mu sync.RWMutex

	nextID int64
	likes  map[likeKey]model.Like
	byPost map[int64]int
}

func NewLikeStorage() *LikeStorage {
	return &LikeStorage{
		likes:  make(map[likeKey]model.Like),
		byPost: make(map[int64]int),
	}
}

func (s *LikeStorage) GetLike(_ context.Context, postID, userID int64) (model.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.likes[likeKey{postID, userID}]
	if !ok {
		return model.Like{}, service.ErrNotFound
	}
	return l, nil
}

func (s *LikeStorage) InsertLike(_ context.Context, in model.Like) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{in.PostID, in.UserID}
	if _, ok := s.likes[key]; ok {
		return false, nil
	}

	s.nextID++
	in.ID = s.nextID
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.likes[key] = in
	s.byPost[in.PostID]++
	return true, nil
}

func (s *LikeStorage) DeleteLike(_ context.Context, postID, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{postID, userID}
	if _, ok := s.likes[key]; !ok {
		return false, nil
	}
	delete(s.likes, key)
	s.byPost[postID]--
	if s.byPost[postID] <= 0 {
		delete(s.byPost, postID)
	}
	return true, nil
}

func (s *LikeStorage) CountLikes(_ context.Context, postID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.byPost[postID], nil
}

// PurgePost drops every like of the post.
func (s *LikeStorage) PurgePost(_ context.Context, postID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key := range s.likes {
		if key.postID == postID {
			delete(s.likes, key)
			n++
		}
	}
	delete(s.byPost, postID)
	return n
}
