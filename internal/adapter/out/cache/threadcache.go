package cache

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"techblog/internal/model"
	"techblog/pkg/logger"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultThreadCacheSize = 256

type threadReader interface {
	GetThread(ctx context.Context, postID int64) ([]model.Comment, error)
}

// ThreadCache keeps recently read threads in an LRU keyed by post id.
// InvalidateDisplay evicts a post; a load that raced with an eviction is
// returned to the caller but not stored.
type ThreadCache struct {
	next  threadReader
	items *lru.Cache[int64, []model.Comment]

	mu  sync.Mutex
	gen map[int64]uint64
}

func NewThreadCache(next threadReader, size int) (*ThreadCache, error) {
	if size <= 0 {
		size = DefaultThreadCacheSize
	}
	items, err := lru.New[int64, []model.Comment](size)
	if err != nil {
		return nil, fmt.Errorf("create thread lru: %w", err)
	}
	return &ThreadCache{
		next:  next,
		items: items,
		gen:   make(map[int64]uint64),
	}, nil
}

func (c *ThreadCache) GetThread(ctx context.Context, postID int64) ([]model.Comment, error) {
	if thread, ok := c.items.Get(postID); ok {
		logger.FromContext(ctx).Debug("thread cache hit", "post_id", postID)
		return slices.Clone(thread), nil
	}

	c.mu.Lock()
	gen := c.gen[postID]
	c.mu.Unlock()

	thread, err := c.next.GetThread(ctx, postID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.gen[postID] == gen {
		c.items.Add(postID, slices.Clone(thread))
	}
	c.mu.Unlock()

	return thread, nil
}

func (c *ThreadCache) InvalidateDisplay(_ context.Context, ev model.DisplayChanged) error {
	c.mu.Lock()
	c.gen[ev.PostID]++
	c.items.Remove(ev.PostID)
	c.mu.Unlock()
	return nil
}

func (c *ThreadCache) Len() int {
	return c.items.Len()
}
