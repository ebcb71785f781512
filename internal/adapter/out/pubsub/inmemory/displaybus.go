package inmemory

import (
	"context"
	"sync"

	"techblog/internal/model"
	"techblog/pkg/logger"
)

// AllPosts subscribes to events of every post.
const AllPosts int64 = 0

const defaultBuffer = 64

type DisplayBus struct {
	mu sync.RWMutex
	// postID -> subscriber channels
	subs map[int64]map[chan model.DisplayChanged]struct{}
	buf  int
}

func New(buf int) *DisplayBus {
	if buf <= 0 {
		buf = defaultBuffer
	}
	return &DisplayBus{
		subs: make(map[int64]map[chan model.DisplayChanged]struct{}),
		buf:  buf,
	}
}

// Subscribe registers a channel that is closed once ctx is done.
func (b *DisplayBus) Subscribe(ctx context.Context, postID int64) (<-chan model.DisplayChanged, error) {
	ch := make(chan model.DisplayChanged, b.buf)

	b.mu.Lock()
	if b.subs[postID] == nil {
		b.subs[postID] = make(map[chan model.DisplayChanged]struct{})
	}
	b.subs[postID][ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		if set := b.subs[postID]; set != nil {
			delete(set, ch)
			if len(set) == 0 {
				delete(b.subs, postID)
			}
		}
		b.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

// InvalidateDisplay fans the event out to the post's subscribers and to
// AllPosts subscribers. A full subscriber buffer drops the event.
func (b *DisplayBus) InvalidateDisplay(ctx context.Context, ev model.DisplayChanged) error {
	dropped := 0

	b.mu.RLock()
	for _, key := range []int64{ev.PostID, AllPosts} {
		for ch := range b.subs[key] {
			select {
			case ch <- ev:
			default:
				dropped++
			}
		}
	}
	b.mu.RUnlock()

	if dropped > 0 {
		logger.FromContext(ctx).Debug("display event dropped for slow subscribers",
			"post_id", ev.PostID,
			"dropped", dropped,
		)
	}
	return nil
}

func (b *DisplayBus) Subscribers(postID int64) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[postID])
}
