package inmemory

import (
	"context"
	"sync"
)

// Transactor serializes transactions. Writes are applied as they happen, so
// a failing fn keeps whatever it wrote before the error.
type Transactor struct {
	mu sync.Mutex
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
