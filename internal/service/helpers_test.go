package service

import (
	"context"
	"time"
)

// passTx runs fn inline, standing in for a real transaction manager.
type passTx struct {
	calls int
}

func (p *passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func ptrI64(v int64) *int64 { return &v }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
