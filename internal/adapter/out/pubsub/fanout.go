package pubsub

import (
	"context"
	"errors"

	"techblog/internal/model"
)

type invalidator interface {
	InvalidateDisplay(ctx context.Context, ev model.DisplayChanged) error
}

// Fanout delivers every event to all targets in order, even when an earlier
// target fails.
type Fanout struct {
	targets []invalidator
}

func NewFanout(targets ...invalidator) *Fanout {
	f := &Fanout{}
	for _, t := range targets {
		if t != nil {
			f.targets = append(f.targets, t)
		}
	}
	return f
}

func (f *Fanout) InvalidateDisplay(ctx context.Context, ev model.DisplayChanged) error {
	var errs []error
	for _, t := range f.targets {
		if err := t.InvalidateDisplay(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
