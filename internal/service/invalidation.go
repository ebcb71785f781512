package service

import (
	"context"
	"time"

	"techblog/internal/model"
	"techblog/pkg/logger"
)

// notifyDisplay runs after commit. Failures are logged and swallowed.
func notifyDisplay(ctx context.Context, inv DisplayInvalidator, postID int64, reason model.DisplayReason, at time.Time) {
	if inv == nil {
		return
	}
	ev := model.DisplayChanged{PostID: postID, Reason: reason, At: at}
	if err := inv.InvalidateDisplay(ctx, ev); err != nil {
		logger.FromContext(ctx).Warn("display invalidation failed",
			"post_id", postID,
			"reason", string(reason),
			"err", err,
		)
	}
}
