package service

import (
	"context"
	"time"

	"techblog/internal/model"
	"techblog/pkg/calendar"
)

type ActivityService struct {
	postStorage PostStorage
	windowDays  int
}

func NewActivityService(postStorage PostStorage, windowDays int) *ActivityService {
	if windowDays <= 0 {
		windowDays = calendar.DefaultWindowDays
	}
	return &ActivityService{
		postStorage: postStorage,
		windowDays:  windowDays,
	}
}

// Calendar builds the contribution grid ending at today.
func (s *ActivityService) Calendar(ctx context.Context, today time.Time) (calendar.Grid, error) {
	since := calendar.Day(today).AddDate(0, 0, -(s.windowDays - 1))

	activity, err := s.postStorage.GetPostActivity(ctx, since)
	if err != nil {
		return calendar.Grid{}, storageFailure(err)
	}

	return calendar.Build(DailyCounts(activity), today, s.windowDays), nil
}

// DailyCounts counts one contribution on the day a post was created and one
// more on the day it was last updated, when that is a different UTC day.
func DailyCounts(activity []model.PostActivity) calendar.DailyCounts {
	counts := make(calendar.DailyCounts, len(activity))
	for _, a := range activity {
		created := a.CreatedAt.UTC().Format(calendar.DateLayout)
		counts[created]++

		if a.UpdatedAt.IsZero() {
			continue
		}
		if updated := a.UpdatedAt.UTC().Format(calendar.DateLayout); updated != created {
			counts[updated]++
		}
	}
	return counts
}
