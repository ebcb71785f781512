package service

import (
	"context"
	"testing"
	"time"

	"techblog/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDailyCounts(t *testing.T) {
	t.Parallel()

	day := func(d int, h int) time.Time { return time.Date(2024, 3, d, h, 0, 0, 0, time.UTC) }

	counts := DailyCounts([]model.PostActivity{
		{PostID: 1, CreatedAt: day(10, 8), UpdatedAt: day(10, 9)},
		{PostID: 2, CreatedAt: day(10, 10), UpdatedAt: day(12, 9)},
		{PostID: 3, CreatedAt: day(11, 1)},
		// 08:30 on the 12th in KST is still the 11th in UTC.
		{PostID: 4, CreatedAt: time.Date(2024, 3, 12, 8, 30, 0, 0, time.FixedZone("KST", 9*3600))},
	})

	require.Equal(t, map[string]int{
		"2024-03-10": 2,
		"2024-03-11": 2,
		"2024-03-12": 1,
	}, map[string]int(counts))
}

func TestActivityService_Calendar(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ms := NewMockPostStorage(ctrl)

	today := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	ms.EXPECT().
		GetPostActivity(gomock.Any(), time.Date(2023, 3, 12, 0, 0, 0, 0, time.UTC)).
		Return([]model.PostActivity{
			{PostID: 1, CreatedAt: time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)},
			{PostID: 2, CreatedAt: time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)},
			{PostID: 3, CreatedAt: time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC)},
			{PostID: 4, CreatedAt: time.Date(2024, 3, 10, 4, 0, 0, 0, time.UTC)},
			{PostID: 5, CreatedAt: time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)},
		}, nil)

	grid, err := NewActivityService(ms, 0).Calendar(context.Background(), today)
	require.NoError(t, err)

	require.Zero(t, grid.DayCount()%7)
	require.Equal(t, time.Sunday, grid.Start.Weekday())
	require.Equal(t, 5, grid.Total)
	require.Equal(t, 3, grid.MaxLevel)

	last := grid.Weeks[len(grid.Weeks)-1]
	require.Equal(t, "2024-03-10", last.Days[0].Key())
	require.Equal(t, 5, last.Days[0].Count)
	require.Equal(t, 3, last.Days[0].Level)
}
