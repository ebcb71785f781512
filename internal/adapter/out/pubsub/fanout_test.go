package pubsub

import (
	"context"
	"errors"
	"testing"

	"techblog/internal/model"
	"techblog/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFanout_DeliversToAll(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	first := service.NewMockDisplayInvalidator(ctrl)
	second := service.NewMockDisplayInvalidator(ctrl)

	ev := model.DisplayChanged{PostID: 5, Reason: model.ReasonLikeToggled}
	gomock.InOrder(
		first.EXPECT().InvalidateDisplay(gomock.Any(), ev).Return(nil),
		second.EXPECT().InvalidateDisplay(gomock.Any(), ev).Return(nil),
	)

	require.NoError(t, NewFanout(first, second).InvalidateDisplay(context.Background(), ev))
}

func TestFanout_JoinsErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	failing := service.NewMockDisplayInvalidator(ctrl)
	ok := service.NewMockDisplayInvalidator(ctrl)

	boom := errors.New("broker down")
	failing.EXPECT().InvalidateDisplay(gomock.Any(), gomock.Any()).Return(boom)
	ok.EXPECT().InvalidateDisplay(gomock.Any(), gomock.Any()).Return(nil)

	err := NewFanout(failing, ok).InvalidateDisplay(context.Background(), model.DisplayChanged{PostID: 1})
	require.ErrorIs(t, err, boom)
}

func TestFanout_Empty(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewFanout().InvalidateDisplay(context.Background(), model.DisplayChanged{}))
}
