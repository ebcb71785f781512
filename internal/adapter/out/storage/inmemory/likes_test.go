package inmemory

import (
	"context"
	"testing"

	"techblog/internal/model"
	"techblog/internal/service"

	"github.com/stretchr/testify/require"
)

func TestLikeStorage_InsertDeleteCount(t *testing.T) {
	t.Parallel()

	st := NewLikeStorage()
	ctx := context.Background()

	_, err := st.GetLike(ctx, 1, 1)
	require.ErrorIs(t, err, service.ErrNotFound)

	ok, err := st.InsertLike(ctx, model.Like{PostID: 1, UserID: 1})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.InsertLike(ctx, model.Like{PostID: 1, UserID: 1})
	require.NoError(t, err)
	require.False(t, ok, "second insert for the same pair is a no-op")

	_, err = st.InsertLike(ctx, model.Like{PostID: 1, UserID: 2})
	require.NoError(t, err)

	n, err := st.CountLikes(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	l, err := st.GetLike(ctx, 1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), l.ID)
	require.False(t, l.CreatedAt.IsZero())

	ok, err = st.DeleteLike(ctx, 1, 1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.DeleteLike(ctx, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	n, err = st.CountLikes(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestLikeStorage_PurgePost(t *testing.T) {
	t.Parallel()

	st := NewLikeStorage()
	ctx := context.Background()

	for _, l := range []model.Like{{PostID: 1, UserID: 1}, {PostID: 1, UserID: 2}, {PostID: 2, UserID: 1}} {
		_, err := st.InsertLike(ctx, l)
		require.NoError(t, err)
	}

	require.Equal(t, 2, st.PurgePost(ctx, 1))

	n, err := st.CountLikes(ctx, 1)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = st.CountLikes(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
