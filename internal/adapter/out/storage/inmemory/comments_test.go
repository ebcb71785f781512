package inmemory

import (
	"context"
	"testing"
	"time"

	"techblog/internal/adapter/out/storage"
	"techblog/internal/model"
	"techblog/internal/service"
	"techblog/pkg/pagination"

	"github.com/stretchr/testify/require"
)

func TestCommentStorage_CreateAndGetByID(t *testing.T) {
	t.Parallel()

	st := NewCommentStorage()
	ctx := context.Background()

	root, err := st.CreateComment(ctx, model.Comment{PostID: 10, AuthorID: 1, Content: "root"})
	require.NoError(t, err)
	require.Equal(t, int64(1), root.ID)
	require.Nil(t, root.ParentID)
	require.WithinDuration(t, time.Now(), root.CreatedAt, time.Second)
	require.Equal(t, root.CreatedAt, root.UpdatedAt)

	parent := root.ID
	reply, err := st.CreateComment(ctx, model.Comment{PostID: 10, AuthorID: 2, Content: "reply", ParentID: &parent})
	require.NoError(t, err)
	require.Equal(t, int64(2), reply.ID)
	require.Equal(t, parent, *reply.ParentID)

	got, err := st.GetCommentByID(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, reply, got)

	_, err = st.GetCommentByID(ctx, 99)
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = st.GetCommentForUpdate(ctx, 0)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestCommentStorage_EditAndTombstone(t *testing.T) {
	t.Parallel()

	st := NewCommentStorage()
	ctx := context.Background()
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	c, err := st.CreateComment(ctx, model.Comment{PostID: 1, AuthorID: 1, Content: "a", CreatedAt: created})
	require.NoError(t, err)

	edited, err := st.EditComment(ctx, c.ID, "b", created.Add(time.Minute))
	require.NoError(t, err)
	require.Equal(t, "b", edited.Content)
	require.True(t, edited.IsEdited())

	tomb, err := st.TombstoneComment(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, model.Tombstone, tomb.Content)
	require.Equal(t, edited.UpdatedAt, tomb.UpdatedAt)
	require.False(t, tomb.IsEdited())

	_, err = st.EditComment(ctx, 42, "x", created)
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = st.TombstoneComment(ctx, 42)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestCommentStorage_DeleteCommentTree(t *testing.T) {
	t.Parallel()

	st := NewCommentStorage()
	ctx := context.Background()

	// 1 ─ 2 ─ 3
	//   └ 4
	// 5
	mk := func(parent *int64) int64 {
		c, err := st.CreateComment(ctx, model.Comment{PostID: 7, AuthorID: 1, Content: "c", ParentID: parent})
		require.NoError(t, err)
		return c.ID
	}
	one := mk(nil)
	two := mk(&one)
	_ = mk(&two)
	_ = mk(&one)
	five := mk(nil)

	removed, err := st.DeleteCommentTree(ctx, two)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)

	thread, err := st.GetThread(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 4, 5}, commentIDs(thread))

	removed, err = st.DeleteCommentTree(ctx, one)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)

	thread, err = st.GetThread(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, []int64{five}, commentIDs(thread))

	_, err = st.DeleteCommentTree(ctx, two)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestCommentStorage_GetThread_Order(t *testing.T) {
	t.Parallel()

	st := NewCommentStorage()
	ctx := context.Background()
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	// Same timestamp for ids 1 and 2, id 3 is older than both.
	for _, at := range []time.Time{base, base, base.Add(-time.Minute)} {
		_, err := st.CreateComment(ctx, model.Comment{PostID: 3, AuthorID: 1, Content: "c", CreatedAt: at})
		require.NoError(t, err)
	}
	_, err := st.CreateComment(ctx, model.Comment{PostID: 4, AuthorID: 1, Content: "other"})
	require.NoError(t, err)

	thread, err := st.GetThread(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 2}, commentIDs(thread))

	empty, err := st.GetThread(ctx, 99)
	require.NoError(t, err)
	require.Nil(t, empty)
}

func TestCommentStorage_GetThreadPage(t *testing.T) {
	t.Parallel()

	st := NewCommentStorage()
	ctx := context.Background()
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	var all []model.Comment
	for i := 0; i < 5; i++ {
		c, err := st.CreateComment(ctx, model.Comment{PostID: 1, AuthorID: 1, Content: "c", CreatedAt: base.Add(time.Duration(i) * time.Second)})
		require.NoError(t, err)
		all = append(all, c)
	}

	first, err := st.GetThreadPage(ctx, storage.GetThreadParams{PostID: 1, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, commentIDs(first))

	after := pagination.Cursor{CreatedAt: all[1].CreatedAt, ID: all[1].ID}
	second, err := st.GetThreadPage(ctx, storage.GetThreadParams{PostID: 1, After: &after, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, []int64{3, 4}, commentIDs(second))

	last := pagination.Cursor{CreatedAt: all[4].CreatedAt, ID: all[4].ID}
	none, err := st.GetThreadPage(ctx, storage.GetThreadParams{PostID: 1, After: &last, Limit: 2})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestCommentStorage_PurgePost(t *testing.T) {
	t.Parallel()

	st := NewCommentStorage()
	ctx := context.Background()

	c, err := st.CreateComment(ctx, model.Comment{PostID: 1, AuthorID: 1, Content: "a"})
	require.NoError(t, err)
	_, err = st.CreateComment(ctx, model.Comment{PostID: 1, AuthorID: 1, Content: "b", ParentID: &c.ID})
	require.NoError(t, err)
	keep, err := st.CreateComment(ctx, model.Comment{PostID: 2, AuthorID: 1, Content: "c"})
	require.NoError(t, err)

	require.Equal(t, 2, st.PurgePost(ctx, 1))

	thread, err := st.GetThread(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, thread)

	got, err := st.GetCommentByID(ctx, keep.ID)
	require.NoError(t, err)
	require.Equal(t, keep, got)
}

func commentIDs(in []model.Comment) []int64 {
	out := make([]int64, 0, len(in))
	for _, c := range in {
		out = append(out, c.ID)
	}
	return out
}
