package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ptrI64(v int64) *int64 { return &v }

func TestComment_IsEdited(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		c       Comment
		edited  bool
		deleted bool
	}{
		{
			name: "fresh",
			c:    Comment{Content: "hi", CreatedAt: created, UpdatedAt: created},
		},
		{
			name:   "edited",
			c:      Comment{Content: "hi!", CreatedAt: created, UpdatedAt: created.Add(time.Minute)},
			edited: true,
		},
		{
			name:    "tombstone with later updatedAt",
			c:       Comment{Content: Tombstone, CreatedAt: created, UpdatedAt: created.Add(time.Hour)},
			deleted: true,
		},
		{
			name:    "tombstone untouched",
			c:       Comment{Content: Tombstone, CreatedAt: created, UpdatedAt: created},
			deleted: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.edited, tt.c.IsEdited())
			require.Equal(t, tt.deleted, tt.c.IsDeleted())
		})
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	require.Equal(t, RoleAdmin, ParseRole("ADMIN"))
	require.Equal(t, RoleAdmin, ParseRole(" admin "))
	require.Equal(t, RoleUser, ParseRole("USER"))
	require.Equal(t, RoleUser, ParseRole(""))
	require.Equal(t, RoleUser, ParseRole("root"))
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	require.False(t, Identity{}.IsAuthenticated())
	require.False(t, Identity{Role: RoleAdmin}.IsAdmin())
	require.True(t, Identity{UserID: 1, Role: RoleAdmin}.IsAdmin())
	require.False(t, Identity{UserID: 1, Role: RoleUser}.IsAdmin())
}

func TestDeletionMode_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hard", DeletionHard.String())
	require.Equal(t, "soft", DeletionSoft.String())
	require.Equal(t, "deny", DeletionDeny.String())
}

func TestBuildThread(t *testing.T) {
	t.Parallel()

	// 1
	// ├── 2
	// │   └── 4
	// └── 5
	// 3
	comments := []Comment{
		{ID: 1, PostID: 5},
		{ID: 2, PostID: 5, ParentID: ptrI64(1)},
		{ID: 3, PostID: 5},
		{ID: 4, PostID: 5, ParentID: ptrI64(2)},
		{ID: 5, PostID: 5, ParentID: ptrI64(1)},
	}

	th := BuildThread(comments)
	require.Equal(t, 5, th.Len())
	require.Equal(t, []int64{1, 3}, ids(th.Roots()))
	require.Equal(t, []int64{2, 5}, ids(th.Children(1)))
	require.Equal(t, []int64{4}, ids(th.Children(2)))
	require.Nil(t, th.Children(4))

	type visit struct {
		id    int64
		depth int
	}
	var got []visit
	th.Walk(func(c Comment, depth int) bool {
		got = append(got, visit{c.ID, depth})
		return true
	})
	require.Equal(t, []visit{{1, 0}, {2, 1}, {4, 2}, {5, 1}, {3, 0}}, got)

	c, ok := th.Get(4)
	require.True(t, ok)
	require.Equal(t, int64(2), *c.ParentID)

	_, ok = th.Get(42)
	require.False(t, ok)
}

func TestBuildThread_WalkSkip(t *testing.T) {
	t.Parallel()

	th := BuildThread([]Comment{
		{ID: 1},
		{ID: 2, ParentID: ptrI64(1)},
		{ID: 3},
	})

	var got []int64
	th.Walk(func(c Comment, _ int) bool {
		got = append(got, c.ID)
		return c.ID != 1
	})
	require.Equal(t, []int64{1, 3}, got)
}

func TestBuildThread_MissingParentBecomesRoot(t *testing.T) {
	t.Parallel()

	th := BuildThread([]Comment{
		{ID: 7, ParentID: ptrI64(99)},
		{ID: 8, ParentID: ptrI64(7)},
	})
	require.Equal(t, []int64{7}, ids(th.Roots()))
	require.Equal(t, []int64{8}, ids(th.Children(7)))
}

func TestBuildThread_DeepChain(t *testing.T) {
	t.Parallel()

	const depth = 10000
	comments := make([]Comment, 0, depth)
	comments = append(comments, Comment{ID: 1})
	for i := int64(2); i <= depth; i++ {
		comments = append(comments, Comment{ID: i, ParentID: ptrI64(i - 1)})
	}

	maxDepth := 0
	BuildThread(comments).Walk(func(_ Comment, d int) bool {
		maxDepth = max(maxDepth, d)
		return true
	})
	require.Equal(t, depth-1, maxDepth)
}

func ids(in []Comment) []int64 {
	if in == nil {
		return nil
	}
	out := make([]int64, 0, len(in))
	for _, c := range in {
		out = append(out, c.ID)
	}
	return out
}
