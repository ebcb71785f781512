package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecode_EncodedCursor(t *testing.T) {
	t.Parallel()

	cur := Cursor{ID: 42, CreatedAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}

	got, err := Decode(cur.Encode())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, cur.ID, got.ID)
	require.True(t, cur.CreatedAt.Equal(got.CreatedAt))
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	got, err := Decode(nil)
	require.NoError(t, err)
	require.Nil(t, got)

	empty := ""
	got, err = Decode(&empty)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{name: "not base64", in: "%%%"},
		{name: "not json", in: "bm90LWpzb24="},
		{name: "zero id", in: "eyJpZCI6MH0="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			_, err := Decode(&in)
			require.ErrorIs(t, err, ErrInvalidCursor)
		})
	}
}
