package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext_DefaultWhenMissing(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestWithLogger_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, "debug", "json")
	ctx := WithLogger(context.Background(), l)

	FromContext(ctx).Debug("hello", "post_id", int64(5))
	require.Contains(t, buf.String(), `"msg":"hello"`)
	require.Contains(t, buf.String(), `"post_id":5`)
}

func TestNew_LevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, "warn", "text")

	l.Info("skipped")
	require.Empty(t, buf.String())

	l.Warn("kept")
	require.Contains(t, buf.String(), "msg=kept")
}
