package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techblog/config"

	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		StorageType: config.StorageMemory,
		HTTP:        config.HTTPConfig{Port: "0"},
		Cache:       config.CacheConfig{ThreadSize: 4},
		SSE:         config.SSEConfig{Buffer: 4},
	}
}

func TestNewApp_MemoryWiring(t *testing.T) {
	t.Parallel()

	a, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	srv := httptest.NewServer(a.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/posts",
		strings.NewReader(`{"title":"Hello","category":"go","content":"body"}`))
	require.NoError(t, err)
	req.Header.Set("X-User-ID", "1")
	req.Header.Set("X-User-Role", "ADMIN")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var post struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	require.Positive(t, post.ID)
}

func TestNewApp_UnknownStorage(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	cfg.StorageType = "badger"

	_, err := NewApp(context.Background(), cfg)
	require.ErrorContains(t, err, "unknown storage type")
}

func TestRun_StopsOnCancel(t *testing.T) {
	t.Parallel()

	a, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, a.Run(ctx))
}
