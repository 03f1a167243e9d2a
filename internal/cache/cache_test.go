package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ErlanBelekov/wanderstore/internal/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestNoop(t *testing.T) {
	var c cache.Cache = cache.Noop{}
	var dst item

	require.NoError(t, c.Set(context.Background(), "k", item{ID: 1}))
	found, err := c.Get(context.Background(), "k", &dst)
	require.NoError(t, err)
	assert.False(t, found)
}

// TEST_REDIS_ADDR=localhost:6379 go test ./internal/cache/...
func TestRedis_RoundTripAndExpiry(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	c := cache.NewRedis(cache.Config{Addr: addr, TTL: time.Second, Prefix: "test:" + uuid.NewString() + ":"})
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	var dst item
	found, err := c.Get(ctx, "missing", &dst)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "p:1", item{ID: 1, Name: "Wallet"}))
	found, err = c.Get(ctx, "p:1", &dst)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, item{ID: 1, Name: "Wallet"}, dst)

	time.Sleep(1500 * time.Millisecond)
	found, err = c.Get(ctx, "p:1", &dst)
	require.NoError(t, err)
	assert.False(t, found)
}
