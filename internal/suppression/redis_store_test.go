package suppression

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client)
}

func TestRedisStoreAddAndCheck(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	ok, err := store.IsSuppressed(ctx, "john.doe@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Add(ctx, "john.doe@example.com", ReasonBounced))

	ok, err = store.IsSuppressed(ctx, "john.doe@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRedisStoreCountsDistinctAddresses(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "a@example.com", ReasonBounced))
	require.NoError(t, store.Add(ctx, "b@example.com", ReasonUnsubscribed))
	require.NoError(t, store.Add(ctx, "a@example.com", ReasonUnsubscribed))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestInMemoryStore(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "jane@example.com", ReasonUnsubscribed))

	ok, err := store.IsSuppressed(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.IsSuppressed(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
