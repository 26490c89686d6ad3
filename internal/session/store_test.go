package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutExistsDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	alive, err := store.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, alive)

	require.NoError(t, store.Put(ctx, "s1", time.Hour))
	alive, err = store.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, alive)

	require.NoError(t, store.Delete(ctx, "s1"))
	alive, err = store.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, alive)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "s1", -time.Second))
	alive, err := store.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, alive)
}

func TestMemoryStoreDeleteMissingIsNoOp(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Delete(context.Background(), "never-existed"))
}
