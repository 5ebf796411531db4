package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	in := map[string]int{"a": 2, "b": 1}
	require.NoError(t, store.SetJSON(ctx, "cart:s1", in))

	var out map[string]int
	require.NoError(t, store.GetJSON(ctx, "cart:s1", &out))
	assert.Equal(t, in, out)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	var out map[string]int
	err := store.GetJSON(context.Background(), "cart:absent", &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.SetJSON(ctx, "cart:s1", map[string]int{"a": 1}))
	require.NoError(t, store.Delete(ctx, "cart:s1"))

	var out map[string]int
	assert.ErrorIs(t, store.GetJSON(ctx, "cart:s1", &out), ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(-time.Second)
	ctx := context.Background()

	require.NoError(t, store.SetJSON(ctx, "cart:s1", map[string]int{"a": 1}))

	var out map[string]int
	assert.ErrorIs(t, store.GetJSON(ctx, "cart:s1", &out), ErrNotFound)
}

func TestNewTokenIsUnique(t *testing.T) {
	assert.NotEqual(t, NewToken(), NewToken())
}
