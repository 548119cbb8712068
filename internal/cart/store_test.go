package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemedavid/the-peptide-source-ph/internal/money"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, time.Hour)
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := &Cart{}
	c.Add(productA(), nil, 2)
	require.NoError(t, store.Save(ctx, "sess-1", c))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, money.FromPesos(2000), loaded.Total())
}

func TestStoreMissingCartIsEmpty(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, loaded.Lines)
}

func TestStoreCartsAreSessionScoped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := &Cart{}
	c.Add(productA(), nil, 1)
	require.NoError(t, store.Save(ctx, "sess-1", c))

	other, err := store.Load(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, other.Lines)
}

func TestStoreDrop(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := &Cart{}
	c.Add(productA(), nil, 1)
	require.NoError(t, store.Save(ctx, "sess-1", c))
	require.NoError(t, store.Drop(ctx, "sess-1"))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Lines)

	// Dropping an absent cart is not an error.
	require.NoError(t, store.Drop(ctx, "sess-1"))
}
