package cartstore

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"retrokick/config"
	"retrokick/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *fileStore {
	t.Helper()

	cfg := &config.Config{Cart: &config.CartConfig{StoragePath: t.TempDir()}}

	store, err := New(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	require.NoError(t, err)

	fs, ok := store.(*fileStore)
	require.True(t, ok)

	return fs
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cart := &entity.Cart{SessionID: "sess-1"}
	cart.AddItem(entity.CartItem{ProductID: "1", Name: "Barcelona Home Jersey", UnitPrice: 6999, Size: "M", Quantity: 2})

	require.NoError(t, store.Save(ctx, cart))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", loaded.SessionID)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.InDelta(t, 6999.0, loaded.Items[0].UnitPrice, 0.001)
}

func TestFileStore_LoadMissingReturnsEmptyCart(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.Equal(t, "never-saved", loaded.SessionID)
	assert.True(t, loaded.IsEmpty())
}

func TestFileStore_LoadCorruptReturnsEmptyCart(t *testing.T) {
	store := newTestStore(t)

	path := filepath.Join(store.dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	loaded, err := store.Load(context.Background(), "broken")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestFileStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cart := &entity.Cart{SessionID: "sess-2"}
	cart.AddItem(entity.CartItem{ProductID: "5", Name: "AC Milan Retro 2007", UnitPrice: 8999, Size: "L", Quantity: 1})
	require.NoError(t, store.Save(ctx, cart))

	require.NoError(t, store.Delete(ctx, "sess-2"))

	loaded, err := store.Load(ctx, "sess-2")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())

	// Deleting again is a no-op.
	require.NoError(t, store.Delete(ctx, "sess-2"))
}

func TestFileStore_PathTraversalIsNeutralized(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cart := &entity.Cart{SessionID: "../escape"}
	cart.AddItem(entity.CartItem{ProductID: "1", Name: "Barcelona Home Jersey", UnitPrice: 6999, Size: "S", Quantity: 1})
	require.NoError(t, store.Save(ctx, cart))

	entries, err := os.ReadDir(store.dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "/")
}
