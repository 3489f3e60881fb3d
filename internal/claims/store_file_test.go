package claims

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "claimed.json")

	store := NewFileStore(path)
	_, err := store.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Add(ctx, "dom-1"))
	require.NoError(t, store.Add(ctx, "dom-2"))
	require.NoError(t, store.Add(ctx, "dom-1")) // duplicate is a no-op

	// A fresh store reading the same file sees the same set
	reloaded := NewFileStore(path)
	ids, err := reloaded.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dom-1", "dom-2"}, ids)
}

func TestFileStoreLoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "claimed.json")
	require.NoError(t, os.WriteFile(path, []byte(`["dom-1","dom-2"]`), 0o644))

	store := NewFileStore(path)

	first, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"dom-1", "dom-2"}, first)

	second, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dom-1", "dom-2"}, second)

	// An add after a reload must not drop previously persisted claims
	require.NoError(t, store.Add(ctx, "dom-3"))

	ids, err := NewFileStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dom-1", "dom-2", "dom-3"}, ids)
}

func TestFileStoreMissingFileIsEmptySet(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "nope", "claimed.json"))

	ids, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileStoreCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "claimed.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{not json"), 0o644))

	store := NewFileStore(path)
	_, err := store.Load(ctx)

	// The store surfaces the error; the service above it fails open
	require.Error(t, err)
}

func TestFileStoreLegacyBareArray(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "claimed.json")
	require.NoError(t, os.WriteFile(path, []byte(`["dom-1","dom-2"]`), 0o644))

	store := NewFileStore(path)
	ids, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dom-1", "dom-2"}, ids)
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "claimed.json")

	store := NewFileStore(path)
	require.NoError(t, store.Add(ctx, "dom-1"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dom-1")
	assert.Contains(t, string(data), `"version": 1`)
}
