package neat

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *CheckpointStore {
	t.Helper()
	store := NewCheckpointStore(filepath.Join(t.TempDir(), "checkpoints.db"))
	require.NoError(t, store.Init(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCheckpointStoreSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	g := NewGenome(3, 2)
	g.AddNodeMutation()
	g.Fitness = 12.5

	require.NoError(t, store.SaveGeneration(ctx, "run-a", 1, g))

	restored, found, err := store.LoadGeneration(ctx, "run-a", 1)
	require.NoError(t, err)
	require.True(t, found)

	want, err := Serialize(g)
	require.NoError(t, err)
	got, err := Serialize(restored)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCheckpointStoreLatestGeneration(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	g := NewGenome(2, 1)
	for gen := 1; gen <= 3; gen++ {
		g.Fitness = float64(gen)
		require.NoError(t, store.SaveGeneration(ctx, "run-a", gen, g))
	}
	require.NoError(t, store.SaveGeneration(ctx, "run-b", 10, g))

	latest, found, err := store.LatestGeneration(ctx, "run-a")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, latest)

	latest, found, err = store.LatestGeneration(ctx, "run-b")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 10, latest)
}

func TestCheckpointStoreMissingRecord(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	g, found, err := store.LoadGeneration(ctx, "no-such-run", 1)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, g)

	_, found, err = store.LatestGeneration(ctx, "no-such-run")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCheckpointStoreOverwritesSameGeneration(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	g := NewGenome(2, 1)
	g.Fitness = 1.0
	require.NoError(t, store.SaveGeneration(ctx, "run-a", 5, g))

	g.Fitness = 2.0
	require.NoError(t, store.SaveGeneration(ctx, "run-a", 5, g))

	restored, found, err := store.LoadGeneration(ctx, "run-a", 5)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2.0, restored.Fitness)
}

func TestCheckpointStoreRequiresInit(t *testing.T) {
	ctx := context.Background()
	store := NewCheckpointStore(filepath.Join(t.TempDir(), "checkpoints.db"))

	g := NewGenome(1, 1)
	err := store.SaveGeneration(ctx, "run-a", 1, g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")

	_, _, err = store.LoadGeneration(ctx, "run-a", 1)
	assert.Error(t, err)

	_, _, err = store.LatestGeneration(ctx, "run-a")
	assert.Error(t, err)
}

func TestCheckpointStoreEmptyPath(t *testing.T) {
	store := NewCheckpointStore("")
	err := store.Init(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path is required")
}

func TestCheckpointStoreInitIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Init(context.Background()))
}

func TestCheckpointStoreCloseIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
