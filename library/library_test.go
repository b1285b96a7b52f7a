package library

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsphweid/mid2text/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore runs the behavior every Store must share.
func testStore(t *testing.T, store Store) {
	ctx := context.Background()
	assert := assert.New(t)

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(entries)

	_, err = store.Get(ctx, "missing")
	assert.True(errors.Is(err, ErrNotFound))

	intro := NewEntry("intro", "G.I.K", "pling")
	outro := NewEntry("outro", "!G1!G")
	require.NoError(t, store.Put(ctx, outro))
	require.NoError(t, store.Put(ctx, intro))

	got, err := store.Get(ctx, "intro")
	require.NoError(t, err)
	assert.Equal(intro.ID, got.ID)
	assert.Equal("G.I.K", got.Macro)
	assert.Equal([]string{"pling"}, got.Instruments)
	assert.True(intro.CreatedAt.Equal(got.CreatedAt))

	entries, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal("intro", entries[0].Name)
	assert.Equal("outro", entries[1].Name)
	assert.Empty(entries[1].Instruments)

	replaced := NewEntry("intro", "@G")
	require.NoError(t, store.Put(ctx, replaced))
	got, err = store.Get(ctx, "intro")
	require.NoError(t, err)
	assert.Equal("@G", got.Macro)
	assert.Equal(replaced.ID, got.ID)

	require.NoError(t, store.Delete(ctx, "intro"))
	require.NoError(t, store.Delete(ctx, "intro"))
	_, err = store.Get(ctx, "intro")
	assert.True(errors.Is(err, ErrNotFound))

	assert.Error(store.Put(ctx, NewEntry("  ", "G")))
}

func TestBadger(t *testing.T) {
	store, err := NewBadger(BadgerOptions{InMemory: true})
	require.NoError(t, err)
	defer store.Close()

	testStore(t, store)
}

func TestBadgerOnDisk(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(config.Library{Backend: config.BackendBadger, Dir: dir})
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), NewEntry("kept", "G")))
	require.NoError(t, store.Close())

	store, err = NewBadger(BadgerOptions{Dir: dir})
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Get(context.Background(), "kept")
	require.NoError(t, err)
	assert.Equal(t, "G", got.Macro)
}

func TestBadgerRequiresDir(t *testing.T) {
	_, err := NewBadger(BadgerOptions{})
	assert.Error(t, err)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(config.Library{Backend: "floppy"})
	assert.ErrorContains(t, err, "floppy")
}

func TestNewEntry(t *testing.T) {
	before := time.Now()
	e := NewEntry("a", "G", "hat", "snare")

	assert.NotEmpty(t, e.ID)
	assert.NotEqual(t, e.ID, NewEntry("a", "G").ID)
	assert.Equal(t, []string{"hat", "snare"}, e.Instruments)
	assert.Equal(t, time.UTC, e.CreatedAt.Location())
	assert.False(t, e.CreatedAt.Before(before.Add(-time.Second)))
}
