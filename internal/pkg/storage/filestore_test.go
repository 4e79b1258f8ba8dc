package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := []sample{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	require.NoError(t, store.Save("records", in))

	var out []sample
	require.NoError(t, store.Load("records", &out))
	assert.Equal(t, in, out)
}

func TestFileStore_LoadMissingKey(t *testing.T) {
	store := newTestStore(t)

	var out []sample
	err := store.Load("absent", &out)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "records.json"), []byte("{not json"), 0o644))

	var out []sample
	err = store.Load("records", &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStore_SaveIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	in := []sample{{ID: "1", Name: "first"}}
	require.NoError(t, store.Save("records", in))
	first, err := os.ReadFile(filepath.Join(dir, "records.json"))
	require.NoError(t, err)

	require.NoError(t, store.Save("records", in))
	second, err := os.ReadFile(filepath.Join(dir, "records.json"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFileStore_SaveReplacesWholeValue(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("records", []sample{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, store.Save("records", []sample{{ID: "3"}}))

	var out []sample
	require.NoError(t, store.Load("records", &out))
	assert.Equal(t, []sample{{ID: "3"}}, out)
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("records", []sample{{ID: "1"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "records.json", entries[0].Name())
}
