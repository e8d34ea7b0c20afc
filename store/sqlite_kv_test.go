package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteKV(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "nested", "todos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestSQLiteKV_SetGet(t *testing.T) {
	kv := setupSQLiteKV(t)

	_, ok, err := kv.Get("todos")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("todos", []byte("[]")))
	require.NoError(t, kv.Set("todos", []byte(`[{"id":1}]`)))

	data, ok, err := kv.Get("todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(data))
}

func TestSQLiteKV_AdapterRoundTrip(t *testing.T) {
	kv := setupSQLiteKV(t)
	a := NewAdapter(kv, "", FormatJSON)

	want := sampleTasks()
	require.NoError(t, a.Save(want))

	got, err := a.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLiteKV_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.db")
	kv, err := NewSQLiteKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("todos", []byte("[]")))
	require.NoError(t, kv.Close())

	kv, err = NewSQLiteKV(path)
	require.NoError(t, err)
	defer func() { _ = kv.Close() }()

	data, ok, err := kv.Get("todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(data))
}

func TestSQLiteKV_Preserve(t *testing.T) {
	kv := setupSQLiteKV(t)

	dst, err := kv.Preserve("todos")
	require.NoError(t, err)
	assert.Empty(t, dst)

	require.NoError(t, kv.Set("todos", []byte("{broken")))
	dst, err = kv.Preserve("todos")
	require.NoError(t, err)
	assert.Contains(t, dst, "todos.corrupt-")

	require.NoError(t, kv.Set("todos", []byte("[]")))
	data, ok, err := kv.Get(dst)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{broken", string(data))
}
