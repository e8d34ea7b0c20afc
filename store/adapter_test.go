package store

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/josephgoksu/todowing/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 1717234200002, Title: "Walk dog", Completed: true, CreatedAt: time.Date(2025, 6, 1, 9, 30, 0, 2_000_000, time.UTC)},
		{ID: 1717234200001, Title: "Buy &lt;b&gt;milk&lt;/b&gt;", CreatedAt: time.Date(2025, 6, 1, 9, 30, 0, 1_000_000, time.UTC)},
	}
}

func newMemAdapter(t *testing.T, format Format) (*Adapter, *FileKV) {
	t.Helper()
	kv, err := NewFileKV(afero.NewMemMapFs(), "data", format.Ext())
	require.NoError(t, err)
	return NewAdapter(kv, "", format), kv
}

func TestAdapter_RoundTripJSON(t *testing.T) {
	a, _ := newMemAdapter(t, FormatJSON)
	want := sampleTasks()

	require.NoError(t, a.Save(want))
	got, err := a.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAdapter_RoundTripYAML(t *testing.T) {
	a, _ := newMemAdapter(t, FormatYAML)
	want := sampleTasks()

	require.NoError(t, a.Save(want))
	got, err := a.Load()
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Completed, got[i].Completed)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func TestAdapter_EmptyCollectionIsStoredAsSequence(t *testing.T) {
	a, kv := newMemAdapter(t, FormatJSON)

	require.NoError(t, a.Save(nil))
	data, ok, err := kv.Get(DefaultKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(data))

	got, err := a.Load()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdapter_FieldNames(t *testing.T) {
	a, kv := newMemAdapter(t, FormatJSON)
	require.NoError(t, a.Save(sampleTasks()[:1]))

	data, _, err := kv.Get(DefaultKey)
	require.NoError(t, err)
	for _, field := range []string{`"id"`, `"title"`, `"completed"`, `"createdAt"`, `"2025-06-01T09:30:00.002Z"`} {
		assert.Contains(t, string(data), field)
	}
}

func TestAdapter_MissingKeyIsEmpty(t *testing.T) {
	a, _ := newMemAdapter(t, FormatJSON)

	got, err := a.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAdapter_UnparseableDataFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"garbage", "{not json"},
		{"object instead of sequence", `{"tasks": []}`},
		{"empty title", `[{"id": 1, "title": "", "completed": false, "createdAt": "2025-06-01T09:30:00Z"}]`},
		{"duplicate ids", `[{"id": 1, "title": "a", "createdAt": "2025-06-01T09:30:00Z"}, {"id": 1, "title": "b", "createdAt": "2025-06-01T09:30:00Z"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, kv := newMemAdapter(t, FormatJSON)
			require.NoError(t, kv.Set(DefaultKey, []byte(tt.data)))

			got, err := a.Load()
			assert.True(t, IsPersistence(err))
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestAdapter_NullDecodesAsEmpty(t *testing.T) {
	a, kv := newMemAdapter(t, FormatJSON)
	require.NoError(t, kv.Set(DefaultKey, []byte("null")))

	got, err := a.Load()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

type failingKV struct{ err error }

func (f failingKV) Get(string) ([]byte, bool, error) { return nil, false, f.err }
func (f failingKV) Set(string, []byte) error         { return f.err }
func (f failingKV) Preserve(string) (string, error)  { return "", f.err }
func (f failingKV) Close() error                     { return nil }

func TestAdapter_WrapsBackendErrors(t *testing.T) {
	cause := errors.New("disk full")
	a := NewAdapter(failingKV{err: cause}, "custom", FormatJSON)

	err := a.Save(sampleTasks())
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "save", pe.Op)
	assert.Equal(t, "custom", pe.Key)
	assert.ErrorIs(t, err, cause)

	_, err = a.Load()
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "load", pe.Op)
}

func TestAdapter_WithTaskStore(t *testing.T) {
	kv, err := NewFileKV(afero.NewMemMapFs(), filepath.Join("home", ".todowing"), FormatJSON.Ext())
	require.NoError(t, err)
	a := NewAdapter(kv, DefaultKey, FormatJSON)

	s, err := Open(a)
	require.NoError(t, err)
	milk, _ := s.Create("Buy milk")
	_, _ = s.Create("Walk dog")
	_, _ = s.Toggle(milk.ID)

	reopened, err := Open(a)
	require.NoError(t, err)
	assert.Equal(t, s.LoadAll(), reopened.LoadAll())
}

func TestAdapter_PreservesUnreadableValueBeforeOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	kv, err := NewFileKV(fs, "data", FormatJSON.Ext())
	require.NoError(t, err)
	a := NewAdapter(kv, DefaultKey, FormatJSON)

	s, err := Open(a)
	require.NoError(t, err)
	for _, title := range []string{"one", "two", "three"} {
		_, err := s.Create(title)
		require.NoError(t, err)
	}

	// A hand edit breaks the checksum.
	path := filepath.Join("data", "todos.json")
	original, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	edited := append(append([]byte{}, original...), '\n')
	require.NoError(t, afero.WriteFile(fs, path, edited, 0o644))

	s, err = Open(a)
	assert.True(t, IsPersistence(err))
	assert.Empty(t, s.LoadAll())

	_, err = s.Create("four")
	require.NoError(t, err)

	matches, err := afero.Glob(fs, filepath.Join("data", "todos.json.corrupt-*"))
	require.NoError(t, err)
	var kept string
	for _, m := range matches {
		if !strings.HasSuffix(m, checksumSuffix) {
			kept = m
		}
	}
	require.NotEmpty(t, kept, "unreadable data must be kept: %v", matches)
	data, err := afero.ReadFile(fs, kept)
	require.NoError(t, err)
	assert.Equal(t, edited, data)

	reopened, err := Open(a)
	require.NoError(t, err)
	require.Len(t, reopened.LoadAll(), 1)
	assert.Equal(t, "four", reopened.LoadAll()[0].Title)

	// Only the first write after a failed load preserves.
	_, err = reopened.Create("five")
	require.NoError(t, err)
	again, err := afero.Glob(fs, filepath.Join("data", "todos.json.corrupt-*"))
	require.NoError(t, err)
	assert.Len(t, again, len(matches))
}

type stuckKV struct {
	failingKV
	sets int
}

func (k *stuckKV) Set(string, []byte) error {
	k.sets++
	return nil
}

func TestAdapter_PreserveFailureBlocksSave(t *testing.T) {
	cause := errors.New("permission denied")
	kv := &stuckKV{failingKV: failingKV{err: cause}}
	a := NewAdapter(kv, DefaultKey, FormatJSON)

	_, err := a.Load()
	require.Error(t, err)

	err = a.Save(sampleTasks())
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "preserve", pe.Op)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, kv.sets)
}

func TestAdapter_EscapesRawMarkupOnLoad(t *testing.T) {
	a, kv := newMemAdapter(t, FormatJSON)
	raw := `[{"id":2,"title":"<script>alert(1)</script>","completed":false,"createdAt":"2025-06-01T09:30:00Z"},` +
		`{"id":1,"title":"Tom &amp; Jerry","completed":true,"createdAt":"2025-06-01T09:30:00Z"}]`
	require.NoError(t, kv.Set(DefaultKey, []byte(raw)))

	got, err := a.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", got[0].Title)
	assert.Equal(t, "Tom &amp; Jerry", got[1].Title)
	for _, task := range got {
		assert.NotContains(t, task.Title, "<")
	}
}
