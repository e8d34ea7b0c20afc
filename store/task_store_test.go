package store

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/josephgoksu/todowing/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPersister keeps the collection in memory and counts writes.
type memPersister struct {
	data    []models.Task
	saves   int
	saveErr error
	loadErr error
}

func (m *memPersister) Load() ([]models.Task, error) {
	if m.loadErr != nil {
		return []models.Task{}, m.loadErr
	}
	return slices.Clone(m.data), nil
}

func (m *memPersister) Save(tasks []models.Task) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = slices.Clone(tasks)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func setupTestStore(t *testing.T) (*TaskStore, *memPersister) {
	t.Helper()
	p := &memPersister{data: []models.Task{}}
	s, err := Open(p, WithClock(fixedClock(testNow)))
	require.NoError(t, err)
	return s, p
}

func titles(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestTaskStore_CreateInsertsAtHead(t *testing.T) {
	s, p := setupTestStore(t)

	milk, err := s.Create("Buy milk")
	require.NoError(t, err)
	dog, err := s.Create("  Walk dog  ")
	require.NoError(t, err)

	assert.Equal(t, []string{"Walk dog", "Buy milk"}, titles(s.LoadAll()))
	assert.False(t, milk.Completed)
	assert.Equal(t, testNow, milk.CreatedAt)
	assert.Greater(t, dog.ID, milk.ID)
	assert.Equal(t, 2, p.saves)
	assert.Equal(t, s.LoadAll(), p.data)
}

func TestTaskStore_CreateRejectsEmptyTitle(t *testing.T) {
	s, p := setupTestStore(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := s.Create(title)
		assert.ErrorIs(t, err, ErrValidation, "title %q", title)
	}
	assert.Empty(t, s.LoadAll())
	assert.Zero(t, p.saves)
}

func TestTaskStore_CreateEscapesMarkup(t *testing.T) {
	s, _ := setupTestStore(t)

	task, err := s.Create("<script>alert(1)</script>")
	require.NoError(t, err)

	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", task.Title)
	assert.NotContains(t, task.Title, "<")
}

func TestTaskStore_IDsUniqueWhenClockTies(t *testing.T) {
	s, _ := setupTestStore(t)

	seen := map[int64]bool{}
	var last int64
	for i := 0; i < 50; i++ {
		task, err := s.Create("task")
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "id %d reused", task.ID)
		assert.Greater(t, task.ID, last)
		seen[task.ID] = true
		last = task.ID
	}
}

func TestTaskStore_IDsNeverCollideWithLoaded(t *testing.T) {
	future := testNow.Add(time.Hour).UnixMilli()
	p := &memPersister{data: []models.Task{{ID: future, Title: "later", CreatedAt: testNow}}}
	s, err := Open(p, WithClock(fixedClock(testNow)))
	require.NoError(t, err)

	task, err := s.Create("now")
	require.NoError(t, err)
	assert.Equal(t, future+1, task.ID)
}

func TestTaskStore_Toggle(t *testing.T) {
	s, p := setupTestStore(t)
	task, _ := s.Create("Buy milk")

	toggled, err := s.Toggle(task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = s.Toggle(task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
	assert.Equal(t, 3, p.saves)

	_, err = s.Toggle(42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 3, p.saves)
}

func TestTaskStore_Rename(t *testing.T) {
	s, p := setupTestStore(t)
	task, _ := s.Create("Buy milk")
	_, _ = s.Toggle(task.ID)

	renamed, err := s.Rename(task.ID, " Buy oat milk & bread ")
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk &amp; bread", renamed.Title)
	assert.Equal(t, task.ID, renamed.ID)
	assert.True(t, renamed.Completed)
	assert.Equal(t, task.CreatedAt, renamed.CreatedAt)
	assert.Equal(t, 3, p.saves)
}

func TestTaskStore_RenameEmptyKeepsTitle(t *testing.T) {
	s, p := setupTestStore(t)
	task, _ := s.Create("Buy milk")

	for _, title := range []string{"", "   "} {
		got, err := s.Rename(task.ID, title)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, "Buy milk", got.Title)
	}

	stored, err := s.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", stored.Title)
	assert.Equal(t, 1, p.saves)

	_, err = s.Rename(99, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskStore_Remove(t *testing.T) {
	s, p := setupTestStore(t)
	milk, _ := s.Create("Buy milk")
	_, _ = s.Create("Walk dog")

	require.NoError(t, s.Remove(milk.ID))
	assert.Equal(t, []string{"Walk dog"}, titles(s.LoadAll()))
	assert.Equal(t, 3, p.saves)

	err := s.Remove(milk.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 3, p.saves)
}

func TestTaskStore_ClearCompleted(t *testing.T) {
	s, p := setupTestStore(t)

	n, err := s.ClearCompleted()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, p.saves)

	a, _ := s.Create("a")
	_, _ = s.Create("b")
	c, _ := s.Create("c")
	_, _ = s.Toggle(a.ID)
	_, _ = s.Toggle(c.ID)

	n, err = s.ClearCompleted()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"b"}, titles(s.LoadAll()))
}

func TestTaskStore_Clear(t *testing.T) {
	s, p := setupTestStore(t)
	first, _ := s.Create("a")

	require.NoError(t, s.Clear())
	assert.Empty(t, s.LoadAll())
	assert.NotNil(t, p.data)

	next, _ := s.Create("b")
	assert.Greater(t, next.ID, first.ID)
}

func TestTaskStore_SaveFailureKeepsMemory(t *testing.T) {
	s, p := setupTestStore(t)
	p.saveErr = &PersistenceError{Op: "save", Key: DefaultKey, Err: errors.New("quota exceeded")}

	task, err := s.Create("Buy milk")
	require.Error(t, err)
	assert.True(t, IsPersistence(err))
	assert.Equal(t, "Buy milk", task.Title)
	assert.Len(t, s.LoadAll(), 1)

	// A later successful write converges the persisted copy.
	p.saveErr = nil
	_, err = s.Toggle(task.ID)
	require.NoError(t, err)
	assert.Equal(t, s.LoadAll(), p.data)
}

func TestTaskStore_OpenFailsClosed(t *testing.T) {
	p := &memPersister{loadErr: &PersistenceError{Op: "load", Key: DefaultKey, Err: errors.New("bad json")}}

	s, err := Open(p)
	require.NotNil(t, s)
	assert.True(t, IsPersistence(err))
	assert.Empty(t, s.LoadAll())
}

func TestTaskStore_ReloadKeepsMemoryOnError(t *testing.T) {
	s, p := setupTestStore(t)
	_, _ = s.Create("Buy milk")

	p.loadErr = errors.New("unreadable")
	assert.Error(t, s.Reload())
	assert.Len(t, s.LoadAll(), 1)

	p.loadErr = nil
	p.data = nil
	require.NoError(t, s.Reload())
	assert.Empty(t, s.LoadAll())
}

func TestTaskStore_LoadAllIsACopy(t *testing.T) {
	s, _ := setupTestStore(t)
	_, _ = s.Create("Buy milk")

	tasks := s.LoadAll()
	tasks[0].Title = "changed"
	assert.Equal(t, "Buy milk", s.LoadAll()[0].Title)
}

func TestTaskStore_CountsInvariantUnderRandomOps(t *testing.T) {
	s, p := setupTestStore(t)
	rng := rand.New(rand.NewSource(7))

	pick := func() int64 {
		tasks := s.LoadAll()
		if len(tasks) == 0 || rng.Intn(5) == 0 {
			return rng.Int63n(1000) + 1
		}
		return tasks[rng.Intn(len(tasks))].ID
	}

	for i := 0; i < 300; i++ {
		switch rng.Intn(4) {
		case 0:
			_, _ = s.Create([]string{"a", "B", "  ", "", "milk"}[rng.Intn(5)])
		case 1:
			_, _ = s.Toggle(pick())
		case 2:
			_ = s.Remove(pick())
		case 3:
			_, _ = s.Rename(pick(), []string{"", "renamed", " x "}[rng.Intn(3)])
		}

		tasks := s.LoadAll()
		active, completed := 0, 0
		for _, task := range tasks {
			if task.Completed {
				completed++
			} else {
				active++
			}
			assert.NotEmpty(t, task.Title)
		}
		require.Equal(t, len(tasks), active+completed)
		require.Equal(t, tasks, p.data)
	}
}
