package store

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/josephgoksu/todowing/models"
)

// TaskStore owns the canonical ordered task collection, newest first.
// Every successful mutation is followed by exactly one write of the whole
// collection. When that write fails the mutation is kept in memory and the
// call returns its result together with a *PersistenceError.
//
// TaskStore is not safe for concurrent use; callers drive it from a single
// event loop.
type TaskStore struct {
	persister Persister
	tasks     []models.Task
	ids       *IDSource
	now       func() time.Time
	log       lgr.L
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithClock overrides the clock used for ids and creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) { s.now = now }
}

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l lgr.L) Option {
	return func(s *TaskStore) { s.log = l }
}

// Open creates a TaskStore and loads the persisted collection. The returned
// store is always usable; a non-nil error is a *PersistenceError meaning the
// stored data could not be read and the store started empty.
func Open(p Persister, opts ...Option) (*TaskStore, error) {
	s := &TaskStore{
		persister: p,
		tasks:     []models.Task{},
		now:       time.Now,
		log:       lgr.NoOp,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ids = NewIDSource(s.now)

	err := s.Reload()
	return s, err
}

// Reload replaces the in-memory collection with the persisted copy. On a
// read failure the current collection is kept.
func (s *TaskStore) Reload() error {
	tasks, err := s.persister.Load()
	if err != nil {
		s.log.Logf("WARN could not load tasks, keeping %d in memory: %v", len(s.tasks), err)
		return err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	for _, t := range tasks {
		s.ids.Observe(t.ID)
	}
	s.tasks = tasks
	s.log.Logf("DEBUG loaded %d tasks", len(tasks))
	return nil
}

func (s *TaskStore) persist(op string) error {
	if err := s.persister.Save(s.tasks); err != nil {
		s.log.Logf("WARN %s not persisted, in-memory state kept: %v", op, err)
		return err
	}
	return nil
}

func (s *TaskStore) indexOf(id int64) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

// Create adds a task at the head of the collection.
func (s *TaskStore) Create(title string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, ErrValidation
	}

	task := models.Task{
		ID:        s.ids.Next(),
		Title:     models.EscapeTitle(title),
		Completed: false,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	s.tasks = slices.Insert(s.tasks, 0, task)
	return task, s.persist("create")
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id int64) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return s.tasks[i], nil
}

// Toggle flips the completion flag of a task.
func (s *TaskStore) Toggle(id int64) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return s.tasks[i], s.persist("toggle")
}

// Rename replaces a task's title. An empty title changes nothing and
// returns the task as it was along with ErrValidation.
func (s *TaskStore) Rename(id int64, title string) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return s.tasks[i], ErrValidation
	}
	s.tasks[i].Title = models.EscapeTitle(title)
	return s.tasks[i], s.persist("rename")
}

// Remove deletes a task. Unknown ids are a no-op reported as ErrNotFound.
func (s *TaskStore) Remove(id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return s.persist("remove")
}

// ClearCompleted removes every completed task and returns how many were
// removed. Nothing is written when no task is completed.
func (s *TaskStore) ClearCompleted() (int, error) {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t models.Task) bool { return t.Completed })
	removed := before - len(s.tasks)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.persist("clear completed")
}

// Clear removes every task. Ids already handed out are still never reused
// within this session.
func (s *TaskStore) Clear() error {
	s.tasks = []models.Task{}
	return s.persist("clear")
}

// LoadAll returns the collection in order. The slice is a copy; mutate
// through the store methods.
func (s *TaskStore) LoadAll() []models.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}
