package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/josephgoksu/todowing/models"
	"github.com/josephgoksu/todowing/store"
)

// TaskResult is the outcome of a mutation, shared by the CLI and the TUI.
type TaskResult struct {
	Task    *models.Task `json:"task,omitempty"`
	Removed int          `json:"removed,omitempty"`
	// Warning is set when the change is applied in memory but could not be
	// persisted.
	Warning string `json:"warning,omitempty"`
}

// settle splits a store error into a hard failure and a persistence warning.
func settle(res TaskResult, err error) (TaskResult, error) {
	if err == nil {
		return res, nil
	}
	if store.IsPersistence(err) {
		res.Warning = err.Error()
		return res, nil
	}
	return TaskResult{}, err
}

// AddTask creates a task from user input.
func (c *Context) AddTask(title string) (TaskResult, error) {
	task, err := c.Store.Create(title)
	return settle(TaskResult{Task: &task}, err)
}

// ToggleTask flips a task between active and completed.
func (c *Context) ToggleTask(id int64) (TaskResult, error) {
	task, err := c.Store.Toggle(id)
	return settle(TaskResult{Task: &task}, err)
}

// RenameTask changes a task title. Empty input leaves the task untouched and
// is reported as store.ErrValidation.
func (c *Context) RenameTask(id int64, title string) (TaskResult, error) {
	task, err := c.Store.Rename(id, title)
	return settle(TaskResult{Task: &task}, err)
}

// DeleteTask removes a task.
func (c *Context) DeleteTask(id int64) (TaskResult, error) {
	task, err := c.Store.Get(id)
	if err != nil {
		return TaskResult{}, err
	}
	return settle(TaskResult{Task: &task, Removed: 1}, c.Store.Remove(id))
}

// ClearTasks removes completed tasks, or every task when all is set.
func (c *Context) ClearTasks(all bool) (TaskResult, error) {
	if all {
		n := c.Store.Len()
		return settle(TaskResult{Removed: n}, c.Store.Clear())
	}
	n, err := c.Store.ClearCompleted()
	return settle(TaskResult{Removed: n}, err)
}

// Reload re-reads the persisted collection, e.g. after another process
// changed it. changed is false when the stored copy matches memory, as it
// does after this process's own writes.
func (c *Context) Reload() (changed bool, err error) {
	before := c.Store.LoadAll()
	if err := c.Store.Reload(); err != nil {
		return false, fmt.Errorf("reload tasks: %w", err)
	}
	changed = !slices.EqualFunc(before, c.Store.LoadAll(), sameTask)
	c.log.Logf("DEBUG reloaded %d tasks, changed=%t", c.Store.Len(), changed)
	return changed, nil
}

func sameTask(a, b models.Task) bool {
	return a.ID == b.ID && a.Title == b.Title && a.Completed == b.Completed && a.CreatedAt.Equal(b.CreatedAt)
}

// IsNotFound reports whether err is an unknown task id.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

// IsValidation reports whether err is an empty title.
func IsValidation(err error) bool {
	return errors.Is(err, store.ErrValidation)
}
