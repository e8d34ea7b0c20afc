package view

import "github.com/josephgoksu/todowing/models"

// State is the ephemeral view selection. It is never persisted.
type State struct {
	SearchQuery string
	Status      models.StatusFilter
}

// NewState returns the default state: no search, all tasks.
func NewState() State {
	return State{Status: models.FilterAll}
}

// Reset restores the defaults.
func (s *State) Reset() {
	*s = NewState()
}

// Apply filters tasks with the current selection and renders the result.
func (s State) Apply(tasks []models.Task) Description {
	status := s.Status
	if status == "" {
		status = models.FilterAll
	}
	d := Render(Filter(tasks, status, s.SearchQuery), tasks, s.SearchQuery)
	d.Status = status
	return d
}
