package view

import "github.com/josephgoksu/todowing/models"

// EmptyKind tells presenters which empty state to show.
type EmptyKind int

const (
	// EmptyNone means there are rows to show.
	EmptyNone EmptyKind = iota
	// EmptyNoTasks is shown when nothing matches and no search is active.
	EmptyNoTasks
	// EmptySearch is shown when a search query matched nothing.
	EmptySearch
)

// Message returns the headline and hint for an empty state.
func (k EmptyKind) Message() (string, string) {
	switch k {
	case EmptySearch:
		return "No results found", "Try a different search term."
	case EmptyNoTasks:
		return "No todos yet!", "Add your first task to get started."
	default:
		return "", ""
	}
}

// Action is an affordance offered on every row.
type Action string

const (
	ActionToggle Action = "toggle"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

var rowActions = []Action{ActionToggle, ActionEdit, ActionDelete}

// Row describes one displayed task.
type Row struct {
	ID      int64  `json:"id"`
	Checked bool   `json:"checked"`
	// Title is the stored, already escaped title.
	Title       string   `json:"title"`
	CreatedDate string   `json:"createdDate"`
	Actions     []Action `json:"actions"`
}

// Summary holds counts over the full collection.
// Active+Completed always equals Total.
type Summary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// Description is everything a presenter needs to draw the list.
type Description struct {
	Rows    []Row               `json:"rows"`
	Empty   EmptyKind           `json:"empty"`
	Summary Summary             `json:"summary"`
	Query   string              `json:"query,omitempty"`
	Status  models.StatusFilter `json:"status,omitempty"`
}

// Summarize counts tasks by completion state.
func Summarize(tasks []models.Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		} else {
			s.Active++
		}
	}
	return s
}

// Render builds the Description for an already filtered subset. Counts are
// always taken from full. Titles are passed through untouched since they
// were escaped when stored.
func Render(filtered, full []models.Task, query string) Description {
	d := Description{
		Rows:    []Row{},
		Summary: Summarize(full),
		Query:   query,
	}
	if len(filtered) == 0 {
		if query != "" {
			d.Empty = EmptySearch
		} else {
			d.Empty = EmptyNoTasks
		}
		return d
	}

	d.Rows = make([]Row, 0, len(filtered))
	for _, t := range filtered {
		d.Rows = append(d.Rows, Row{
			ID:          t.ID,
			Checked:     t.Completed,
			Title:       t.Title,
			CreatedDate: t.CreatedDate(),
			Actions:     rowActions,
		})
	}
	return d
}
