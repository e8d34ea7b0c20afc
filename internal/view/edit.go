package view

import "strings"

// Mode is the state of the per-row edit affordance.
type Mode int

const (
	ModeDisplay Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "display"
}

// RowEditor tracks in-place editing of at most one row.
//
//	display --Begin--> editing --Commit(non-empty)--> display (rename)
//	                   editing --Commit(empty)/Cancel--> display (unchanged)
type RowEditor struct {
	mode     Mode
	id       int64
	original string
}

// Begin enters editing for task id whose current title is title.
func (e *RowEditor) Begin(id int64, title string) {
	e.mode = ModeEditing
	e.id = id
	e.original = title
}

// Mode returns the current mode.
func (e *RowEditor) Mode() Mode {
	return e.mode
}

// Editing reports whether task id is being edited.
func (e *RowEditor) Editing(id int64) bool {
	return e.mode == ModeEditing && e.id == id
}

// Original returns the title the edit started from.
func (e *RowEditor) Original() string {
	return e.original
}

// Commit leaves editing. ok is true only when input is non-empty after
// trimming; the caller must rename id to title in that case and do nothing
// otherwise.
func (e *RowEditor) Commit(input string) (id int64, title string, ok bool) {
	if e.mode != ModeEditing {
		return 0, "", false
	}
	id = e.id
	title = strings.TrimSpace(input)
	e.Cancel()
	return id, title, title != ""
}

// Cancel returns to display without changes.
func (e *RowEditor) Cancel() {
	*e = RowEditor{}
}
