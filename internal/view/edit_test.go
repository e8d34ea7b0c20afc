package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowEditor_CommitNonEmpty(t *testing.T) {
	var e RowEditor
	assert.Equal(t, ModeDisplay, e.Mode())

	e.Begin(7, "Buy milk")
	assert.Equal(t, ModeEditing, e.Mode())
	assert.True(t, e.Editing(7))
	assert.False(t, e.Editing(8))
	assert.Equal(t, "Buy milk", e.Original())

	id, title, ok := e.Commit("  Buy oat milk ")
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "Buy oat milk", title)
	assert.Equal(t, ModeDisplay, e.Mode())
}

func TestRowEditor_CommitEmptyCancels(t *testing.T) {
	var e RowEditor
	e.Begin(7, "Buy milk")

	_, _, ok := e.Commit("   ")
	assert.False(t, ok)
	assert.Equal(t, ModeDisplay, e.Mode())
	assert.False(t, e.Editing(7))
}

func TestRowEditor_Cancel(t *testing.T) {
	var e RowEditor
	e.Begin(7, "Buy milk")
	e.Cancel()

	assert.Equal(t, ModeDisplay, e.Mode())
	_, _, ok := e.Commit("ignored")
	assert.False(t, ok)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "display", ModeDisplay.String())
	assert.Equal(t, "editing", ModeEditing.String())
}
