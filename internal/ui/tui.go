package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/todowing/internal/app"
	"github.com/josephgoksu/todowing/internal/logger"
	"github.com/josephgoksu/todowing/internal/view"
)

// InputMode is what the prompt line is currently used for.
type InputMode int

const (
	InputNone InputMode = iota
	InputAdd
	InputSearch
	InputEdit
)

// MsgDataChanged is sent when the persisted collection changed on disk.
type MsgDataChanged struct{}

// Controller is the bubbletea model of the interactive list. All task state
// lives in the app context; the controller only holds cursor and prompt
// state and re-renders after every change.
type Controller struct {
	app     *app.Context
	desc    view.Description
	cursor  int
	editor  view.RowEditor
	mode    InputMode
	input   textinput.Model
	keys    keyMap
	inKeys  inputKeys
	help    help.Model
	width   int
	notice  string
	warn    bool
	changes <-chan struct{}
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithChanges makes the controller reload whenever ch delivers.
func WithChanges(ch <-chan struct{}) ControllerOption {
	return func(c *Controller) { c.changes = ch }
}

// NewController builds the TUI model over ctx.
func NewController(ctx *app.Context, opts ...ControllerOption) Controller {
	ti := textinput.New()
	ti.CharLimit = 500
	ti.Prompt = "› "

	c := Controller{
		app:    ctx,
		input:  ti,
		keys:   defaultKeyMap(),
		inKeys: defaultInputKeys(),
		help:   help.New(),
		width:  DefaultWidth,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if err := ctx.LoadWarning(); err != nil {
		c.setNotice(fmt.Sprintf("Stored tasks could not be read, starting empty: %v", err), true)
	}
	c.refresh()
	return c
}

// Init implements tea.Model.
func (c Controller) Init() tea.Cmd {
	return c.waitForChange()
}

func (c Controller) waitForChange() tea.Cmd {
	if c.changes == nil {
		return nil
	}
	ch := c.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return MsgDataChanged{}
	}
}

// Description returns what is currently displayed.
func (c Controller) Description() view.Description {
	return c.desc
}

// Mode returns the prompt mode.
func (c Controller) Mode() InputMode {
	return c.mode
}

// Cursor returns the selected row index.
func (c Controller) Cursor() int {
	return c.cursor
}

// Notice returns the last status message.
func (c Controller) Notice() string {
	return c.notice
}

func (c *Controller) refresh() {
	c.desc = c.app.Describe()
	c.cursor = max(0, min(c.cursor, len(c.desc.Rows)-1))
	logger.SetViewState(fmt.Sprintf("status=%s query=%q rows=%d", c.desc.Status, c.desc.Query, len(c.desc.Rows)))
}

func (c *Controller) setNotice(msg string, warn bool) {
	c.notice = msg
	c.warn = warn
}

func (c *Controller) selected() (view.Row, bool) {
	if c.cursor < 0 || c.cursor >= len(c.desc.Rows) {
		return view.Row{}, false
	}
	return c.desc.Rows[c.cursor], true
}

// apply reports the outcome of a mutation and re-renders.
func (c *Controller) apply(res app.TaskResult, err error, done string) {
	switch {
	case err != nil:
		c.setNotice(err.Error(), true)
	case res.Warning != "":
		c.setNotice("Not saved: "+res.Warning, true)
	default:
		c.setNotice(done, false)
	}
	c.refresh()
}

func (c *Controller) openInput(mode InputMode, placeholder, value string) tea.Cmd {
	c.mode = mode
	c.input.Placeholder = placeholder
	c.input.SetValue(value)
	c.input.CursorEnd()
	return c.input.Focus()
}

func (c *Controller) closeInput() {
	c.mode = InputNone
	c.input.Blur()
	c.input.SetValue("")
}

// Update implements tea.Model.
func (c Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.help.Width = msg.Width
		c.input.Width = max(10, msg.Width-8)
		return c, nil

	case MsgDataChanged:
		// A prompt in progress keeps its text; only the rows refresh.
		// Echoes of our own writes leave the last notice alone.
		changed, err := c.app.Reload()
		switch {
		case err != nil:
			c.setNotice(err.Error(), true)
		case changed:
			c.setNotice("Reloaded changes from disk", false)
		}
		c.refresh()
		return c, c.waitForChange()

	case tea.KeyMsg:
		if c.mode != InputNone {
			return c.updateInput(msg)
		}
		return c.updateList(msg)
	}
	return c, nil
}

func (c Controller) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.Quit):
		return c, tea.Quit

	case key.Matches(msg, c.keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}

	case key.Matches(msg, c.keys.Down):
		if c.cursor < len(c.desc.Rows)-1 {
			c.cursor++
		}

	case key.Matches(msg, c.keys.Toggle):
		if row, ok := c.selected(); ok {
			res, err := c.app.ToggleTask(row.ID)
			c.apply(res, err, "Toggled")
		}

	case key.Matches(msg, c.keys.Delete):
		if row, ok := c.selected(); ok {
			res, err := c.app.DeleteTask(row.ID)
			c.apply(res, err, "Deleted")
		}

	case key.Matches(msg, c.keys.Edit):
		if row, ok := c.selected(); ok {
			title := DisplayTitle(row.Title)
			c.editor.Begin(row.ID, title)
			cmd := c.openInput(InputEdit, "", title)
			return c, cmd
		}

	case key.Matches(msg, c.keys.Add):
		cmd := c.openInput(InputAdd, "What needs to be done?", "")
		return c, cmd

	case key.Matches(msg, c.keys.Search):
		cmd := c.openInput(InputSearch, "Search todos...", c.app.View.SearchQuery)
		return c, cmd

	case key.Matches(msg, c.keys.Filter):
		c.app.View.Status = c.app.View.Status.Next()
		c.refresh()

	case key.Matches(msg, c.keys.ClearDone):
		res, err := c.app.ClearTasks(false)
		c.apply(res, err, fmt.Sprintf("Cleared %d completed", res.Removed))

	case key.Matches(msg, c.keys.ClearSearch):
		if c.app.View.SearchQuery != "" {
			c.app.View.SearchQuery = ""
			c.refresh()
		}

	case key.Matches(msg, c.keys.Help):
		c.help.ShowAll = !c.help.ShowAll
	}
	return c, nil
}

func (c Controller) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, c.inKeys.Submit):
		c.submit()
		return c, nil

	case key.Matches(msg, c.inKeys.Cancel):
		switch c.mode {
		case InputEdit:
			c.editor.Cancel()
		case InputSearch:
			c.app.View.SearchQuery = ""
			c.refresh()
		}
		c.closeInput()
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.mode == InputSearch {
		// search filters as you type
		c.app.View.SearchQuery = c.input.Value()
		c.refresh()
	}
	return c, cmd
}

func (c *Controller) submit() {
	value := c.input.Value()
	logger.SetLastInput(value)

	switch c.mode {
	case InputAdd:
		if strings.TrimSpace(value) != "" {
			res, err := c.app.AddTask(value)
			c.apply(res, err, "Added")
			c.cursor = 0
		}
	case InputSearch:
		c.app.View.SearchQuery = value
		c.refresh()
	case InputEdit:
		if id, title, ok := c.editor.Commit(value); ok {
			res, err := c.app.RenameTask(id, title)
			c.apply(res, err, "Saved")
		}
	}
	c.closeInput()
}

// View implements tea.Model.
func (c Controller) View() string {
	var sb strings.Builder
	sb.WriteString(StyleHeader.Render("todos") + "\n")
	sb.WriteString(RenderFilterBar(c.desc.Status, c.desc.Query) + "\n")
	sb.WriteString(RenderSummary(c.desc.Summary) + "\n\n")

	if c.desc.Empty != view.EmptyNone {
		sb.WriteString(RenderEmpty(c.desc.Empty, c.width-2) + "\n")
	}
	titleWidth := max(10, c.width-20)
	for i, row := range c.desc.Rows {
		cursor := "  "
		if i == c.cursor {
			cursor = StylePrimary.Render("› ")
		}
		if c.mode == InputEdit && c.editor.Editing(row.ID) {
			sb.WriteString(cursor + Checkbox(row.Checked) + " " + c.input.View() + "\n")
			continue
		}
		style := StyleTaskActive
		switch {
		case row.Checked:
			style = StyleTaskDone
		case i == c.cursor:
			style = StyleTaskSelected
		}
		title := style.Render(TruncateWidth(DisplayTitle(row.Title), titleWidth))
		sb.WriteString(cursor + Checkbox(row.Checked) + " " + title + "  " + StyleDate.Render(row.CreatedDate) + "\n")
	}

	if c.mode == InputAdd || c.mode == InputSearch {
		sb.WriteString("\n" + StyleInputBox.Render(c.input.View()) + "\n")
	}
	if c.notice != "" {
		style := StyleSubtle
		if c.warn {
			style = StyleWarning
		}
		sb.WriteString("\n" + style.Render(c.notice) + "\n")
	}

	sb.WriteString("\n")
	if c.mode != InputNone {
		sb.WriteString(c.help.View(c.inKeys))
	} else {
		sb.WriteString(c.help.View(c.keys))
	}
	return sb.String()
}

// RunTUI runs the interactive list until the user quits.
func RunTUI(ctx *app.Context, opts ...ControllerOption) error {
	p := tea.NewProgram(NewController(ctx, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
