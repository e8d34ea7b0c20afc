package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todowing/internal/view"
	"github.com/josephgoksu/todowing/models"
)

// DisplayTitle turns a stored title back into the text the user typed.
// Stored titles are HTML-escaped, which a terminal must not show literally.
func DisplayTitle(stored string) string {
	return models.UnescapeTitle(stored)
}

// RenderSummary renders the counters line, e.g. "3 total · 2 active · 1 completed".
func RenderSummary(s view.Summary) string {
	return fmt.Sprintf("%s total · %s active · %s completed",
		StyleTitle.Render(strconv.Itoa(s.Total)),
		StylePrimary.Render(strconv.Itoa(s.Active)),
		StyleSuccess.Render(strconv.Itoa(s.Completed)))
}

// RenderFilterBar renders the status tabs with the active one highlighted,
// followed by the search query when one is set.
func RenderFilterBar(status models.StatusFilter, query string) string {
	tabs := make([]string, 0, 3)
	for _, f := range models.StatusFilters() {
		label := strings.ToUpper(string(f[:1])) + string(f[1:])
		if f == status {
			tabs = append(tabs, StyleFilterOn.Render(label))
		} else {
			tabs = append(tabs, StyleFilterOff.Render(label))
		}
	}
	bar := strings.Join(tabs, "  ")
	if query != "" {
		bar += StyleSubtle.Render("   search: ") + StyleText.Render(strconv.Quote(query))
	}
	return bar
}

// RenderEmpty renders the empty state panel for k.
func RenderEmpty(k view.EmptyKind, width int) string {
	title, hint := k.Message()
	return NewPanel(title, StyleSubtle.Render(hint)).WithWidth(min(width, 50)).Render()
}

// RenderDescription renders a full list view for non-interactive output.
func RenderDescription(d view.Description, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	var sb strings.Builder
	sb.WriteString(RenderFilterBar(d.Status, d.Query) + "\n")
	sb.WriteString(RenderSummary(d.Summary) + "\n\n")

	if d.Empty != view.EmptyNone {
		sb.WriteString(RenderEmpty(d.Empty, width-2) + "\n")
		return sb.String()
	}

	table := &Table{
		Headers: []string{"ID", "", "Title", "Created"},
		// id + checkbox + date + gaps leave the rest to the title
		MaxWidth: max(width-40, 20),
		CellStyle: func(row, col int) lipgloss.Style {
			switch {
			case col == 3:
				return StyleDate
			case col == 2 && d.Rows[row].Checked:
				return StyleTaskDone
			default:
				return StyleTaskActive
			}
		},
	}
	for _, r := range d.Rows {
		mark := "[ ]"
		if r.Checked {
			mark = "[x]"
		}
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(r.ID, 10),
			mark,
			DisplayTitle(r.Title),
			r.CreatedDate,
		})
	}
	sb.WriteString(table.Render())
	return sb.String()
}

// RenderPlain renders rows one per line without styling, for pipes.
func RenderPlain(d view.Description) string {
	var sb strings.Builder
	for _, r := range d.Rows {
		mark := " "
		if r.Checked {
			mark = "x"
		}
		fmt.Fprintf(&sb, "%d\t[%s]\t%s\t%s\n", r.ID, mark, DisplayTitle(r.Title), r.CreatedDate)
	}
	return sb.String()
}
