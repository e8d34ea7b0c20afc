package view

import (
	"strings"

	"github.com/josephgoksu/todowing/models"
	"golang.org/x/text/cases"
)

// Filter returns the tasks matching status and, when query is non-empty, a
// case-insensitive substring search on the title as the user typed it (the
// stored escaping is undone first). The status predicate is applied first;
// relative order is preserved.
func Filter(tasks []models.Task, status models.StatusFilter, query string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if status.Match(t) {
			out = append(out, t)
		}
	}
	if query == "" {
		return out
	}

	fold := cases.Fold()
	needle := fold.String(query)
	matched := out[:0]
	for _, t := range out {
		if strings.Contains(fold.String(models.UnescapeTitle(t.Title)), needle) {
			matched = append(matched, t)
		}
	}
	return matched
}
