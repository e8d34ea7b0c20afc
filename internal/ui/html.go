package ui

import (
	"fmt"
	"html/template"
	"io"

	"github.com/josephgoksu/todowing/internal/view"
	"github.com/josephgoksu/todowing/models"
)

// Titles are stored escaped, so they are marked safe instead of being
// escaped a second time. Anything not in that form is escaped here.
var htmlFuncs = template.FuncMap{
	"title": func(stored string) template.HTML {
		if !models.IsEscapedTitle(stored) {
			stored = models.EscapeTitle(stored)
		}
		return template.HTML(stored)
	},
}

var pageTemplate = template.Must(template.New("page").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Todo List</title>
<meta name="generator" content="todowing {{.Meta.SchemaVersion}}">
</head>
<body>
<main data-export-id="{{.Meta.ID}}">
<h1>Todo List</h1>
<p class="summary"><span class="total">{{.View.Summary.Total}}</span> total, <span class="active">{{.View.Summary.Active}}</span> active, <span class="completed">{{.View.Summary.Completed}}</span> completed</p>
{{- if .EmptyTitle}}
<div class="empty-state"><h2>{{.EmptyTitle}}</h2><p>{{.EmptyHint}}</p></div>
{{- else}}
<ul class="todo-list">
{{- range .View.Rows}}
<li class="todo-item{{if .Checked}} completed{{end}}" data-id="{{.ID}}">{{if .Checked}}<input type="checkbox" checked disabled>{{else}}<input type="checkbox" disabled>{{end}} <span class="todo-title">{{title .Title}}</span> <time datetime="{{.CreatedDate}}">{{.CreatedDate}}</time></li>
{{- end}}
</ul>
{{- end}}
<footer>Exported {{.Meta.ExportedAt.Format "2006-01-02 15:04 MST"}}</footer>
</main>
</body>
</html>
`))

type htmlPage struct {
	Meta       models.Metadata
	View       view.Description
	EmptyTitle string
	EmptyHint  string
}

// WriteHTML renders d as a standalone HTML page.
func WriteHTML(w io.Writer, d view.Description, meta models.Metadata) error {
	page := htmlPage{Meta: meta, View: d}
	page.EmptyTitle, page.EmptyHint = d.Empty.Message()
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
