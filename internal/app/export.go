package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/josephgoksu/todowing/internal/view"
	"github.com/josephgoksu/todowing/models"
	"gopkg.in/yaml.v3"
)

// ExportSchemaVersion is bumped whenever ExportDocument changes shape.
const ExportSchemaVersion = "1.0.0"

// ExportDocument is a self-describing snapshot of the collection.
type ExportDocument struct {
	Metadata models.Metadata `json:"metadata" yaml:"metadata"`
	Summary  view.Summary    `json:"summary" yaml:"summary"`
	Tasks    []models.Task   `json:"tasks" yaml:"tasks"`
}

// Export snapshots the whole collection, ignoring the current view filter.
func (c *Context) Export(source string) (ExportDocument, error) {
	tasks := c.Store.LoadAll()
	doc := ExportDocument{
		Metadata: models.Metadata{
			ID:            uuid.NewString(),
			SchemaVersion: ExportSchemaVersion,
			ExportedAt:    time.Now().UTC(),
			Source:        source,
		},
		Summary: view.Summarize(tasks),
		Tasks:   tasks,
	}
	if err := models.ValidateStruct(doc.Metadata); err != nil {
		return ExportDocument{}, fmt.Errorf("export metadata: %w", err)
	}
	return doc, nil
}

// WriteExport encodes doc as "json" or "yaml".
func WriteExport(w io.Writer, doc ExportDocument, format string) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
