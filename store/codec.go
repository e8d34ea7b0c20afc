package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/josephgoksu/todowing/models"
	yaml "gopkg.in/yaml.v3"
)

// Format is the serialization used for the persisted collection.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a config value to a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported data format: %s. Supported formats are json, yaml", s)
	}
}

// Ext returns the file extension used by file backends.
func (f Format) Ext() string {
	return "." + string(f)
}

// Marshal encodes tasks as an ordered sequence. A nil or empty collection
// is encoded as an empty sequence, never as null.
func (f Format) Marshal(tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	switch f {
	case FormatJSON:
		return json.MarshalIndent(tasks, "", "  ")
	case FormatYAML:
		return yaml.Marshal(tasks)
	default:
		return nil, fmt.Errorf("unsupported data format for saving: %s", f)
	}
}

// Unmarshal decodes an ordered sequence of tasks and rejects records that
// would break the collection invariants. Titles that were not written
// escaped, e.g. by hand or by another tool, are escaped so raw markup never
// enters the collection.
func (f Format) Unmarshal(data []byte) ([]models.Task, error) {
	var tasks []models.Task
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("unmarshal JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("unmarshal YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported data format for loading: %s", f)
	}

	seen := make(map[int64]bool, len(tasks))
	for i, t := range tasks {
		if err := models.ValidateStruct(t); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("record %d: duplicate id %d", i, t.ID)
		}
		seen[t.ID] = true
		if !models.IsEscapedTitle(t.Title) {
			tasks[i].Title = models.EscapeTitle(t.Title)
		}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}
