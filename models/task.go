package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Task is a single to-do item.
// Title holds the escaped form of what the user typed; it is never re-escaped
// on the way out.
type Task struct {
	ID        int64     `json:"id" yaml:"id" validate:"required,gt=0"`
	Title     string    `json:"title" yaml:"title" validate:"required"`
	Completed bool      `json:"completed" yaml:"completed"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt" validate:"required"`
}

// CreatedDate returns the date portion of CreatedAt (YYYY-MM-DD).
func (t Task) CreatedDate() string {
	return t.CreatedAt.UTC().Format(time.DateOnly)
}

// StatusFilter restricts displayed tasks by completion state.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
)

// StatusFilters lists every filter in display order.
func StatusFilters() []StatusFilter {
	return []StatusFilter{FilterAll, FilterActive, FilterCompleted}
}

// ParseStatusFilter maps a user supplied name to a StatusFilter.
// The empty string maps to FilterAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return FilterAll, fmt.Errorf("unknown status filter %q (want all, active or completed)", s)
	}
}

// Match reports whether t passes the filter.
func (f StatusFilter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next cycles all -> active -> completed -> all.
func (f StatusFilter) Next() StatusFilter {
	switch f {
	case FilterAll, "":
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Metadata describes an exported document.
type Metadata struct {
	ID            string    `json:"id" yaml:"id" validate:"required,uuid4"`
	SchemaVersion string    `json:"schemaVersion" yaml:"schemaVersion" validate:"required,semver"`
	ExportedAt    time.Time `json:"exportedAt" yaml:"exportedAt" validate:"required"`
	Source        string    `json:"source,omitempty" yaml:"source,omitempty"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
}
