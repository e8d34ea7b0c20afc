package store

import (
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/josephgoksu/todowing/models"
)

// DefaultKey is the key the collection is stored under.
const DefaultKey = "todos"

// Adapter persists the task collection as one serialized blob under a fixed
// key of a KV backend.
type Adapter struct {
	kv     KV
	key    string
	format Format
	log    lgr.L

	// unreadable is set while the stored value failed to load. The next
	// Save preserves it before overwriting.
	unreadable bool
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithAdapterLogger sets the logger that reports preserved values.
func WithAdapterLogger(l lgr.L) AdapterOption {
	return func(a *Adapter) { a.log = l }
}

// NewAdapter creates an Adapter. An empty key means DefaultKey.
func NewAdapter(kv KV, key string, format Format, opts ...AdapterOption) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	if format == "" {
		format = FormatJSON
	}
	a := &Adapter{kv: kv, key: key, format: format, log: lgr.NoOp}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// corruptSuffix names the copy of a value that could not be loaded.
func corruptSuffix(now time.Time) string {
	return ".corrupt-" + now.UTC().Format("20060102T150405.000")
}

// Load reads the collection. It fails closed: data that cannot be read or
// parsed yields an empty collection together with a *PersistenceError.
func (a *Adapter) Load() ([]models.Task, error) {
	data, ok, err := a.kv.Get(a.key)
	if err != nil {
		a.unreadable = true
		return []models.Task{}, &PersistenceError{Op: "load", Key: a.key, Err: err}
	}
	if !ok {
		a.unreadable = false
		return []models.Task{}, nil
	}
	tasks, err := a.format.Unmarshal(data)
	if err != nil {
		a.unreadable = true
		return []models.Task{}, &PersistenceError{Op: "load", Key: a.key, Err: err}
	}
	a.unreadable = false
	return tasks, nil
}

// Save writes the whole collection. A value that failed to load is
// preserved first; if that fails nothing is written.
func (a *Adapter) Save(tasks []models.Task) error {
	data, err := a.format.Marshal(tasks)
	if err != nil {
		return &PersistenceError{Op: "save", Key: a.key, Err: err}
	}
	if a.unreadable {
		dst, err := a.kv.Preserve(a.key)
		if err != nil {
			return &PersistenceError{Op: "preserve", Key: a.key, Err: err}
		}
		if dst != "" {
			a.log.Logf("WARN unreadable %s kept as %s", a.key, dst)
		}
		a.unreadable = false
	}
	if err := a.kv.Set(a.key, data); err != nil {
		return &PersistenceError{Op: "save", Key: a.key, Err: err}
	}
	return nil
}
