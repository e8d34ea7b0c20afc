// Package app provides the application layer that orchestrates the task
// store and the view state. The CLI commands and the TUI are thin adapters
// over Context; neither keeps task state of its own.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/go-pkgz/lgr"
	"github.com/josephgoksu/todowing/internal/view"
	"github.com/josephgoksu/todowing/store"
)

// Backends supported by NewContext.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Options selects where and how tasks are persisted.
type Options struct {
	DataDir string
	Backend string // "file" (default) or "sqlite"
	Format  string // "json" (default) or "yaml"; file backend only names files by it
	Key     string // defaults to store.DefaultKey
	Logger  lgr.L

	// KV overrides the backend, mostly for tests.
	KV store.KV
}

// Context is the explicit state shared by every controller: the task store
// and the current view selection.
type Context struct {
	Store *store.TaskStore
	View  view.State

	kv          store.KV
	dataPath    string
	log         lgr.L
	loadWarning error
}

// NewContext opens the configured backend and loads the collection.
// Unreadable stored data does not fail: the context starts empty and
// LoadWarning reports why.
func NewContext(opts Options) (*Context, error) {
	if opts.Logger == nil {
		opts.Logger = lgr.NoOp
	}
	format, err := store.ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	key := opts.Key
	if key == "" {
		key = store.DefaultKey
	}

	kv := opts.KV
	var dataPath string
	if kv == nil {
		kv, dataPath, err = openKV(opts.Backend, opts.DataDir, key, format)
		if err != nil {
			return nil, err
		}
	}

	s, loadErr := store.Open(store.NewAdapter(kv, key, format, store.WithAdapterLogger(opts.Logger)), store.WithLogger(opts.Logger))
	return &Context{
		Store:       s,
		View:        view.NewState(),
		kv:          kv,
		dataPath:    dataPath,
		log:         opts.Logger,
		loadWarning: loadErr,
	}, nil
}

func openKV(backend, dir, key string, format store.Format) (store.KV, string, error) {
	switch backend {
	case "", BackendFile:
		kv, err := store.NewOsFileKV(dir, format.Ext())
		if err != nil {
			return nil, "", fmt.Errorf("open file backend: %w", err)
		}
		return kv, kv.Path(key), nil
	case BackendSQLite:
		path := filepath.Join(dir, "todowing.db")
		kv, err := store.NewSQLiteKV(path)
		if err != nil {
			return nil, "", fmt.Errorf("open sqlite backend: %w", err)
		}
		return kv, path, nil
	default:
		return nil, "", fmt.Errorf("unsupported backend %q (want file or sqlite)", backend)
	}
}

// LoadWarning returns the *store.PersistenceError hit while loading, if any.
func (c *Context) LoadWarning() error {
	return c.loadWarning
}

// DataPath is the file holding the collection, empty when the backend is
// not file based.
func (c *Context) DataPath() string {
	return c.dataPath
}

// Describe renders the current view of the collection.
func (c *Context) Describe() view.Description {
	return c.View.Apply(c.Store.LoadAll())
}

// Close releases the backend.
func (c *Context) Close() error {
	return c.kv.Close()
}
