package store

import "github.com/josephgoksu/todowing/models"

// KV is the physical persistence medium: a flat key-value store of blobs.
// Implementations must leave the previous value intact when Set fails.
type KV interface {
	// Get returns the value stored under key. The boolean is false when the
	// key has never been written.
	Get(key string) ([]byte, bool, error)

	// Set replaces the value stored under key.
	Set(key string, value []byte) error

	// Preserve copies or moves the value stored under key aside so a later
	// Set cannot destroy it, and returns where it went. A missing key
	// returns "" and a nil error.
	Preserve(key string) (string, error)

	// Close releases any resources held by the backend, such as
	// database connections.
	Close() error
}

// Persister reads and writes the whole task collection at once.
// It is the contract the TaskStore relies on; Adapter is the production
// implementation.
type Persister interface {
	// Load returns the persisted collection in stored order. A missing
	// collection is an empty slice and a nil error.
	Load() ([]models.Task, error)

	// Save writes the entire collection, replacing the previous copy.
	Save(tasks []models.Task) error
}
