package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

const checksumSuffix = ".checksum"

// FileKV stores each key as a file in a directory. Every value has a
// sha256 checksum sidecar and is replaced atomically (temp file + rename),
// so a failed write leaves the previous value readable.
type FileKV struct {
	fs  afero.Fs
	dir string
	ext string

	// lock serializes access across processes. Only set for the OS
	// filesystem; in-memory filesystems are private to one process.
	lock *flock.Flock
}

// NewFileKV creates a FileKV rooted at dir on fs. ext is appended to every
// key to form the file name (e.g. ".json").
// Use afero.NewMemMapFs() for testing.
func NewFileKV(fs afero.Fs, dir, ext string) (*FileKV, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileKV{fs: fs, dir: dir, ext: ext}, nil
}

// NewOsFileKV creates a FileKV on the real filesystem guarded by an advisory
// file lock, so the CLI and a running TUI do not interleave writes.
func NewOsFileKV(dir, ext string) (*FileKV, error) {
	kv, err := NewFileKV(afero.NewOsFs(), dir, ext)
	if err != nil {
		return nil, err
	}
	kv.lock = flock.New(filepath.Join(dir, ".lock"))
	return kv, nil
}

// Path returns the file backing key.
func (s *FileKV) Path(key string) string {
	return filepath.Join(s.dir, key+s.ext)
}

// calculateChecksum computes the SHA256 checksum of the given data.
func calculateChecksum(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data) // Write never returns an error
	return hex.EncodeToString(hasher.Sum(nil))
}

func (s *FileKV) acquire() (func(), error) {
	if s.lock == nil {
		return func() {}, nil
	}
	if err := s.lock.Lock(); err != nil {
		return nil, fmt.Errorf("could not lock %s: %w", s.dir, err)
	}
	return func() { _ = s.lock.Unlock() }, nil
}

// Get reads key and verifies its checksum when a sidecar exists.
func (s *FileKV) Get(key string) ([]byte, bool, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, false, err
	}
	defer release()

	path := s.Path(key)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	checksumPath := path + checksumSuffix
	expected, err := afero.ReadFile(s.fs, checksumPath)
	switch {
	case err == nil:
		if actual := calculateChecksum(data); actual != strings.TrimSpace(string(expected)) {
			return nil, true, fmt.Errorf("checksum mismatch for %s - file is corrupt or tampered", path)
		}
	case os.IsNotExist(err):
		// Written by hand or before checksums; the next Set adds one.
	default:
		return nil, true, fmt.Errorf("error checking checksum file %s: %w", checksumPath, err)
	}

	return data, true, nil
}

// Set writes value and its checksum to temp files, then renames both into
// place.
func (s *FileKV) Set(key string, value []byte) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	path := s.Path(key)
	tempPath := path + ".tmp"
	checksumPath := path + checksumSuffix
	tempChecksumPath := checksumPath + ".tmp"

	defer func() { _ = s.fs.Remove(tempPath) }()
	defer func() { _ = s.fs.Remove(tempChecksumPath) }()

	if err := afero.WriteFile(s.fs, tempPath, value, 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary data file %s: %w", tempPath, err)
	}
	if err := afero.WriteFile(s.fs, tempChecksumPath, []byte(calculateChecksum(value)), 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary checksum file %s: %w", tempChecksumPath, err)
	}

	// Drop the old sidecar first: a data file without a sidecar still loads,
	// a data file with a stale sidecar does not.
	if err := s.fs.Remove(checksumPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove checksum file %s: %w", checksumPath, err)
	}
	if err := s.fs.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary data file %s to %s: %w", tempPath, path, err)
	}
	if err := s.fs.Rename(tempChecksumPath, checksumPath); err != nil {
		return fmt.Errorf("data file %s updated, but failed to update checksum file %s: %w", path, checksumPath, err)
	}
	return nil
}

// Preserve renames the file behind key, and its checksum, to a timestamped
// ".corrupt-" sibling and returns the new path.
func (s *FileKV) Preserve(key string) (string, error) {
	release, err := s.acquire()
	if err != nil {
		return "", err
	}
	defer release()

	path := s.Path(key)
	if _, err := s.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat data file %s: %w", path, err)
	}

	dst := path + corruptSuffix(time.Now())
	if err := s.fs.Rename(path, dst); err != nil {
		return "", fmt.Errorf("failed to move %s aside: %w", path, err)
	}
	if err := s.fs.Rename(path+checksumSuffix, dst+checksumSuffix); err != nil && !os.IsNotExist(err) {
		return dst, fmt.Errorf("moved %s to %s, but not its checksum: %w", path, dst, err)
	}
	return dst, nil
}

// Close is a no-op; FileKV holds no open handles between calls.
func (s *FileKV) Close() error {
	return nil
}
