// Package logger provides structured logging, crash logging and panic
// recovery for todowing.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// CrashLogDir is the directory for crash logs relative to the data dir
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep
	MaxCrashLogs = 10

	crashPrefix = "crash_"
	crashSuffix = ".yaml"
)

// crashState is what a crash report knows about the running command.
type crashState struct {
	mu        sync.RWMutex
	basePath  string
	version   string
	command   string
	lastInput string
	viewState string
}

var crash = &crashState{}

// SetBasePath sets the directory crash logs are written under (the data dir).
func SetBasePath(path string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.basePath = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.version = version
}

// SetCommand sets the current command being executed.
func SetCommand(cmd string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.command = cmd
}

// SetLastInput records the last text typed by the user.
func SetLastInput(input string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.lastInput = truncateForLog(strings.TrimSpace(input), 500)
}

// SetViewState records the active filter and query, e.g. "status=active query=milk".
func SetViewState(state string) {
	crash.mu.Lock()
	defer crash.mu.Unlock()
	crash.viewState = state
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog is one crash report, written as a YAML document.
type CrashLog struct {
	Timestamp  time.Time `yaml:"timestamp"`
	Version    string    `yaml:"version"`
	Command    string    `yaml:"command"`
	PanicValue string    `yaml:"panic"`
	LastInput  string    `yaml:"last_input,omitempty"`
	ViewState  string    `yaml:"view_state,omitempty"`
	GoVersion  string    `yaml:"go_version"`
	Platform   string    `yaml:"platform"`
	StackTrace string    `yaml:"stack"`
}

// HandlePanic recovers from a panic, writes a crash log and exits with 1.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	path, err := RecordCrash(r)
	reportCrash(os.Stderr, r, path, err)
	os.Exit(1)
}

// RecordCrash writes a crash log for panicValue and returns its path.
func RecordCrash(panicValue any) (string, error) {
	return writeCrashLog(newCrashLog(panicValue))
}

func reportCrash(w io.Writer, panicValue any, path string, err error) {
	if err != nil {
		fmt.Fprintf(w, "\n[CRASH] could not write crash log: %v\n", err)
		fmt.Fprintf(w, "[CRASH] panic: %v\n%s\n", panicValue, debug.Stack())
		return
	}
	fmt.Fprintf(w, "\ntodowing hit an unexpected error and stopped.\n")
	fmt.Fprintf(w, "A crash log has been saved to:\n  %s\n", path)
}

func newCrashLog(panicValue any) CrashLog {
	crash.mu.RLock()
	defer crash.mu.RUnlock()

	return CrashLog{
		Timestamp:  time.Now(),
		Version:    crash.version,
		Command:    crash.command,
		PanicValue: fmt.Sprintf("%v", panicValue),
		LastInput:  crash.lastInput,
		ViewState:  crash.viewState,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		StackTrace: string(debug.Stack()),
	}
}

// path returns the file for the log. attempt > 0 adds a counter for logs
// written within the same millisecond.
func (l CrashLog) path(attempt int) string {
	name := crashPrefix + l.Timestamp.Format("20060102_150405.000")
	if attempt > 0 {
		name += fmt.Sprintf("_%d", attempt)
	}
	return filepath.Join(crashLogDir(), name+crashSuffix)
}

func writeCrashLog(log CrashLog) (string, error) {
	dir := crashLogDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}
	// Rotation failures must not hide the crash itself
	if err := cleanOldCrashLogs(dir, MaxCrashLogs-1); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] failed to clean old crash logs: %v\n", err)
	}

	data, err := yaml.Marshal(log)
	if err != nil {
		return "", fmt.Errorf("encode crash log: %w", err)
	}
	for attempt := 0; ; attempt++ {
		path := log.path(attempt)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("write crash log: %w", err)
		}
		_, err = f.Write(data)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return "", fmt.Errorf("write crash log: %w", err)
		}
		return path, nil
	}
}

func crashLogDir() string {
	crash.mu.RLock()
	basePath := crash.basePath
	crash.mu.RUnlock()

	if basePath == "" {
		basePath = ".todowing"
	}
	return filepath.Join(basePath, CrashLogDir)
}

func isCrashLog(e os.DirEntry) bool {
	return !e.IsDir() && strings.HasPrefix(e.Name(), crashPrefix) && strings.HasSuffix(e.Name(), crashSuffix)
}

// cleanOldCrashLogs keeps the newest keep crash logs in dir.
func cleanOldCrashLogs(dir string, keep int) error {
	logs, err := listCrashLogs(dir)
	if err != nil || len(logs) <= keep {
		return err
	}
	// Names embed the timestamp, so lexical order is chronological
	for _, p := range logs[:len(logs)-keep] {
		if err := os.Remove(p); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", filepath.Base(p), err)
		}
	}
	return nil
}

func listCrashLogs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var logs []string
	for _, e := range entries {
		if isCrashLog(e) {
			logs = append(logs, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(logs)
	return logs, nil
}

// ListCrashLogs returns the crash logs on disk, oldest first.
func ListCrashLogs() ([]string, error) {
	return listCrashLogs(crashLogDir())
}

// ReadCrashLog decodes a crash log file.
func ReadCrashLog(path string) (CrashLog, error) {
	var log CrashLog
	data, err := os.ReadFile(path)
	if err != nil {
		return log, err
	}
	if err := yaml.Unmarshal(data, &log); err != nil {
		return log, fmt.Errorf("decode crash log %s: %w", path, err)
	}
	return log, nil
}
