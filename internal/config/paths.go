package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LocalDataDir is the project-local data directory, used when it exists.
const LocalDataDir = ".todowing"

// GetGlobalDataDir returns the path to the global data directory (~/.todowing).
// It's a variable to allow overriding in tests.
var GetGlobalDataDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".todowing"), nil
}

// GetDataDir returns the directory holding the task collection.
// Resolution order (first match wins):
// 1. Explicit config via "data.dir" (Viper/env/flag)
// 2. Nearest .todowing directory in the working directory or above it
// 3. XDG_DATA_HOME/todowing (if XDG_DATA_HOME is set)
// 4. Global fallback: ~/.todowing
func GetDataDir() string {
	if path := viper.GetString("data.dir"); path != "" {
		return path
	}

	// Per-project lists win over the global one
	if wd, err := os.Getwd(); err == nil {
		if dir, ok := FindLocalDataDir(wd); ok {
			return dir
		}
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, AppName)
	}

	dir, err := GetGlobalDataDir()
	if err != nil {
		return LocalDataDir
	}
	return dir
}

// FindLocalDataDir walks up from start looking for a .todowing directory,
// so commands run in a subdirectory share the project's list.
func FindLocalDataDir(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, LocalDataDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
