// Package config loads bottleshop settings and resolves the files they name:
// the SQLite store, catalog documents and the TUI log.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// dataDir holds the store and logs unless the config points elsewhere.
const dataDir = "~/.local/share/bottleshop"

// DataPath returns name inside the default data directory, unexpanded so it
// can be shown as a default.
func DataPath(name string) string {
	return dataDir + "/" + name
}

// ExpandPath resolves a leading ~ to the home directory and then expands
// $VAR references. Paths like ~user are left alone.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return ""
	case path == "~", strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return os.ExpandEnv(path)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return nil
}
