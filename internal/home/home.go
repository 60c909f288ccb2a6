// Package home manages the menuscan home directory layout.
package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the menuscan home directory.
	DefaultDirName = ".menuscan"

	// ReportsDirName is the subdirectory for saved analysis reports.
	ReportsDirName = "reports"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"

	// VocabFileName is the default vocabulary overrides file name.
	VocabFileName = "vocab.yaml"
)

// Dir represents the menuscan home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.menuscan).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// ReportsPath returns the path to the reports directory.
func (d *Dir) ReportsPath() string {
	return filepath.Join(d.path, ReportsDirName)
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// VocabPath returns the path to the default vocabulary overrides file.
func (d *Dir) VocabPath() string {
	return filepath.Join(d.path, VocabFileName)
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	if err := os.MkdirAll(d.ReportsPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}

// VocabExists returns true if the vocabulary overrides file exists.
func (d *Dir) VocabExists() bool {
	_, err := os.Stat(d.VocabPath())
	return err == nil
}

// ReportPath returns the path for a saved report by menu name.
func (d *Dir) ReportPath(name, format string) string {
	return filepath.Join(d.ReportsPath(), fmt.Sprintf("%s.%s", name, format))
}
