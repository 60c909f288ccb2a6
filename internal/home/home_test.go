package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("with explicit path", func(t *testing.T) {
		dir, err := New("/tmp/test-menuscan")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir.Path() != "/tmp/test-menuscan" {
			t.Errorf("expected path /tmp/test-menuscan, got %s", dir.Path())
		}
	})

	t.Run("with empty path uses default", func(t *testing.T) {
		dir, err := New("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, DefaultDirName)
		if dir.Path() != expected {
			t.Errorf("expected path %s, got %s", expected, dir.Path())
		}
	})
}

func TestDir_Paths(t *testing.T) {
	dir, _ := New("/tmp/test-menuscan")

	t.Run("ReportsPath", func(t *testing.T) {
		expected := "/tmp/test-menuscan/reports"
		if dir.ReportsPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.ReportsPath())
		}
	})

	t.Run("ConfigPath", func(t *testing.T) {
		expected := "/tmp/test-menuscan/config.yaml"
		if dir.ConfigPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.ConfigPath())
		}
	})

	t.Run("VocabPath", func(t *testing.T) {
		expected := "/tmp/test-menuscan/vocab.yaml"
		if dir.VocabPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.VocabPath())
		}
	})

	t.Run("ReportPath", func(t *testing.T) {
		expected := "/tmp/test-menuscan/reports/lunch-menu.json"
		if got := dir.ReportPath("lunch-menu", "json"); got != expected {
			t.Errorf("expected %s, got %s", expected, got)
		}
	})
}

func TestDir_EnsureExists(t *testing.T) {
	tmpDir := t.TempDir()
	scanDir := filepath.Join(tmpDir, "menuscan-test")

	dir, err := New(scanDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Directory shouldn't exist yet
	if dir.Exists() {
		t.Error("directory should not exist before EnsureExists")
	}

	// Create it
	if err := dir.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}

	// Now it should exist
	if !dir.Exists() {
		t.Error("directory should exist after EnsureExists")
	}

	// Reports directory should also exist
	if _, err := os.Stat(dir.ReportsPath()); os.IsNotExist(err) {
		t.Error("reports directory should exist after EnsureExists")
	}
}

func TestDir_ConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	dir, _ := New(tmpDir)

	// Config doesn't exist
	if dir.ConfigExists() {
		t.Error("config should not exist initially")
	}

	// Create a config file
	configPath := dir.ConfigPath()
	if err := os.WriteFile(configPath, []byte("output:\n  format: json\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Now it should exist
	if !dir.ConfigExists() {
		t.Error("config should exist after creation")
	}
}
