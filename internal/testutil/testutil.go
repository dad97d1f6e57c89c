// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// EnvVars are the environment variables read by the CLI.
var EnvVars = []string{
	"FMP_CONFIG",
	"FMP_GROUP_ID",
	"FMP_VERSION",
	"FMP_KIND",
	"FMP_STACK",
	"FMP_NO_GIT",
	"FMP_OUTPUT_DIR",
	"FMP_CATALOG",
	"FMP_TEMPLATES",
}

// Isolate points HOME at an empty directory and unsets every FMP_*
// variable for the duration of the test, so no user configuration is read.
// The previous environment is restored on cleanup.
func Isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range EnvVars {
		// Setenv registers the restore; Unsetenv makes the variable absent.
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("failed to unset %s: %v", name, err)
		}
	}
	return home
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test when it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// IsEmptyDir reports whether dir exists and has no entries.
func IsEmptyDir(t *testing.T, dir string) bool {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", dir, err)
	}
	return len(entries) == 0
}
