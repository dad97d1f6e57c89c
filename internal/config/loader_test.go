package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmaven/cli/internal/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, t.TempDir(), "config.yaml", content)
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	testutil.Isolate(t)

	t.Run("loads config from file", func(t *testing.T) {
		path := writeConfig(t, `
groupId: com.example
version: 0.1.0-SNAPSHOT
kind: library
stack: LIB_SLIM
noGit: true
outputDir: /projects
catalog: ~/catalog.yaml
`)

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "com.example", cfg.GroupID)
		assert.Equal(t, "0.1.0-SNAPSHOT", cfg.Version)
		assert.Equal(t, "library", cfg.Kind)
		assert.Equal(t, "LIB_SLIM", cfg.Stack)
		assert.True(t, cfg.NoGit)
		assert.Equal(t, "/projects", cfg.OutputDir)
		assert.Equal(t, "~/catalog.yaml", cfg.Catalog)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.NoError(t, err)
		assert.Empty(t, cfg.GroupID)
		assert.False(t, cfg.NoGit)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("FMP_GROUP_ID", "org.env")
		t.Setenv("FMP_NO_GIT", "true")
		path := writeConfig(t, "groupId: com.file\nversion: 2.0.0\n")

		loader := NewLoader()
		cfg, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "org.env", cfg.GroupID)
		assert.Equal(t, "2.0.0", cfg.Version)
		assert.True(t, cfg.NoGit)

		assert.Equal(t, SourceEnv, loader.Source("groupId"))
		assert.Equal(t, SourceConfig, loader.Source("version"))
		assert.Equal(t, SourceDefault, loader.Source("kind"))

		v, ok := loader.ConfigValue("groupId")
		assert.True(t, ok)
		assert.Equal(t, "com.file", v)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := writeConfig(t, "groupId: [unclosed\n")
		_, err := NewLoader().Load(path)
		assert.Error(t, err)
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := map[string]string{
		"":                 "",
		"/abs/path":        "/abs/path",
		"~":                home,
		"~/catalog.yaml":   filepath.Join(home, "catalog.yaml"),
		"relative/path":    "relative/path",
		"~other/something": "~other/something",
	}

	for in, want := range tests {
		got, err := ExpandPath(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, ".fresh-maven-project", filepath.Base(paths.HomeDir))
	assert.Equal(t, filepath.Join(paths.HomeDir, "config.yaml"), paths.ConfigFile)
}
