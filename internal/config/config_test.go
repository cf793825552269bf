package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hbnb.yaml")
	data := "storage:\n  file: /tmp/objects.json\nconsole:\n  history_file: /tmp/hbnb_history\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/objects.json", cfg.Storage.File)
	assert.Equal(t, "/tmp/hbnb_history", cfg.Console.HistoryFile)
	assert.Equal(t, defaultPrompt, cfg.Console.Prompt)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadExplicitPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, defaultStorageFile, cfg.Storage.File)
	assert.Equal(t, defaultPrompt, cfg.Console.Prompt)
	assert.Empty(t, cfg.Source)
}

func TestLoadFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, localConfigFileName), []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, localConfigFileName, cfg.Source)
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
