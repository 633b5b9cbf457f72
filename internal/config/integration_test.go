package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/moviefinder/internal/config"
)

func TestGlobalConfig(t *testing.T) {
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	first := config.GetGlobalConfig()
	require.NotNil(t, first)
	assert.Same(t, first, config.GetGlobalConfig())

	custom := config.New()
	custom.Output.DefaultFormat = "json"
	config.SetGlobalConfig(custom)
	assert.Equal(t, "json", config.GetGlobalConfig().Output.DefaultFormat)
}

func TestGetConfigDir(t *testing.T) {
	t.Run("home override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(config.EnvHome, dir)

		got, err := config.GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, dir, got)

		path, err := config.DefaultConfigPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "config.yaml"), path)
		assert.Equal(t, filepath.Join(dir, "logs", "moviefinder.log"), config.DefaultLogPath())
	})

	t.Run("user home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(config.EnvHome, "")
		t.Setenv("HOME", home)

		got, err := config.GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".moviefinder"), got)
	})
}

func TestEnsureConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "home")
	t.Setenv(config.EnvHome, dir)

	require.NoError(t, config.EnsureConfigDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	cfg := config.New()
	cfg.Logging.File = filepath.Join(t.TempDir(), "a", "b", "app.log")

	require.NoError(t, cfg.EnsureLogDir())
	_, err := os.Stat(filepath.Dir(cfg.Logging.File))
	require.NoError(t, err)

	cfg.Logging.File = ""
	assert.NoError(t, cfg.EnsureLogDir())
}

func TestEnsureLogDirError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cfg := config.New()
	cfg.Logging.File = filepath.Join(blocker, "logs", "app.log")
	err := cfg.EnsureLogDir()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create log directory")
}
