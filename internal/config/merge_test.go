package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/moviefinder/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave them intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		OMDb: config.OMDbConfig{
			APIKey:   "global-key",
			Endpoint: "https://omdb.example.com/",
			Timeout:  5 * time.Second,
			FullPlot: true,
		},
		Output: config.OutputConfig{DefaultFormat: "table"},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "/tmp/moviefinder.log",
		},
		UI: config.UIConfig{OnFailure: "preserve", AltScreen: true},
	}
}

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, "global-key", target.OMDb.APIKey)
	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, "preserve", target.UI.OnFailure)
}

func TestShallowMergeYAML_SectionReplacedWholesale(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
omdb:
  api_key: project-key
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "project-key", target.OMDb.APIKey)
	assert.False(t, target.OMDb.FullPlot, "booleans absent from the section reset to zero")
	// Blank strings and durations are refilled with built-in defaults.
	assert.Equal(t, config.DefaultEndpoint, target.OMDb.Endpoint)
	assert.Equal(t, config.DefaultTimeout, target.OMDb.Timeout)
}

func TestShallowMergeYAML_OMDbSectionKeepsAPIKey(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
omdb:
  full_plot: false
  timeout: 2s
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "global-key", target.OMDb.APIKey)
	assert.False(t, target.OMDb.FullPlot)
	assert.Equal(t, 2*time.Second, target.OMDb.Timeout)
	assert.Equal(t, config.DefaultEndpoint, target.OMDb.Endpoint)
}

func TestShallowMergeYAML_MultipleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
logging:
  level: debug
  format: console
ui:
  on_failure: clear
  alt_screen: false
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "console", target.Logging.Format)
	assert.Empty(t, target.Logging.File)
	assert.Equal(t, "clear", target.UI.OnFailure)
	assert.False(t, target.UI.AltScreen)
	assert.Equal(t, "table", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_Durations(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
omdb:
  api_key: k
  timeout: 750ms
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, 750*time.Millisecond, target.OMDb.Timeout)
}

func TestShallowMergeYAML_EmptyAndCommentOnly(t *testing.T) {
	for name, content := range map[string]string{
		"empty":        "",
		"comment only": "# nothing here\n",
	} {
		t.Run(name, func(t *testing.T) {
			target := newDefaultTarget()
			require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, content)))
			assert.Equal(t, newDefaultTarget(), target)
		})
	}
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  anything: true
output:
  default_format: ndjson
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "ndjson", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("corrupted yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "omdb: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "ignored"))
	})

	t.Run("section type mismatch", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "ui: just-a-string\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"ui"`)
	})
}
