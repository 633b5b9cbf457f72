package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/moviefinder/internal/config"
)

func TestConfigSetGet_RoundTrip(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "config.yaml")

	out, _, err := execute(t, nil, "config", "set", "output.default_format", "JSON")
	require.NoError(t, err)
	assert.Contains(t, out, "Set output.default_format = json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)

	out, _, err = execute(t, nil, "config", "get", "output.default_format")
	require.NoError(t, err)
	assert.Equal(t, "json", strings.TrimSpace(out))
}

func TestConfigSet_MasksAPIKey(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, nil, "config", "set", "omdb.api_key", "secret-123")
	require.NoError(t, err)
	assert.NotContains(t, out, "secret-123")
	assert.Contains(t, out, "********")
}

func TestConfigSet_InvalidValue(t *testing.T) {
	home := isolate(t)

	_, _, err := execute(t, nil, "config", "set", "ui.on_failure", "explode")
	require.Error(t, err)

	var validationErr *config.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.NoFileExists(t, filepath.Join(home, "config.yaml"))
}

func TestConfigSet_UnknownKey(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, nil, "config", "set", "nope.key", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestConfigGet_ReflectsEnvironment(t *testing.T) {
	isolate(t)
	env := map[string]string{config.EnvEndpoint: "https://omdb.example.test/"}

	out, _, err := execute(t, env, "config", "get", "omdb.endpoint")
	require.NoError(t, err)
	assert.Equal(t, "https://omdb.example.test/", strings.TrimSpace(out))
}

func TestConfigList(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, keyEnv(), "config", "list")
	require.NoError(t, err)
	for _, k := range config.Keys() {
		assert.Contains(t, out, k)
	}
	assert.NotContains(t, out, testAPIKey)
	assert.Contains(t, out, "********")

	out, _, err = execute(t, keyEnv(), "config", "list", "--reveal", "--json")
	require.NoError(t, err)
	var values map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	assert.Equal(t, testAPIKey, values["omdb.api_key"])
	assert.Equal(t, config.DefaultEndpoint, values["omdb.endpoint"])
}

func TestConfigValidateCmd(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, keyEnv(), "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "OMDb endpoint:")

	_, _, err = execute(t, nil, "config", "validate")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}
