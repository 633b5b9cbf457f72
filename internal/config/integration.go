package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Environment variables read by moviefinder. OMDB_API_KEY carries no prefix
// so a .env shared with other OMDb tools works unchanged.
const (
	EnvAPIKey       = "OMDB_API_KEY"
	EnvHome         = "MOVIEFINDER_HOME"
	EnvEndpoint     = "MOVIEFINDER_OMDB_ENDPOINT"
	EnvLogLevel     = "MOVIEFINDER_LOG_LEVEL"
	EnvOutputFormat = "MOVIEFINDER_OUTPUT_FORMAT"
)

// configFileName is the global config file name inside the config directory.
const configFileName = "config.yaml"

// GetConfigDir returns the moviefinder configuration directory.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".moviefinder"), nil
}

// DefaultConfigPath returns the path of the global config file.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DefaultLogPath returns the default log file path, or "" when no config
// directory can be determined.
func DefaultLogPath() string {
	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "logs", "moviefinder.log")
}

// EnsureConfigDir creates the configuration directory.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// EnsureLogDir creates the parent directory of the configured log file.
func (c *Config) EnsureLogDir() error {
	if c.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(c.Logging.File)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}

// globalConfig holds the configuration resolved by the CLI for the current run.
var (
	globalConfig   *Config      //nolint:gochecknoglobals // Singleton pattern for configuration
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig
)

// SetGlobalConfig installs cfg as the configuration for this process.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the process configuration, falling back to
// defaults when none has been installed.
func GetGlobalConfig() *Config {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
}
