// Package config loads, validates and persists moviefinder configuration.
//
// Values are resolved in this order, later sources winning:
//  1. built-in defaults
//  2. the global file (~/.moviefinder/config.yaml, or $MOVIEFINDER_HOME/config.yaml)
//  3. a project overlay (./.moviefinder.yaml), merged section by section;
//     an overlay omdb section without api_key keeps the global key
//  4. a .env file in the working directory (never overrides the real environment)
//  5. environment variables
//  6. CLI flags, applied by the caller
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultEndpoint      = "http://www.omdbapi.com/"
	DefaultTimeout       = 10 * time.Second
	DefaultOutputFormat  = "table"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"
	DefaultFailurePolicy = "preserve"
)

// Config is the full moviefinder configuration.
type Config struct {
	OMDb    OMDbConfig    `yaml:"omdb"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`

	configPath string
}

// OMDbConfig configures the movie database client.
type OMDbConfig struct {
	APIKey   string        `yaml:"api_key"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	FullPlot bool          `yaml:"full_plot"`
}

// OutputConfig configures non-interactive command output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig configures the log sink. An empty File means stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// UIConfig configures the interactive terminal UI.
type UIConfig struct {
	// OnFailure is "preserve" (keep stale results on a failed request) or
	// "clear" (blank them).
	OnFailure string `yaml:"on_failure"`
	AltScreen bool   `yaml:"alt_screen"`
}

// New returns a Config populated with defaults and pointed at the default
// global config path.
func New() *Config {
	cfg := &Config{
		OMDb: OMDbConfig{
			Endpoint: DefaultEndpoint,
			Timeout:  DefaultTimeout,
		},
		Output: OutputConfig{DefaultFormat: DefaultOutputFormat},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			File:   DefaultLogPath(),
		},
		UI: UIConfig{
			OnFailure: DefaultFailurePolicy,
			AltScreen: true,
		},
	}
	if path, err := DefaultConfigPath(); err == nil {
		cfg.configPath = path
	}
	return cfg
}

// Load returns defaults overlaid with the YAML file at path. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := New()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores defaults for fields a config file left blank.
func (c *Config) fillDefaults() {
	defaults := New()
	if c.OMDb.Endpoint == "" {
		c.OMDb.Endpoint = defaults.OMDb.Endpoint
	}
	if c.OMDb.Timeout <= 0 {
		c.OMDb.Timeout = defaults.OMDb.Timeout
	}
	if c.Output.DefaultFormat == "" {
		c.Output.DefaultFormat = defaults.Output.DefaultFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	if c.UI.OnFailure == "" {
		c.UI.OnFailure = defaults.UI.OnFailure
	}
}

// ConfigPath returns the file Save writes to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	// The file may hold an API key.
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}
