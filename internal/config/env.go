package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// LookupEnvFunc matches os.LookupEnv; tests inject their own.
type LookupEnvFunc func(string) (string, bool)

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Variables that are already set are left alone and missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		err := godotenv.Load(p)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("loading %s: %w", p, err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv(lookup LookupEnvFunc) {
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		c.OMDb.APIKey = v
	}
	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		c.OMDb.Endpoint = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
}
