package config

import (
	"github.com/rshade/moviefinder/internal/logging"
)

// ToLoggingConfig converts the YAML logging section into a logging.Config.
// A configured File selects file output; otherwise logs go to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
