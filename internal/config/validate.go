package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validation sentinels. ValidationError wraps one of these.
var (
	ErrMissingAPIKey   = errors.New("OMDb API key is not set")
	ErrInvalidEndpoint = errors.New("invalid OMDb endpoint")
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrInvalidPolicy   = errors.New("invalid failure policy")
	ErrInvalidTimeout  = errors.New("invalid timeout")
)

// Supported output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// ValidationError reports a configuration problem with the offending key.
type ValidationError struct {
	Key string
	Err error
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidOutputFormat reports whether format is supported.
func IsValidOutputFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatTable, FormatJSON, FormatNDJSON:
		return true
	default:
		return false
	}
}

// Validate checks that the configuration is usable. The API key is required
// up front so a missing key fails at startup instead of on the first search.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OMDb.APIKey) == "" {
		return &ValidationError{
			Key: "omdb.api_key",
			Err: fmt.Errorf("%w (set %s, add it to .env, or run 'moviefinder config set omdb.api_key <key>')",
				ErrMissingAPIKey, EnvAPIKey),
		}
	}
	return c.ValidateSettings()
}

// ValidateSettings checks everything except the API key. `config validate`
// and `config set` use it so a partially written config can still be edited.
func (c *Config) ValidateSettings() error {
	u, err := url.Parse(c.OMDb.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ValidationError{
			Key: "omdb.endpoint",
			Err: fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.OMDb.Endpoint),
		}
	}
	if c.OMDb.Timeout <= 0 {
		return &ValidationError{
			Key: "omdb.timeout",
			Err: fmt.Errorf("%w: %s", ErrInvalidTimeout, c.OMDb.Timeout),
		}
	}
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		return &ValidationError{
			Key: "output.default_format",
			Err: fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.DefaultFormat),
		}
	}
	// Same normalisation as engine.ParseFailurePolicy; blank means preserve.
	switch strings.ToLower(strings.TrimSpace(c.UI.OnFailure)) {
	case "", "preserve", "clear":
	default:
		return &ValidationError{
			Key: "ui.on_failure",
			Err: fmt.Errorf("%w: %q (want preserve or clear)", ErrInvalidPolicy, c.UI.OnFailure),
		}
	}
	return nil
}
