package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// maskedValue replaces secrets in List output.
const maskedValue = "********"

// KeyValue is one dotted key and its display value.
type KeyValue struct {
	Key   string
	Value string
}

type keyAccessor struct {
	get    func(c *Config) string
	set    func(c *Config, v string) error
	secret bool
}

//nolint:gochecknoglobals // Static dispatch table for dotted keys.
var keyAccessors = map[string]keyAccessor{
	"omdb.api_key": {
		get:    func(c *Config) string { return c.OMDb.APIKey },
		set:    func(c *Config, v string) error { c.OMDb.APIKey = v; return nil },
		secret: true,
	},
	"omdb.endpoint": {
		get: func(c *Config) string { return c.OMDb.Endpoint },
		set: func(c *Config, v string) error { c.OMDb.Endpoint = v; return nil },
	},
	"omdb.timeout": {
		get: func(c *Config) string { return c.OMDb.Timeout.String() },
		set: func(c *Config, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("parsing duration %q: %w", v, err)
			}
			c.OMDb.Timeout = d
			return nil
		},
	},
	"omdb.full_plot": {
		get: func(c *Config) string { return strconv.FormatBool(c.OMDb.FullPlot) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("parsing bool %q: %w", v, err)
			}
			c.OMDb.FullPlot = b
			return nil
		},
	},
	"output.default_format": {
		get: func(c *Config) string { return c.Output.DefaultFormat },
		set: func(c *Config, v string) error { c.Output.DefaultFormat = strings.ToLower(v); return nil },
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) error { c.Logging.Level = v; return nil },
	},
	"logging.format": {
		get: func(c *Config) string { return c.Logging.Format },
		set: func(c *Config, v string) error { c.Logging.Format = v; return nil },
	},
	"logging.file": {
		get: func(c *Config) string { return c.Logging.File },
		set: func(c *Config, v string) error { c.Logging.File = v; return nil },
	},
	"ui.on_failure": {
		get: func(c *Config) string { return c.UI.OnFailure },
		set: func(c *Config, v string) error { c.UI.OnFailure = strings.ToLower(strings.TrimSpace(v)); return nil },
	},
	"ui.alt_screen": {
		get: func(c *Config) string { return strconv.FormatBool(c.UI.AltScreen) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("parsing bool %q: %w", v, err)
			}
			c.UI.AltScreen = b
			return nil
		},
	},
}

// Get returns the value stored under a dotted key such as "omdb.endpoint".
func (c *Config) Get(key string) (string, error) {
	acc, ok := keyAccessors[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	return acc.get(c), nil
}

// Set assigns value to a dotted key and re-validates the result. On failure
// the config is left unchanged.
func (c *Config) Set(key, value string) error {
	acc, ok := keyAccessors[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}

	prev := *c
	if err := acc.set(c, value); err != nil {
		return &ValidationError{Key: key, Err: err}
	}
	if err := c.ValidateSettings(); err != nil {
		*c = prev
		return err
	}
	return nil
}

// List returns every key sorted by name. Secrets are masked unless reveal
// is set.
func (c *Config) List(reveal bool) []KeyValue {
	keys := Keys()
	out := make([]KeyValue, 0, len(keys))
	for _, k := range keys {
		acc := keyAccessors[k]
		v := acc.get(c)
		if acc.secret && !reveal && v != "" {
			v = maskedValue
		}
		out = append(out, KeyValue{Key: k, Value: v})
	}
	return out
}

// Keys returns the supported dotted keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(keyAccessors))
	for k := range keyAccessors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
