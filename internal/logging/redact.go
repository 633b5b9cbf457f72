package logging

import (
	"net/url"
)

// redactedValue replaces secret query parameter values.
const redactedValue = "REDACTED"

// secretParams lists query parameters that must never reach a log file.
//
//nolint:gochecknoglobals // Lookup table.
var secretParams = []string{"apikey", "api_key", "token"}

// SanitizeURL returns raw with secret query parameters redacted. Unparseable
// input is returned unchanged.
func SanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, redactedValue)
			changed = true
		}
	}
	if !changed {
		return raw
	}
	u.RawQuery = q.Encode()
	return u.String()
}
