package omdb

import (
	"fmt"

	"github.com/rshade/moviefinder/internal/engine"
)

// Sentinels re-exported from engine so callers can match either name.
var (
	ErrNetwork = engine.ErrNetwork
	ErrParse   = engine.ErrParse
)

// NetworkError reports a transport failure or a non-2xx response.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("omdb %s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("omdb %s: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrNetwork and the underlying cause.
func (e *NetworkError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrNetwork}
	}
	return []error{ErrNetwork, e.Err}
}

// ParseError reports a response body that could not be decoded.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("omdb %s: decoding response: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrParse and the decoder error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
