package engine

import (
	"fmt"
	"strings"
)

// FailurePolicy decides what a failed request does to state it would have
// replaced.
type FailurePolicy int

const (
	// PreserveOnFailure keeps the last good results and selection visible.
	PreserveOnFailure FailurePolicy = iota
	// ClearOnFailure blanks them so stale data is never shown.
	ClearOnFailure
)

// String returns the config spelling of the policy.
func (p FailurePolicy) String() string {
	if p == ClearOnFailure {
		return "clear"
	}
	return "preserve"
}

// ParseFailurePolicy parses "preserve" or "clear". An empty string selects
// PreserveOnFailure.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "preserve":
		return PreserveOnFailure, nil
	case "clear":
		return ClearOnFailure, nil
	default:
		return PreserveOnFailure, fmt.Errorf("unknown failure policy %q", s)
	}
}
