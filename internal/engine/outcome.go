package engine

import (
	"context"
	"errors"
	"net"
)

// Sentinel errors for the failure taxonomy. Upstream clients wrap these so
// Kind can classify their errors without knowing their concrete types.
var (
	ErrNetwork = errors.New("network failure")
	ErrParse   = errors.New("malformed response")
)

// FailureKind classifies the result of a request.
type FailureKind int

const (
	// FailureNone means the request succeeded.
	FailureNone FailureKind = iota
	// FailureNetwork covers transport errors, timeouts and non-2xx statuses.
	FailureNetwork
	// FailureParse covers response bodies that could not be decoded.
	FailureParse
	// FailureEmpty is a successful search that matched nothing. It is an
	// outcome, not an error.
	FailureEmpty
	// FailureUnknown is any error outside the taxonomy.
	FailureUnknown
)

// String returns the lowercase name of the kind.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureNetwork:
		return "network"
	case FailureParse:
		return "parse"
	case FailureEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Kind classifies err into the failure taxonomy.
func Kind(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	if errors.Is(err, ErrParse) {
		return FailureParse
	}
	if errors.Is(err, ErrNetwork) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return FailureNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return FailureNetwork
	}
	return FailureUnknown
}

// SearchOutcome is the result of one search. Exactly one of the following
// holds: Err is set, Empty is true, or Results is non-empty.
type SearchOutcome struct {
	Ticket  Ticket
	Results []MovieSummary
	Total   int
	Empty   bool
	Err     error
}

// Kind classifies the outcome.
func (o SearchOutcome) Kind() FailureKind {
	if o.Err != nil {
		return Kind(o.Err)
	}
	if o.Empty {
		return FailureEmpty
	}
	return FailureNone
}

// OK reports whether the search completed, with or without matches.
func (o SearchOutcome) OK() bool { return o.Err == nil }

// DetailOutcome is the result of one detail fetch. Detail is nil iff Err is set.
type DetailOutcome struct {
	Ticket Ticket
	Detail *MovieDetail
	Err    error
}

// Kind classifies the outcome.
func (o DetailOutcome) Kind() FailureKind { return Kind(o.Err) }

// OK reports whether the fetch succeeded.
func (o DetailOutcome) OK() bool { return o.Err == nil }
