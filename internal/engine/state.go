package engine

import "sync"

// Phase is the search axis of the view state machine.
type Phase int

const (
	// PhaseIdle means no search has completed yet.
	PhaseIdle Phase = iota
	// PhaseSearching means a search is in flight.
	PhaseSearching
	// PhaseResults means the last applied search matched at least one title.
	PhaseResults
	// PhaseNoResults means the last applied search matched nothing.
	PhaseNoResults
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSearching:
		return "searching"
	case PhaseResults:
		return "results"
	case PhaseNoResults:
		return "no_results"
	default:
		return "unknown"
	}
}

// ViewState is everything the renderer needs.
//
// NoResults is true iff the most recently applied search returned zero
// results, and Results is empty whenever NoResults is true. Selected is
// independent of Results and survives unrelated searches.
type ViewState struct {
	Query     string
	Results   []MovieSummary
	Total     int
	NoResults bool
	Selected  *MovieDetail
	Phase     Phase
}

// Clone returns a deep copy of the state.
func (s ViewState) Clone() ViewState {
	out := s
	if s.Results != nil {
		out.Results = make([]MovieSummary, len(s.Results))
		copy(out.Results, s.Results)
	}
	if s.Selected != nil {
		d := *s.Selected
		out.Selected = &d
	}
	return out
}

// HasSelection reports whether a detail record is shown.
func (s ViewState) HasSelection() bool { return s.Selected != nil }

// RequestKind identifies a request stream with its own sequence counter.
type RequestKind int

const (
	// RequestSearch identifies search requests.
	RequestSearch RequestKind = iota
	// RequestDetail identifies detail requests.
	RequestDetail
)

// String returns the lowercase name of the kind.
func (k RequestKind) String() string {
	if k == RequestDetail {
		return "detail"
	}
	return "search"
}

// Ticket identifies one issued request. Seq increases monotonically per
// kind; only the highest Seq issued for a kind may be applied.
type Ticket struct {
	Kind  RequestKind
	Seq   uint64
	Input string
}

// Store owns the ViewState and the per-kind sequence counters. All methods
// are safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	state  ViewState
	seq    [2]uint64
	policy FailurePolicy

	// phaseBeforeSearch is restored when a search fails under
	// PreserveOnFailure.
	phaseBeforeSearch Phase
}

// NewStore returns an empty store using policy for failed requests.
func NewStore(policy FailurePolicy) *Store {
	return &Store{policy: policy}
}

// Policy returns the store's failure policy.
func (s *Store) Policy() FailurePolicy {
	return s.policy
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Phase returns the current search phase.
func (s *Store) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Phase
}

// Latest returns the most recent sequence number issued for kind, or 0 when
// none has been issued.
func (s *Store) Latest(kind RequestKind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq[kind]
}

// issue allocates the next ticket for kind. The caller holds s.mu.
func (s *Store) issue(kind RequestKind, input string) Ticket {
	s.seq[kind]++
	return Ticket{Kind: kind, Seq: s.seq[kind], Input: input}
}

// current reports whether t is the latest ticket of its kind. The caller
// holds s.mu.
func (s *Store) current(t Ticket) bool {
	return t.Seq != 0 && t.Seq == s.seq[t.Kind]
}

func (s *Store) beginSearch(query string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhaseSearching {
		s.phaseBeforeSearch = s.state.Phase
	}
	s.state.Phase = PhaseSearching
	return s.issue(RequestSearch, query)
}

// applySearch commits o if its ticket is current and reports whether it did.
func (s *Store) applySearch(o SearchOutcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current(o.Ticket) {
		return false
	}

	switch {
	case o.Err != nil:
		if s.policy == ClearOnFailure {
			s.state.Results = nil
			s.state.Total = 0
			s.state.NoResults = false
			s.state.Phase = PhaseIdle
		} else {
			s.state.Phase = s.phaseBeforeSearch
		}
	case o.Empty || len(o.Results) == 0:
		s.state.Query = o.Ticket.Input
		s.state.Results = []MovieSummary{}
		s.state.Total = 0
		s.state.NoResults = true
		s.state.Phase = PhaseNoResults
	default:
		results := make([]MovieSummary, len(o.Results))
		copy(results, o.Results)
		s.state.Query = o.Ticket.Input
		s.state.Results = results
		s.state.Total = o.Total
		s.state.NoResults = false
		s.state.Phase = PhaseResults
	}
	return true
}

func (s *Store) beginDetail(id string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issue(RequestDetail, id)
}

// applyDetail commits o if its ticket is current and reports whether it did.
func (s *Store) applyDetail(o DetailOutcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current(o.Ticket) {
		return false
	}

	if o.Err != nil || o.Detail == nil {
		if s.policy == ClearOnFailure {
			s.state.Selected = nil
		}
		return true
	}

	d := *o.Detail
	s.state.Selected = &d
	return true
}

// clearSelection drops the selected record and invalidates any detail
// request still in flight.
func (s *Store) clearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Selected = nil
	s.seq[RequestDetail]++
}
