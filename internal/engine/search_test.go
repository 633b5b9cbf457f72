package engine

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchController_Search_Matches(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	eng := New(client, PreserveOnFailure)

	outcome := eng.Search.Search(ctx, "Batman")

	require.True(t, outcome.OK())
	assert.False(t, outcome.Empty)
	assert.Equal(t, FailureNone, outcome.Kind())

	state := eng.Snapshot()
	assert.Equal(t, []MovieSummary{{ID: "tt0372784", Title: "Batman Begins", PosterURL: "url1"}}, state.Results)
	assert.False(t, state.NoResults)
	assert.Equal(t, "Batman", state.Query)
	assert.Equal(t, PhaseResults, state.Phase)
}

func TestSearchController_Search_PreservesUpstreamOrder(t *testing.T) {
	client := newFakeClient()
	eng := New(client, PreserveOnFailure)

	eng.Search.Search(context.Background(), "Star")

	state := eng.Snapshot()
	assert.Equal(t, client.pages["Star"].Results, state.Results)
	assert.Equal(t, 4213, state.Total)
}

func TestSearchController_Search_NoMatches(t *testing.T) {
	eng := New(newFakeClient(), PreserveOnFailure)

	outcome := eng.Search.Search(context.Background(), "zzzxq123")

	require.True(t, outcome.OK())
	assert.True(t, outcome.Empty)
	assert.Equal(t, FailureEmpty, outcome.Kind())

	state := eng.Snapshot()
	assert.NotNil(t, state.Results)
	assert.Empty(t, state.Results)
	assert.True(t, state.NoResults)
	assert.Equal(t, PhaseNoResults, state.Phase)
}

func TestSearchController_Search_NoResultsClearsPreviousResults(t *testing.T) {
	eng := New(newFakeClient(), PreserveOnFailure)
	ctx := context.Background()

	eng.Search.Search(ctx, "Batman")
	eng.Search.Search(ctx, "zzzxq123")

	state := eng.Snapshot()
	assert.Empty(t, state.Results)
	assert.True(t, state.NoResults)

	eng.Search.Search(ctx, "Batman")
	state = eng.Snapshot()
	assert.Len(t, state.Results, 1)
	assert.False(t, state.NoResults)
}

func TestSearchController_Search_EmptyQueryPassedThrough(t *testing.T) {
	client := newFakeClient()
	eng := New(client, PreserveOnFailure)

	eng.Search.Search(context.Background(), "")

	assert.Equal(t, []string{""}, client.searchCalls)
	assert.True(t, eng.Snapshot().NoResults)
}

func TestSearchController_Search_Idempotent(t *testing.T) {
	eng := New(newFakeClient(), PreserveOnFailure)
	ctx := context.Background()

	eng.Search.Search(ctx, "Star")
	first := eng.Snapshot()
	eng.Search.Search(ctx, "Star")
	second := eng.Snapshot()

	assert.Equal(t, first, second)
}

func TestSearchController_Search_NetworkFailurePreservesState(t *testing.T) {
	client := newFakeClient()
	eng := New(client, PreserveOnFailure)
	ctx := context.Background()

	eng.Search.Search(ctx, "Batman")
	before := eng.Snapshot()

	client.setSearchErr(fmt.Errorf("dial tcp: %w", ErrNetwork))
	var outcome SearchOutcome
	require.NotPanics(t, func() { outcome = eng.Search.Search(ctx, "Star") })

	assert.False(t, outcome.OK())
	assert.Equal(t, FailureNetwork, outcome.Kind())
	assert.Equal(t, before, eng.Snapshot())
}

func TestSearchController_Search_FailureFromIdleStaysIdle(t *testing.T) {
	client := newFakeClient()
	client.setSearchErr(fmt.Errorf("bad body: %w", ErrParse))
	eng := New(client, PreserveOnFailure)

	outcome := eng.Search.Search(context.Background(), "Batman")

	assert.Equal(t, FailureParse, outcome.Kind())
	state := eng.Snapshot()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Empty(t, state.Query)
	assert.False(t, state.NoResults)
}

func TestSearchController_Search_ClearOnFailure(t *testing.T) {
	client := newFakeClient()
	eng := New(client, ClearOnFailure)
	ctx := context.Background()

	eng.Search.Search(ctx, "Batman")
	client.setSearchErr(ErrNetwork)
	eng.Search.Search(ctx, "Star")

	state := eng.Snapshot()
	assert.Nil(t, state.Results)
	assert.False(t, state.NoResults)
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Equal(t, "Batman", state.Query, "query reflects the last applied search")
}

func TestSearchController_Begin_MarksSearching(t *testing.T) {
	eng := New(newFakeClient(), PreserveOnFailure)

	ticket := eng.Search.Begin("Batman")

	assert.Equal(t, RequestSearch, ticket.Kind)
	assert.Equal(t, uint64(1), ticket.Seq)
	assert.Equal(t, PhaseSearching, eng.Store.Phase())
}

func TestSearchController_StaleOutcomeDropped(t *testing.T) {
	ctx := context.Background()
	eng := New(newFakeClient(), PreserveOnFailure)

	older := eng.Search.Begin("Star")
	newer := eng.Search.Begin("Batman")
	require.Greater(t, newer.Seq, older.Seq)

	olderOutcome := eng.Search.Run(ctx, older)
	newerOutcome := eng.Search.Run(ctx, newer)

	// Newer completes first, the older response arrives late.
	assert.True(t, eng.Search.Apply(ctx, newerOutcome))
	assert.False(t, eng.Search.Apply(ctx, olderOutcome))

	state := eng.Snapshot()
	assert.Equal(t, "Batman", state.Query)
	assert.Len(t, state.Results, 1)
}

func TestSearchController_StaleOutcomeDroppedBeforeLatestArrives(t *testing.T) {
	ctx := context.Background()
	eng := New(newFakeClient(), PreserveOnFailure)

	older := eng.Search.Begin("Star")
	newer := eng.Search.Begin("Batman")

	assert.False(t, eng.Search.Apply(ctx, eng.Search.Run(ctx, older)))
	assert.Equal(t, PhaseSearching, eng.Store.Phase(), "still waiting for the latest search")

	assert.True(t, eng.Search.Apply(ctx, eng.Search.Run(ctx, newer)))
	assert.Equal(t, PhaseResults, eng.Store.Phase())
}

func TestSearchController_StaleFailureIgnored(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	eng := New(client, ClearOnFailure)

	eng.Search.Search(ctx, "Batman")
	older := eng.Search.Begin("Star")
	newer := eng.Search.Begin("Batman")

	assert.False(t, eng.Search.Apply(ctx, SearchOutcome{Ticket: older, Err: ErrNetwork}))
	assert.Len(t, eng.Snapshot().Results, 1, "stale failure must not clear")

	assert.True(t, eng.Search.Apply(ctx, eng.Search.Run(ctx, newer)))
}

func TestSearchController_ZeroTicketNeverApplies(t *testing.T) {
	eng := New(newFakeClient(), PreserveOnFailure)
	assert.False(t, eng.Search.Apply(context.Background(), SearchOutcome{Results: []MovieSummary{{ID: "x"}}}))
	assert.Empty(t, eng.Snapshot().Results)
}

func TestSearchController_ConcurrentRequestsLatestWins(t *testing.T) {
	ctx := context.Background()
	eng := New(newFakeClient(), PreserveOnFailure)

	queries := []string{"Star", "zzzxq123", "Star", "Batman"}
	tickets := make([]Ticket, len(queries))
	for i, q := range queries {
		tickets[i] = eng.Search.Begin(q)
	}

	var wg sync.WaitGroup
	applied := make([]bool, len(tickets))
	for i, tk := range tickets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			applied[i] = eng.Search.Apply(ctx, eng.Search.Run(ctx, tk))
		}()
	}
	wg.Wait()

	assert.Equal(t, []bool{false, false, false, true}, applied)
	state := eng.Snapshot()
	assert.Equal(t, "Batman", state.Query)
	assert.Equal(t, PhaseResults, state.Phase)
}

func TestViewState_SnapshotIsDeepCopy(t *testing.T) {
	ctx := context.Background()
	eng := New(newFakeClient(), PreserveOnFailure)
	eng.Search.Search(ctx, "Batman")
	eng.Detail.FetchDetail(ctx, "tt0372784")

	snap := eng.Snapshot()
	snap.Results[0].Title = "mutated"
	snap.Selected.Title = "mutated"

	fresh := eng.Snapshot()
	assert.Equal(t, "Batman Begins", fresh.Results[0].Title)
	assert.Equal(t, "Batman Begins", fresh.Selected.Title)
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "idle"},
		{PhaseSearching, "searching"},
		{PhaseResults, "results"},
		{PhaseNoResults, "no_results"},
		{Phase(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.phase.String())
		})
	}
}
