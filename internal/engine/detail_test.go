package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailController_FetchDetail_Success(t *testing.T) {
	eng := New(newFakeClient(), PreserveOnFailure)

	outcome := eng.Detail.FetchDetail(context.Background(), "tt0372784")

	require.True(t, outcome.OK())
	want := &MovieDetail{
		ID:        "tt0372784",
		Title:     "Batman Begins",
		Year:      "2005",
		Plot:      "...",
		Rating:    "8.2",
		PosterURL: "url1",
	}
	assert.Equal(t, want, outcome.Detail)
	assert.Equal(t, want, eng.Snapshot().Selected)
}

func TestDetailController_FetchDetail_ReplacesWholesale(t *testing.T) {
	client := newFakeClient()
	client.details["tt1"] = MovieDetail{ID: "tt1", Title: "Other", Director: "Someone"}
	eng := New(client, PreserveOnFailure)
	ctx := context.Background()

	eng.Detail.FetchDetail(ctx, "tt1")
	eng.Detail.FetchDetail(ctx, "tt0372784")

	selected := eng.Snapshot().Selected
	require.NotNil(t, selected)
	assert.Equal(t, "Batman Begins", selected.Title)
	assert.Empty(t, selected.Director, "fields are never merged across records")
}

func TestDetailController_FetchDetail_UnknownIDStillAttempted(t *testing.T) {
	client := newFakeClient()
	eng := New(client, PreserveOnFailure)

	outcome := eng.Detail.FetchDetail(context.Background(), "not-an-id")

	assert.Equal(t, []string{"not-an-id"}, client.detailCalls)
	require.True(t, outcome.OK())
	assert.Equal(t, "not-an-id", eng.Snapshot().Selected.ID)
	assert.Empty(t, eng.Snapshot().Selected.Title)
}

func TestDetailController_FetchDetail_FailureLeavesSelectionUnchanged(t *testing.T) {
	ctx := context.Background()

	t.Run("absent stays absent", func(t *testing.T) {
		client := newFakeClient()
		client.setDetailErr(ErrNetwork)
		eng := New(client, PreserveOnFailure)

		outcome := eng.Detail.FetchDetail(ctx, "tt0372784")

		assert.Equal(t, FailureNetwork, outcome.Kind())
		assert.Nil(t, outcome.Detail)
		assert.Nil(t, eng.Snapshot().Selected)
	})

	t.Run("present stays present", func(t *testing.T) {
		client := newFakeClient()
		eng := New(client, PreserveOnFailure)
		eng.Detail.FetchDetail(ctx, "tt0372784")

		client.setDetailErr(ErrParse)
		outcome := eng.Detail.FetchDetail(ctx, "tt9999999")

		assert.Equal(t, FailureParse, outcome.Kind())
		require.NotNil(t, eng.Snapshot().Selected)
		assert.Equal(t, "tt0372784", eng.Snapshot().Selected.ID)
	})
}

func TestDetailController_FetchDetail_ClearOnFailure(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	eng := New(client, ClearOnFailure)
	eng.Detail.FetchDetail(ctx, "tt0372784")

	client.setDetailErr(errors.New("boom"))
	outcome := eng.Detail.FetchDetail(ctx, "tt0372784")

	assert.Equal(t, FailureUnknown, outcome.Kind())
	assert.Nil(t, eng.Snapshot().Selected)
}

func TestDetailController_SelectionSurvivesSearches(t *testing.T) {
	ctx := context.Background()
	eng := New(newFakeClient(), PreserveOnFailure)

	eng.Detail.FetchDetail(ctx, "tt0372784")
	eng.Search.Search(ctx, "Star")
	eng.Search.Search(ctx, "zzzxq123")

	state := eng.Snapshot()
	require.NotNil(t, state.Selected)
	assert.Equal(t, "tt0372784", state.Selected.ID)
	assert.True(t, state.NoResults)
}

func TestDetailController_ClearSelection(t *testing.T) {
	ctx := context.Background()
	eng := New(newFakeClient(), PreserveOnFailure)
	eng.Detail.FetchDetail(ctx, "tt0372784")
	require.True(t, eng.Snapshot().HasSelection())

	eng.Detail.ClearSelection()

	assert.False(t, eng.Snapshot().HasSelection())
}

func TestDetailController_ClearSelectionInvalidatesInFlight(t *testing.T) {
	ctx := context.Background()
	eng := New(newFakeClient(), PreserveOnFailure)

	ticket := eng.Detail.Begin("tt0372784")
	outcome := eng.Detail.Run(ctx, ticket)
	eng.Detail.ClearSelection()

	assert.False(t, eng.Detail.Apply(ctx, outcome))
	assert.Nil(t, eng.Snapshot().Selected)
}

func TestDetailController_StaleOutcomeDropped(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	client.details["tt0076759"] = MovieDetail{ID: "tt0076759", Title: "Star Wars"}
	eng := New(client, PreserveOnFailure)

	first := eng.Detail.Begin("tt0372784")
	second := eng.Detail.Begin("tt0076759")

	assert.True(t, eng.Detail.Apply(ctx, eng.Detail.Run(ctx, second)))
	assert.False(t, eng.Detail.Apply(ctx, eng.Detail.Run(ctx, first)))
	assert.Equal(t, "Star Wars", eng.Snapshot().Selected.Title)
}

func TestStore_SequencesAreIndependentPerKind(t *testing.T) {
	eng := New(newFakeClient(), PreserveOnFailure)

	eng.Search.Begin("a")
	eng.Search.Begin("b")
	d := eng.Detail.Begin("tt1")

	assert.Equal(t, uint64(1), d.Seq)
	assert.Equal(t, uint64(2), eng.Store.Latest(RequestSearch))
	assert.Equal(t, uint64(1), eng.Store.Latest(RequestDetail))
}
