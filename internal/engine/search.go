package engine

import (
	"context"

	"github.com/rshade/moviefinder/internal/logging"
)

// SearchController drives the search half of the view state.
type SearchController struct {
	client Searcher
	store  *Store
}

// NewSearchController returns a controller that queries client and commits
// outcomes to store.
func NewSearchController(client Searcher, store *Store) *SearchController {
	return &SearchController{client: client, store: store}
}

// Begin issues a ticket for query and marks the state as searching. The
// query is passed through unmodified; an empty query is still sent.
func (c *SearchController) Begin(query string) Ticket {
	return c.store.beginSearch(query)
}

// Run performs the upstream call for t. It does not touch the view state
// and is safe to call from any goroutine.
func (c *SearchController) Run(ctx context.Context, t Ticket) SearchOutcome {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "search").
		Str("query", t.Input).
		Uint64("seq", t.Seq).
		Msg("searching")

	page, err := c.client.Search(ctx, t.Input)
	if err != nil {
		log.Warn().
			Ctx(ctx).
			Str("component", "engine").
			Str("operation", "search").
			Str("query", t.Input).
			Str("failure", Kind(err).String()).
			Err(err).
			Msg("search failed")
		return SearchOutcome{Ticket: t, Err: err}
	}

	if len(page.Results) == 0 {
		log.Debug().
			Ctx(ctx).
			Str("component", "engine").
			Str("query", t.Input).
			Msg("search returned no results")
		return SearchOutcome{Ticket: t, Results: []MovieSummary{}, Empty: true}
	}

	return SearchOutcome{Ticket: t, Results: page.Results, Total: page.TotalResults}
}

// Apply commits o to the view state when its ticket is still the latest
// search issued. It reports whether the outcome was applied.
func (c *SearchController) Apply(ctx context.Context, o SearchOutcome) bool {
	applied := c.store.applySearch(o)
	if !applied {
		logging.FromContext(ctx).Debug().
			Ctx(ctx).
			Str("component", "engine").
			Str("query", o.Ticket.Input).
			Uint64("seq", o.Ticket.Seq).
			Uint64("latest", c.store.Latest(RequestSearch)).
			Msg("dropping stale search outcome")
	}
	return applied
}

// Search runs one search synchronously: Begin, Run, then Apply.
func (c *SearchController) Search(ctx context.Context, query string) SearchOutcome {
	o := c.Run(ctx, c.Begin(query))
	c.Apply(ctx, o)
	return o
}
