package engine

import (
	"context"

	"github.com/rshade/moviefinder/internal/logging"
)

// DetailController drives the selected-title half of the view state.
type DetailController struct {
	client DetailFetcher
	store  *Store
}

// NewDetailController returns a controller that fetches from client and
// commits outcomes to store.
func NewDetailController(client DetailFetcher, store *Store) *DetailController {
	return &DetailController{client: client, store: store}
}

// Begin issues a ticket for id. The id is not validated.
func (c *DetailController) Begin(id string) Ticket {
	return c.store.beginDetail(id)
}

// Run fetches the record for t without touching the view state.
func (c *DetailController) Run(ctx context.Context, t Ticket) DetailOutcome {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "fetch_detail").
		Str("id", t.Input).
		Uint64("seq", t.Seq).
		Msg("fetching detail")

	detail, err := c.client.Detail(ctx, t.Input)
	if err != nil {
		log.Warn().
			Ctx(ctx).
			Str("component", "engine").
			Str("operation", "fetch_detail").
			Str("id", t.Input).
			Str("failure", Kind(err).String()).
			Err(err).
			Msg("detail fetch failed")
		return DetailOutcome{Ticket: t, Err: err}
	}
	return DetailOutcome{Ticket: t, Detail: &detail}
}

// Apply commits o when its ticket is still the latest detail request. It
// reports whether the outcome was applied.
func (c *DetailController) Apply(ctx context.Context, o DetailOutcome) bool {
	applied := c.store.applyDetail(o)
	if !applied {
		logging.FromContext(ctx).Debug().
			Ctx(ctx).
			Str("component", "engine").
			Str("id", o.Ticket.Input).
			Uint64("seq", o.Ticket.Seq).
			Uint64("latest", c.store.Latest(RequestDetail)).
			Msg("dropping stale detail outcome")
	}
	return applied
}

// FetchDetail runs one detail fetch synchronously: Begin, Run, then Apply.
func (c *DetailController) FetchDetail(ctx context.Context, id string) DetailOutcome {
	o := c.Run(ctx, c.Begin(id))
	c.Apply(ctx, o)
	return o
}

// ClearSelection dismisses the detail record. A fetch still in flight will
// not bring it back.
func (c *DetailController) ClearSelection() {
	c.store.clearSelection()
}
