package tui

import "github.com/rshade/moviefinder/internal/engine"

// searchDoneMsg carries a completed search back to the update loop.
type searchDoneMsg struct {
	outcome engine.SearchOutcome
}

// detailDoneMsg carries a completed detail fetch back to the update loop.
type detailDoneMsg struct {
	outcome engine.DetailOutcome
}
