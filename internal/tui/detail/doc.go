// Package detail renders the selected title next to the result list.
//
// The Panel shows one of four states: empty, loading, loaded or failed.
// A failed fetch keeps whatever record was already on screen and shows the
// error inline with a retry hint ('r'). Long plots scroll inside a bubbles
// viewport, and the full record can be opened in the ov pager.
package detail
