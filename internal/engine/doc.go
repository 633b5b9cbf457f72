// Package engine implements the movie search and detail workflow.
//
// Two controllers drive a shared, mutex-guarded ViewState:
//
//   - SearchController turns a free-text query into a result list or a
//     "no results" signal.
//   - DetailController turns a selected identifier into the detail record
//     shown next to the list.
//
// Every request is split into Begin, Run and Apply. Begin issues a Ticket
// carrying a per-kind sequence number, Run performs the network call without
// touching state, and Apply commits the outcome only when its ticket is still
// the latest one issued for that kind. Callers that run requests
// concurrently (the terminal UI, batch CLI commands) therefore never see an
// older response overwrite a newer one.
//
// Controllers never return errors across their boundary. Failures are
// reported as explicit outcome variants and handled according to the
// configured FailurePolicy.
package engine
