package engine

// Engine bundles the store and both controllers around one client.
type Engine struct {
	Store  *Store
	Search *SearchController
	Detail *DetailController
}

// New wires both controllers to client and a fresh store.
func New(client MovieClient, policy FailurePolicy) *Engine {
	store := NewStore(policy)
	return &Engine{
		Store:  store,
		Search: NewSearchController(client, store),
		Detail: NewDetailController(client, store),
	}
}

// Snapshot returns a deep copy of the current view state.
func (e *Engine) Snapshot() ViewState {
	return e.Store.Snapshot()
}
