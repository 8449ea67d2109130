package dialog

import "sync"

// Flow identifies which multi-step interaction is active for a user.
type Flow int

const (
	FlowNone Flow = iota
	FlowAwaitingOpponentID
)

// State is one user's ephemeral dialog state. Data is reserved for flows
// that accumulate input across steps; no current flow uses it.
type State struct {
	Flow Flow
	Data map[string]string
}

// Store keeps per-user dialog state in memory. Entries are created lazily
// and never evicted; everything is lost on restart, which is acceptable —
// worst case the user re-navigates.
type Store struct {
	mu     sync.RWMutex
	states map[int64]State
}

// NewStore creates an empty state store.
func NewStore() *Store {
	return &Store{states: make(map[int64]State)}
}

// Get returns the user's current state, FlowNone if none was ever set.
func (s *Store) Get(userID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[userID]
	if !ok {
		return State{Flow: FlowNone}
	}
	return state
}

// Set replaces the user's state.
func (s *Store) Set(userID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
}

// Reset returns the user to FlowNone.
func (s *Store) Reset(userID int64) {
	s.Set(userID, State{Flow: FlowNone})
}
