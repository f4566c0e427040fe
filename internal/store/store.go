// Package store holds the per-user conversation position. Records live for
// the process lifetime; the bolt backend additionally survives restarts.
package store

// State is the minimal memory of where a user is in the menu flow. The zero
// value is the root position (no option chosen, no destination).
type State struct {
	LastOption  string `json:"last_option,omitempty"`
	Destination string `json:"destination,omitempty"`
}

// Store maps a normalized phone number to its conversation state.
// Implementations must be safe for concurrent use; read-decide-write cycles
// for a single user are serialized one level up by session.Locks.
type Store interface {
	Get(userID string) State
	Set(userID string, s State)
	Reset(userID string)
}
