package store

import "sync"

// Memory is the default in-process backend.
type Memory struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewMemory() *Memory {
	return &Memory{states: make(map[string]State)}
}

func (m *Memory) Get(userID string) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[userID]
}

func (m *Memory) Set(userID string, s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[userID] = s
}

func (m *Memory) Reset(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[userID] = State{}
}
