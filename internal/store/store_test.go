package store

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDefaultState(t *testing.T) {
	m := NewMemory()
	assert.Equal(t, State{}, m.Get("525512345678"))
}

func TestMemorySetGetReset(t *testing.T) {
	m := NewMemory()
	user := "525512345678"

	m.Set(user, State{LastOption: "opcion_1", Destination: "cancun"})
	assert.Equal(t, State{LastOption: "opcion_1", Destination: "cancun"}, m.Get(user))

	m.Reset(user)
	assert.Equal(t, State{}, m.Get(user))

	// other users are untouched
	assert.Equal(t, State{}, m.Get("525587654321"))
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Set("user", State{LastOption: "opcion_1"})
			_ = m.Get("user")
			m.Reset("user")
		}()
	}
	wg.Wait()
}

func TestBoltRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rumbo.db")
	b, err := NewBolt(path, nil)
	require.NoError(t, err)
	defer b.Close()

	user := "525512345678"
	assert.Equal(t, State{}, b.Get(user))

	b.Set(user, State{LastOption: "opcion_1", Destination: "cdmx"})
	assert.Equal(t, State{LastOption: "opcion_1", Destination: "cdmx"}, b.Get(user))

	b.Reset(user)
	assert.Equal(t, State{}, b.Get(user))
}

func TestBoltSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rumbo.db")

	b, err := NewBolt(path, nil)
	require.NoError(t, err)
	b.Set("user", State{Destination: "vallarta"})
	require.NoError(t, b.Close())

	b, err = NewBolt(path, nil)
	require.NoError(t, err)
	defer b.Close()
	assert.Equal(t, State{Destination: "vallarta"}, b.Get("user"))
}
