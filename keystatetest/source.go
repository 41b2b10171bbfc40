// Package keystatetest provides an in-memory key-state Source for tests.
package keystatetest

import (
	"sync"
	"sync/atomic"

	"github.com/rpdg/keystate/keyboard"
)

// Source is a keystate.Source whose key states are set by the test.
// It is safe for concurrent use.
type Source struct {
	mu      sync.RWMutex
	pressed map[keyboard.Key]bool
	calls   atomic.Int64
}

// NewSource returns a Source with the given keys held down.
func NewSource(pressed ...keyboard.Key) *Source {
	s := &Source{pressed: make(map[keyboard.Key]bool, len(pressed))}
	for _, k := range pressed {
		s.pressed[k] = true
	}
	return s
}

func (s *Source) KeyState(k keyboard.Key) bool {
	s.calls.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pressed[k]
}

func (s *Source) Set(k keyboard.Key, pressed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pressed {
		s.pressed[k] = true
		return
	}
	delete(s.pressed, k)
}

func (s *Source) Press(k keyboard.Key)   { s.Set(k, true) }
func (s *Source) Release(k keyboard.Key) { s.Set(k, false) }

// Calls returns how many times KeyState has been called.
func (s *Source) Calls() int64 {
	return s.calls.Load()
}
