package keystatetest

import (
	"sync"
	"testing"

	"github.com/rpdg/keystate/keyboard"
)

func TestSourcePressRelease(t *testing.T) {
	s := NewSource(keyboard.KeyA)
	if !s.KeyState(keyboard.KeyA) {
		t.Fatalf("KeyA should start pressed")
	}
	if s.KeyState(keyboard.KeyB) {
		t.Fatalf("KeyB should start released")
	}
	s.Release(keyboard.KeyA)
	s.Press(keyboard.KeyB)
	if s.KeyState(keyboard.KeyA) || !s.KeyState(keyboard.KeyB) {
		t.Fatalf("unexpected state after toggle")
	}
	if got := s.Calls(); got != 4 {
		t.Fatalf("Calls() = %d, want 4", got)
	}
}

func TestSourceConcurrentUse(t *testing.T) {
	s := NewSource()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := keyboard.Key(i)
			for j := 0; j < 100; j++ {
				s.Set(k, j%2 == 0)
				_ = s.KeyState(k)
			}
		}(i)
	}
	wg.Wait()
	if got := s.Calls(); got != 800 {
		t.Fatalf("Calls() = %d, want 800", got)
	}
}
