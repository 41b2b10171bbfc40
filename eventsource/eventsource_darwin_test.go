//go:build darwin && cgo

package eventsource

import (
	"testing"

	"github.com/rpdg/keystate/keyboard"
)

func TestSystemUsesCombinedSession(t *testing.T) {
	if got := System().ID(); got != CombinedSessionState {
		t.Fatalf("System().ID() = %d, want %d", got, CombinedSessionState)
	}
}

func TestKeyStateOutOfRange(t *testing.T) {
	for _, id := range []StateID{CombinedSessionState, HIDSystemState} {
		if New(id).KeyState(keyboard.Key(0x10000)) {
			t.Fatalf("state %d: code beyond CGKeyCode reported pressed", id)
		}
	}
}

func TestKeyStateCallable(t *testing.T) {
	// The answer depends on the physical keyboard; only the call is checked.
	_ = System().KeyState(keyboard.KeySpace)
	_ = New(HIDSystemState).KeyState(keyboard.KeyShift)
}
