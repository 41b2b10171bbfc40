//go:build darwin && cgo

package keystate

import "github.com/rpdg/keystate/eventsource"

var system = New(eventsource.System())

// System returns the Querier bound to the combined-session event source.
func System() *Querier {
	return system
}

// IsKeyPressed reports whether k is held down right now.
func IsKeyPressed(k Key) bool {
	return system.IsKeyPressed(k)
}

// KeyState is IsKeyPressed expressed as a State.
func KeyState(k Key) State {
	return system.State(k)
}

func Sample(k Key) Report {
	return system.Sample(k)
}
