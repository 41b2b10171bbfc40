package keystate

import "github.com/rpdg/keystate/keyboard"

var (
	// ErrUnsupportedKey implies the character or name cannot be mapped to a key.
	ErrUnsupportedKey = keyboard.ErrUnsupportedKey
)
