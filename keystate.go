package keystate

import (
	"encoding/json"
	"fmt"

	"github.com/rpdg/keystate/keyboard"
)

// -----------------------------------------------------------------------------
// Key State
// -----------------------------------------------------------------------------

// State is the pressed condition of a key at one instant.
type State uint8

const (
	Up State = iota
	Down
)

// StateOf maps a pressed flag to a State.
func StateOf(pressed bool) State {
	if pressed {
		return Down
	}
	return Up
}

func (s State) String() string {
	switch s {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	if s != Up && s != Down {
		return nil, fmt.Errorf("invalid key state %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Up":
		*s = Up
	case "Down":
		*s = Down
	default:
		return fmt.Errorf("invalid key state %q", text)
	}
	return nil
}

// Report is one sample of a key.
type Report struct {
	Key   Key
	State State
}

func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string `json:"name"`
		Code  uint32 `json:"code"`
		State State  `json:"state"`
	}{
		Name:  r.Key.String(),
		Code:  uint32(r.Key),
		State: r.State,
	})
}

// -----------------------------------------------------------------------------
// Query
// -----------------------------------------------------------------------------

// Source is the platform primitive a Querier reads.
// Implementations must return live state and be safe for concurrent use.
type Source interface {
	KeyState(k Key) bool
}

// SourceFunc adapts a function to Source.
type SourceFunc func(k Key) bool

func (f SourceFunc) KeyState(k Key) bool { return f(k) }

// Querier answers key-state questions from a Source. It holds no state of
// its own, so every call reaches the Source.
type Querier struct {
	src Source
}

func New(src Source) *Querier {
	if src == nil {
		panic("keystate: nil Source")
	}
	return &Querier{src: src}
}

// IsKeyPressed reports exactly what the source reports for k.
func (q *Querier) IsKeyPressed(k Key) bool {
	return q.src.KeyState(k)
}

func (q *Querier) State(k Key) State {
	return StateOf(q.src.KeyState(k))
}

// Sample reads k once and labels the result.
func (q *Querier) Sample(k Key) Report {
	return Report{Key: k, State: q.State(k)}
}

// -----------------------------------------------------------------------------
// Keys
// -----------------------------------------------------------------------------

type Key = keyboard.Key

const (
	KeyA = keyboard.KeyA
	KeyB = keyboard.KeyB
	KeyC = keyboard.KeyC
	KeyD = keyboard.KeyD
	KeyE = keyboard.KeyE
	KeyF = keyboard.KeyF
	KeyG = keyboard.KeyG
	KeyH = keyboard.KeyH
	KeyI = keyboard.KeyI
	KeyJ = keyboard.KeyJ
	KeyK = keyboard.KeyK
	KeyL = keyboard.KeyL
	KeyM = keyboard.KeyM
	KeyN = keyboard.KeyN
	KeyO = keyboard.KeyO
	KeyP = keyboard.KeyP
	KeyQ = keyboard.KeyQ
	KeyR = keyboard.KeyR
	KeyS = keyboard.KeyS
	KeyT = keyboard.KeyT
	KeyU = keyboard.KeyU
	KeyV = keyboard.KeyV
	KeyW = keyboard.KeyW
	KeyX = keyboard.KeyX
	KeyY = keyboard.KeyY
	KeyZ = keyboard.KeyZ
	Key0 = keyboard.Key0
	Key1 = keyboard.Key1
	Key2 = keyboard.Key2
	Key3 = keyboard.Key3
	Key4 = keyboard.Key4
	Key5 = keyboard.Key5
	Key6 = keyboard.Key6
	Key7 = keyboard.Key7
	Key8 = keyboard.Key8
	Key9 = keyboard.Key9

	KeyReturn       = keyboard.KeyReturn
	KeyTab          = keyboard.KeyTab
	KeySpace        = keyboard.KeySpace
	KeyDelete       = keyboard.KeyDelete
	KeyEscape       = keyboard.KeyEscape
	KeyCommand      = keyboard.KeyCommand
	KeyShift        = keyboard.KeyShift
	KeyCapsLock     = keyboard.KeyCapsLock
	KeyOption       = keyboard.KeyOption
	KeyControl      = keyboard.KeyControl
	KeyFunction     = keyboard.KeyFunction
	KeyRightCommand = keyboard.KeyRightCommand
	KeyRightShift   = keyboard.KeyRightShift
	KeyRightOption  = keyboard.KeyRightOption
	KeyRightControl = keyboard.KeyRightControl

	KeyF1  = keyboard.KeyF1
	KeyF2  = keyboard.KeyF2
	KeyF3  = keyboard.KeyF3
	KeyF4  = keyboard.KeyF4
	KeyF5  = keyboard.KeyF5
	KeyF6  = keyboard.KeyF6
	KeyF7  = keyboard.KeyF7
	KeyF8  = keyboard.KeyF8
	KeyF9  = keyboard.KeyF9
	KeyF10 = keyboard.KeyF10
	KeyF11 = keyboard.KeyF11
	KeyF12 = keyboard.KeyF12

	KeyHome       = keyboard.KeyHome
	KeyEnd        = keyboard.KeyEnd
	KeyPageUp     = keyboard.KeyPageUp
	KeyPageDown   = keyboard.KeyPageDown
	KeyLeftArrow  = keyboard.KeyLeftArrow
	KeyRightArrow = keyboard.KeyRightArrow
	KeyUpArrow    = keyboard.KeyUpArrow
	KeyDownArrow  = keyboard.KeyDownArrow
)

func KeyFromRune(r rune) (Key, bool) {
	k, _, ok := keyboard.LookupKey(r)
	return k, ok
}

// ParseKey resolves a key name, single character or numeric code.
func ParseKey(s string) (Key, error) {
	return keyboard.ParseKey(s)
}
