package keyboard

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var keyNames = map[Key]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	Key0: "Zero", Key1: "One", Key2: "Two", Key3: "Three", Key4: "Four",
	Key5: "Five", Key6: "Six", Key7: "Seven", Key8: "Eight", Key9: "Nine",

	KeyISOSection:   "ISOSection",
	KeyEqual:        "Equal",
	KeyMinus:        "Minus",
	KeyRightBracket: "RightBracket",
	KeyLeftBracket:  "LeftBracket",
	KeyQuote:        "Quote",
	KeySemicolon:    "Semicolon",
	KeyBackslash:    "Backslash",
	KeyComma:        "Comma",
	KeySlash:        "Slash",
	KeyPeriod:       "Period",
	KeyGrave:        "Grave",

	KeyKeypadDecimal:  "KeypadDecimal",
	KeyKeypadMultiply: "KeypadMultiply",
	KeyKeypadPlus:     "KeypadPlus",
	KeyKeypadClear:    "KeypadClear",
	KeyKeypadDivide:   "KeypadDivide",
	KeyKeypadEnter:    "KeypadEnter",
	KeyKeypadMinus:    "KeypadMinus",
	KeyKeypadEquals:   "KeypadEquals",
	KeyKeypad0:        "Keypad0",
	KeyKeypad1:        "Keypad1",
	KeyKeypad2:        "Keypad2",
	KeyKeypad3:        "Keypad3",
	KeyKeypad4:        "Keypad4",
	KeyKeypad5:        "Keypad5",
	KeyKeypad6:        "Keypad6",
	KeyKeypad7:        "Keypad7",
	KeyKeypad8:        "Keypad8",
	KeyKeypad9:        "Keypad9",

	KeyReturn:        "Return",
	KeyTab:           "Tab",
	KeySpace:         "Space",
	KeyDelete:        "Delete",
	KeyEscape:        "Escape",
	KeyRightCommand:  "RightCommand",
	KeyCommand:       "Command",
	KeyShift:         "Shift",
	KeyCapsLock:      "CapsLock",
	KeyOption:        "Option",
	KeyControl:       "Control",
	KeyRightShift:    "RightShift",
	KeyRightOption:   "RightOption",
	KeyRightControl:  "RightControl",
	KeyFunction:      "Function",
	KeyVolumeUp:      "VolumeUp",
	KeyVolumeDown:    "VolumeDown",
	KeyMute:          "Mute",
	KeyHelp:          "Help",
	KeyHome:          "Home",
	KeyPageUp:        "PageUp",
	KeyForwardDelete: "ForwardDelete",
	KeyEnd:           "End",
	KeyPageDown:      "PageDown",
	KeyLeftArrow:     "LeftArrow",
	KeyRightArrow:    "RightArrow",
	KeyDownArrow:     "DownArrow",
	KeyUpArrow:       "UpArrow",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12", KeyF13: "F13", KeyF14: "F14", KeyF15: "F15",
	KeyF16: "F16", KeyF17: "F17", KeyF18: "F18", KeyF19: "F19", KeyF20: "F20",
}

// Extra spellings accepted by ParseKey.
var keyAliases = map[string]Key{
	"enter":     KeyReturn,
	"esc":       KeyEscape,
	"backspace": KeyDelete,
	"cmd":       KeyCommand,
	"alt":       KeyOption,
	"ctrl":      KeyControl,
	"fn":        KeyFunction,
	"up":        KeyUpArrow,
	"down":      KeyDownArrow,
	"left":      KeyLeftArrow,
	"right":     KeyRightArrow,
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+len(keyAliases))
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	for alias, k := range keyAliases {
		m[alias] = k
	}
	return m
}()

// String returns the key's name, or Key(0x..) for codes without one.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(0x%02X)", uint32(k))
}

// ParseKey resolves a key from a name ("space", "Command"), a single
// character ("a", ";") or a numeric code ("49", "0x31").
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty key", ErrUnsupportedKey)
	}
	if k, ok := keysByName[strings.ToLower(s)]; ok {
		return k, nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return KeyFromRune(r)
	}
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return Key(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKey, s)
}
