package keyboard

import "fmt"

type runeKey struct {
	key     Key
	shifted bool
}

// US ANSI layout.
var runeKeys = map[rune]runeKey{
	' ':  {KeySpace, false},
	'\t': {KeyTab, false},
	'\n': {KeyReturn, false},
	'\r': {KeyReturn, false},

	'1': {Key1, false}, '!': {Key1, true},
	'2': {Key2, false}, '@': {Key2, true},
	'3': {Key3, false}, '#': {Key3, true},
	'4': {Key4, false}, '$': {Key4, true},
	'5': {Key5, false}, '%': {Key5, true},
	'6': {Key6, false}, '^': {Key6, true},
	'7': {Key7, false}, '&': {Key7, true},
	'8': {Key8, false}, '*': {Key8, true},
	'9': {Key9, false}, '(': {Key9, true},
	'0': {Key0, false}, ')': {Key0, true},

	'-': {KeyMinus, false}, '_': {KeyMinus, true},
	'=': {KeyEqual, false}, '+': {KeyEqual, true},
	'[': {KeyLeftBracket, false}, '{': {KeyLeftBracket, true},
	']': {KeyRightBracket, false}, '}': {KeyRightBracket, true},
	'\\': {KeyBackslash, false}, '|': {KeyBackslash, true},
	';': {KeySemicolon, false}, ':': {KeySemicolon, true},
	'\'': {KeyQuote, false}, '"': {KeyQuote, true},
	'`': {KeyGrave, false}, '~': {KeyGrave, true},
	',': {KeyComma, false}, '<': {KeyComma, true},
	'.': {KeyPeriod, false}, '>': {KeyPeriod, true},
	'/': {KeySlash, false}, '?': {KeySlash, true},
}

var letterKeys = [26]Key{
	KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
	KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
}

// LookupKey returns the key that types r on a US ANSI keyboard and whether
// Shift has to be held for it.
func LookupKey(r rune) (k Key, shifted bool, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return letterKeys[r-'a'], false, true
	case r >= 'A' && r <= 'Z':
		return letterKeys[r-'A'], true, true
	}
	rk, ok := runeKeys[r]
	if !ok {
		return 0, false, false
	}
	return rk.key, rk.shifted, true
}

// KeyFromRune is LookupKey for callers that do not care about Shift.
func KeyFromRune(r rune) (Key, error) {
	k, _, ok := LookupKey(r)
	if !ok {
		return 0, fmt.Errorf("%w: no equivalent key for character %q", ErrUnsupportedKey, r)
	}
	return k, nil
}
