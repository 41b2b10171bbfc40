// Package keyboard defines key identifiers for the macOS virtual key space.
//
// Codes are the hardware-independent virtual key codes used by Quartz event
// services (kVK_* in Carbon's Events.h). Letter and punctuation codes refer
// to key positions on an ANSI keyboard, not to the characters they produce
// under the active layout.
package keyboard

import "errors"

// Key is a platform-defined numeric key code.
//
// No validation is attached to the type: any value may be passed to a query,
// and a code the platform does not know simply never reports as pressed.
type Key uint32

// ErrUnsupportedKey implies the character or name cannot be mapped to a key.
var ErrUnsupportedKey = errors.New("unsupported key or character")

// ANSI-position keys.
const (
	KeyA            Key = 0x00
	KeyS            Key = 0x01
	KeyD            Key = 0x02
	KeyF            Key = 0x03
	KeyH            Key = 0x04
	KeyG            Key = 0x05
	KeyZ            Key = 0x06
	KeyX            Key = 0x07
	KeyC            Key = 0x08
	KeyV            Key = 0x09
	KeyISOSection   Key = 0x0A
	KeyB            Key = 0x0B
	KeyQ            Key = 0x0C
	KeyW            Key = 0x0D
	KeyE            Key = 0x0E
	KeyR            Key = 0x0F
	KeyY            Key = 0x10
	KeyT            Key = 0x11
	Key1            Key = 0x12
	Key2            Key = 0x13
	Key3            Key = 0x14
	Key4            Key = 0x15
	Key6            Key = 0x16
	Key5            Key = 0x17
	KeyEqual        Key = 0x18
	Key9            Key = 0x19
	Key7            Key = 0x1A
	KeyMinus        Key = 0x1B
	Key8            Key = 0x1C
	Key0            Key = 0x1D
	KeyRightBracket Key = 0x1E
	KeyO            Key = 0x1F
	KeyU            Key = 0x20
	KeyLeftBracket  Key = 0x21
	KeyI            Key = 0x22
	KeyP            Key = 0x23
	KeyL            Key = 0x25
	KeyJ            Key = 0x26
	KeyQuote        Key = 0x27
	KeyK            Key = 0x28
	KeySemicolon    Key = 0x29
	KeyBackslash    Key = 0x2A
	KeyComma        Key = 0x2B
	KeySlash        Key = 0x2C
	KeyN            Key = 0x2D
	KeyM            Key = 0x2E
	KeyPeriod       Key = 0x2F
	KeyGrave        Key = 0x32
)

// Keypad.
const (
	KeyKeypadDecimal  Key = 0x41
	KeyKeypadMultiply Key = 0x43
	KeyKeypadPlus     Key = 0x45
	KeyKeypadClear    Key = 0x47
	KeyKeypadDivide   Key = 0x4B
	KeyKeypadEnter    Key = 0x4C
	KeyKeypadMinus    Key = 0x4E
	KeyKeypadEquals   Key = 0x51
	KeyKeypad0        Key = 0x52
	KeyKeypad1        Key = 0x53
	KeyKeypad2        Key = 0x54
	KeyKeypad3        Key = 0x55
	KeyKeypad4        Key = 0x56
	KeyKeypad5        Key = 0x57
	KeyKeypad6        Key = 0x58
	KeyKeypad7        Key = 0x59
	KeyKeypad8        Key = 0x5B
	KeyKeypad9        Key = 0x5C
)

// Layout-independent keys.
const (
	KeyReturn        Key = 0x24
	KeyTab           Key = 0x30
	KeySpace         Key = 0x31
	KeyDelete        Key = 0x33
	KeyEscape        Key = 0x35
	KeyRightCommand  Key = 0x36
	KeyCommand       Key = 0x37
	KeyShift         Key = 0x38
	KeyCapsLock      Key = 0x39
	KeyOption        Key = 0x3A
	KeyControl       Key = 0x3B
	KeyRightShift    Key = 0x3C
	KeyRightOption   Key = 0x3D
	KeyRightControl  Key = 0x3E
	KeyFunction      Key = 0x3F
	KeyF17           Key = 0x40
	KeyVolumeUp      Key = 0x48
	KeyVolumeDown    Key = 0x49
	KeyMute          Key = 0x4A
	KeyF18           Key = 0x4F
	KeyF19           Key = 0x50
	KeyF20           Key = 0x5A
	KeyF5            Key = 0x60
	KeyF6            Key = 0x61
	KeyF7            Key = 0x62
	KeyF3            Key = 0x63
	KeyF8            Key = 0x64
	KeyF9            Key = 0x65
	KeyF11           Key = 0x67
	KeyF13           Key = 0x69
	KeyF16           Key = 0x6A
	KeyF14           Key = 0x6B
	KeyF10           Key = 0x6D
	KeyF12           Key = 0x6F
	KeyF15           Key = 0x71
	KeyHelp          Key = 0x72
	KeyHome          Key = 0x73
	KeyPageUp        Key = 0x74
	KeyForwardDelete Key = 0x75
	KeyF4            Key = 0x76
	KeyEnd           Key = 0x77
	KeyF2            Key = 0x78
	KeyPageDown      Key = 0x79
	KeyF1            Key = 0x7A
	KeyLeftArrow     Key = 0x7B
	KeyRightArrow    Key = 0x7C
	KeyDownArrow     Key = 0x7D
	KeyUpArrow       Key = 0x7E
)
