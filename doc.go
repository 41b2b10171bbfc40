// Package keystate reports whether a keyboard key is currently held down,
// as seen by the macOS Quartz event source.
//
// The live query is only compiled for darwin with cgo. Other targets still
// get the Key, State and Querier types, but IsKeyPressed, KeyState, Sample and
// System do not exist there and calls to them fail to build.
//
// Key Features:
// - Live answer on every call, nothing cached
// - Named 32-bit Key type with macOS virtual key codes
// - Substitutable Source for tests (see package keystatetest)
//
// The calling process needs the macOS input monitoring / accessibility
// permission. Without it the system reports every key as up; this package
// does not check for that.
//
// Example:
//
//	if keystate.IsKeyPressed(keystate.KeySpace) {
//	    fmt.Println("space is down")
//	}
//
//	k, err := keystate.ParseKey("cmd")
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(keystate.KeyState(k))
package keystate
