//go:build darwin && cgo

package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/rpdg/keystate"
)

func main() {
	fmt.Println("=== keystate Library Example ===")

	// 1. Direct query
	if keystate.IsKeyPressed(keystate.KeySpace) {
		fmt.Println("✅ Space is down")
	} else {
		fmt.Println("Space is up (hold it while starting the example to see it change)")
	}

	// 2. Resolve keys from characters and names
	k, ok := keystate.KeyFromRune('a')
	if !ok {
		log.Fatal("❌ no key for 'a'")
	}
	fmt.Printf("   'a' is %v (code 0x%02X)\n", k, uint32(k))

	if _, err := keystate.ParseKey("hyper"); errors.Is(err, keystate.ErrUnsupportedKey) {
		fmt.Println("   \"hyper\" is not a key:", err)
	}

	// 3. Poll a modifier for a few seconds
	// Every call re-reads the event source; nothing is cached between them.
	// Without the input monitoring permission the system always reports Up.
	fmt.Println("👉 Press and release Shift during the next 3 seconds...")
	deadline := time.Now().Add(3 * time.Second)
	last := keystate.KeyState(keystate.KeyShift)
	fmt.Printf("   Shift: %v\n", last)
	for time.Now().Before(deadline) {
		if s := keystate.KeyState(keystate.KeyShift); s != last {
			fmt.Printf("   Shift: %v\n", s)
			last = s
		}
		time.Sleep(20 * time.Millisecond)
	}

	fmt.Println("=== Done ===")
}
