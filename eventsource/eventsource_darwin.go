//go:build darwin && cgo

package eventsource

/*
#cgo LDFLAGS: -framework ApplicationServices
#include <stdbool.h>
#include <stdint.h>
#include <ApplicationServices/ApplicationServices.h>

static bool eventsource_key_state(int32_t state_id, uint16_t key) {
    return CGEventSourceKeyState((CGEventSourceStateID)state_id, (CGKeyCode)key);
}
*/
import "C"

import (
	"math"

	"github.com/rpdg/keystate/keyboard"
)

// StateID selects which event state table a Source reads.
type StateID int32

const (
	// CombinedSessionState reflects the combined state of all event
	// sources posting to the current login session.
	CombinedSessionState StateID = 0
	// HIDSystemState reflects the state of the hardware input devices only.
	HIDSystemState StateID = 1
)

// Source reads live key state from one Quartz event state table.
type Source struct {
	id StateID
}

func New(id StateID) Source {
	return Source{id: id}
}

// System returns the combined-session source.
func System() Source {
	return New(CombinedSessionState)
}

func (s Source) ID() StateID { return s.id }

// KeyState reports whether k is down at the moment of the call.
// Codes wider than CGKeyCode name no key and report false.
func (s Source) KeyState(k keyboard.Key) bool {
	if k > math.MaxUint16 {
		return false
	}
	return bool(C.eventsource_key_state(C.int32_t(s.id), C.uint16_t(k)))
}
