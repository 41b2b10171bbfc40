package keystate_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/rpdg/keystate"
	"github.com/rpdg/keystate/keystatetest"
)

func TestIsKeyPressedPassthrough(t *testing.T) {
	keys := []keystate.Key{0x00, 0x31, 0x7E, 0xFFFF, 0x10000, 0xFFFFFFFF}
	for _, k := range keys {
		for _, pressed := range []bool{false, true} {
			src := keystatetest.NewSource()
			src.Set(k, pressed)
			q := keystate.New(src)
			if got := q.IsKeyPressed(k); got != pressed {
				t.Fatalf("IsKeyPressed(%v) = %v, want %v", k, got, pressed)
			}
		}
	}
}

func TestIsKeyPressedIdempotent(t *testing.T) {
	src := keystatetest.NewSource(keystate.KeySpace)
	q := keystate.New(src)
	for i := 0; i < 10; i++ {
		if !q.IsKeyPressed(keystate.KeySpace) {
			t.Fatalf("call %d: space reported up", i)
		}
		if q.IsKeyPressed(keystate.KeyA) {
			t.Fatalf("call %d: a reported down", i)
		}
	}
	if got := src.Calls(); got != 20 {
		t.Fatalf("source called %d times, want 20", got)
	}
}

func TestQueriesAreIndependent(t *testing.T) {
	src := keystatetest.NewSource(keystate.KeyA)
	q := keystate.New(src)
	before := q.IsKeyPressed(keystate.KeyB)
	for i := 0; i < 5; i++ {
		q.IsKeyPressed(keystate.KeyA)
	}
	if after := q.IsKeyPressed(keystate.KeyB); after != before {
		t.Fatalf("querying KeyA changed KeyB: %v -> %v", before, after)
	}
	if !q.IsKeyPressed(keystate.KeyA) {
		t.Fatalf("KeyA should still be down")
	}
}

func TestSpaceScenario(t *testing.T) {
	q := keystate.New(keystatetest.NewSource(0x31))
	if !q.IsKeyPressed(0x31) {
		t.Fatalf("IsKeyPressed(0x31) = false, want true")
	}
	if q.IsKeyPressed(0x00) {
		t.Fatalf("IsKeyPressed(0x00) = true, want false")
	}
}

func TestRereadsLiveState(t *testing.T) {
	src := keystatetest.NewSource()
	q := keystate.New(src)
	first := q.IsKeyPressed(0x31)
	src.Press(0x31)
	second := q.IsKeyPressed(0x31)
	if first || !second {
		t.Fatalf("got %v then %v, want false then true", first, second)
	}
}

func TestSourceFunc(t *testing.T) {
	q := keystate.New(keystate.SourceFunc(func(k keystate.Key) bool {
		return k == keystate.KeyCommand
	}))
	if !q.IsKeyPressed(keystate.KeyCommand) || q.IsKeyPressed(keystate.KeyShift) {
		t.Fatalf("SourceFunc not consulted")
	}
}

func TestNewNilSourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New(nil) did not panic")
		}
	}()
	keystate.New(nil)
}

func TestState(t *testing.T) {
	var zero keystate.State
	if zero != keystate.Up {
		t.Fatalf("zero State = %v, want Up", zero)
	}
	q := keystate.New(keystatetest.NewSource(keystate.KeyA))
	if got := q.State(keystate.KeyA); got != keystate.Down {
		t.Fatalf("State(KeyA) = %v, want Down", got)
	}
	if got := q.State(keystate.KeyB); got != keystate.Up {
		t.Fatalf("State(KeyB) = %v, want Up", got)
	}
}

func TestStateText(t *testing.T) {
	for _, s := range []keystate.State{keystate.Up, keystate.Down} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back keystate.State
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != s {
			t.Fatalf("round trip %v -> %q -> %v", s, text, back)
		}
	}
	if _, err := keystate.State(7).MarshalText(); err == nil {
		t.Fatalf("MarshalText(State(7)) succeeded")
	}
	var s keystate.State
	if err := s.UnmarshalText([]byte("down")); err == nil {
		t.Fatalf("UnmarshalText(\"down\") succeeded")
	}
}

func TestSampleJSON(t *testing.T) {
	q := keystate.New(keystatetest.NewSource(keystate.KeySpace))
	data, err := json.Marshal(q.Sample(keystate.KeySpace))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"name":"Space","code":49,"state":"Down"}`; string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
	data, err = json.Marshal(q.Sample(keystate.KeyA))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"name":"A","code":0,"state":"Up"}`; string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
}

func TestConcurrentQueries(t *testing.T) {
	src := keystatetest.NewSource(keystate.KeySpace)
	q := keystate.New(src)
	var wg sync.WaitGroup
	errs := make(chan keystate.Key, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !q.IsKeyPressed(keystate.KeySpace) {
					errs <- keystate.KeySpace
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for k := range errs {
		t.Fatalf("%v reported up under concurrent use", k)
	}
}

func TestKeyFromRune(t *testing.T) {
	k, ok := keystate.KeyFromRune('a')
	if !ok || k != keystate.KeyA {
		t.Fatalf("KeyFromRune('a') = %v, %v", k, ok)
	}
	if _, ok := keystate.KeyFromRune('é'); ok {
		t.Fatalf("KeyFromRune('é') should fail")
	}
}
