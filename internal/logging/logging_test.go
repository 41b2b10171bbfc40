package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")
	log.Info("hidden")
	log.Warn("shown", "key", "Space")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "key=Space") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNewUnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "loud")
	log.Debug("hidden")
	log.Info("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output: %q", out)
	}
}
