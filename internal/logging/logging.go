package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/rpdg/keystate/internal/config"
)

// New returns a text logger writing to w at the named level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, _ := config.ParseLevel(level)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
