//go:build darwin && cgo

// Command keystate prints the live state of keyboard keys.
//
//	keystate -keys a,space,cmd -interval 100ms
//	keystate -once -keys 0x31 -format json
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpdg/keystate"
	"github.com/rpdg/keystate/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewCommand(os.Stdout, os.Stderr, keystate.System())
	err := cmd.Run(ctx, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, cli.ErrUsage):
		slog.Error("keystate", "err", err)
		stop()
		os.Exit(2)
	default:
		slog.Error("keystate", "err", err)
		stop()
		os.Exit(1)
	}
}
