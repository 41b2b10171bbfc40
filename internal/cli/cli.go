package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rpdg/keystate"
	"github.com/rpdg/keystate/internal/config"
	"github.com/rpdg/keystate/internal/logging"
	"github.com/rpdg/keystate/internal/watch"
)

// ErrUsage implies the command line could not be parsed.
var ErrUsage = errors.New("invalid usage")

type Command struct {
	stdout io.Writer
	stderr io.Writer
	q      *keystate.Querier
}

func NewCommand(stdout, stderr io.Writer, q *keystate.Querier) *Command {
	return &Command{
		stdout: stdout,
		stderr: stderr,
		q:      q,
	}
}

// Run parses args, loads the config file and watches keys until ctx is
// cancelled or the configured number of samples has been written.
func (c *Command) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("keystate", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	configPath := fs.String("config", "", "path to config file (default ~/.keystate/config.toml)")
	keys := fs.String("keys", "", "comma separated keys to watch, e.g. a,space,0x31")
	interval := fs.String("interval", "", "sampling interval, e.g. 50ms")
	count := fs.Int("count", 0, "stop after this many samples (0 = forever)")
	once := fs.Bool("once", false, "take a single sample and exit")
	format := fs.String("format", "", "output format: auto, json or text")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", ErrUsage, fs.Args())
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "keys":
			cfg.Watch.Keys = strings.Split(*keys, ",")
		case "interval":
			cfg.Watch.Interval = *interval
		case "count":
			cfg.Watch.Count = *count
		case "format":
			cfg.Watch.Format = *format
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})
	if *once {
		cfg.Watch.Count = 1
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(c.stderr, cfg.LogLevel())
	opts, err := watchOptions(cfg)
	if err != nil {
		return err
	}
	w, err := watch.New(c.q, c.stdout, opts, log.With("component", "watch"))
	if err != nil {
		return err
	}
	log.Info("watching keys", "keys", keyList(opts.Keys), "format", string(w.Format()))
	if err := w.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Debug("watch interrupted")
			return nil
		}
		log.Error("watch failed", slog.Any("err", err))
		return err
	}
	return nil
}

func watchOptions(cfg config.Config) (watch.Options, error) {
	keys, err := cfg.WatchKeys()
	if err != nil {
		return watch.Options{}, err
	}
	interval, err := cfg.WatchInterval()
	if err != nil {
		return watch.Options{}, err
	}
	format, err := cfg.WatchFormat()
	if err != nil {
		return watch.Options{}, err
	}
	return watch.Options{
		Keys:     keys,
		Interval: interval,
		Count:    cfg.Watch.Count,
		Format:   format,
	}, nil
}

func keyList(keys []keystate.Key) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}
