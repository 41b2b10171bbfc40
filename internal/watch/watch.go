package watch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/rpdg/keystate"
	"github.com/rpdg/keystate/internal/config"
)

// Options controls a Watcher.
type Options struct {
	Keys     []keystate.Key
	Interval time.Duration
	// Count stops the watcher after that many samples. Zero runs until the
	// context is cancelled.
	Count  int
	Format config.Format
}

// Tick is one sample of every watched key.
type Tick struct {
	Time time.Time         `json:"time"`
	Keys []keystate.Report `json:"keys"`
}

// Watcher samples a fixed set of keys at a fixed interval and writes one
// record per sample.
type Watcher struct {
	q      *keystate.Querier
	out    io.Writer
	opts   Options
	format config.Format
	log    *slog.Logger
	now    func() time.Time

	enc       *json.Encoder
	downStyle lipgloss.Style
	upStyle   lipgloss.Style
	timeStyle lipgloss.Style
}

func New(q *keystate.Querier, out io.Writer, opts Options, log *slog.Logger) (*Watcher, error) {
	if q == nil {
		return nil, errors.New("watch: querier is required")
	}
	if out == nil {
		return nil, errors.New("watch: output is required")
	}
	if len(opts.Keys) == 0 {
		return nil, errors.New("watch: at least one key is required")
	}
	if opts.Interval <= 0 {
		return nil, fmt.Errorf("watch: invalid interval %s", opts.Interval)
	}
	if opts.Count < 0 {
		return nil, fmt.Errorf("watch: invalid count %d", opts.Count)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	format := ResolveFormat(opts.Format, out)
	r := lipgloss.NewRenderer(out)
	return &Watcher{
		q:         q,
		out:       out,
		opts:      opts,
		format:    format,
		log:       log,
		now:       time.Now,
		enc:       json.NewEncoder(out),
		downStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		upStyle:   r.NewStyle().Faint(true),
		timeStyle: r.NewStyle().Foreground(lipgloss.Color("8")),
	}, nil
}

// ResolveFormat turns FormatAuto into text for terminals and JSON otherwise.
func ResolveFormat(f config.Format, out io.Writer) config.Format {
	if f != config.FormatAuto && f != "" {
		return f
	}
	if file, ok := out.(*os.File); ok {
		fd := file.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return config.FormatText
		}
	}
	return config.FormatJSON
}

func (w *Watcher) Format() config.Format { return w.format }

// Poll reads every watched key once.
func (w *Watcher) Poll() Tick {
	reports := make([]keystate.Report, len(w.opts.Keys))
	for i, k := range w.opts.Keys {
		reports[i] = w.q.Sample(k)
	}
	return Tick{Time: w.now(), Keys: reports}
}

// Run samples immediately and then once per interval until Count samples
// have been written or ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Debug("watch started",
		"keys", len(w.opts.Keys),
		"interval", w.opts.Interval,
		"count", w.opts.Count,
		"format", string(w.format))

	t := time.NewTicker(w.opts.Interval)
	defer t.Stop()

	written := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.write(w.Poll()); err != nil {
			return err
		}
		written++
		if w.opts.Count > 0 && written >= w.opts.Count {
			w.log.Debug("watch finished", "samples", written)
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (w *Watcher) write(tick Tick) error {
	if w.format == config.FormatText {
		_, err := io.WriteString(w.out, w.renderText(tick)+"\n")
		return err
	}
	return w.enc.Encode(tick)
}

func (w *Watcher) renderText(tick Tick) string {
	parts := make([]string, 0, len(tick.Keys)+1)
	parts = append(parts, w.timeStyle.Render(tick.Time.Format("15:04:05.000")))
	for _, r := range tick.Keys {
		token := r.Key.String() + "=" + r.State.String()
		if r.State == keystate.Down {
			parts = append(parts, w.downStyle.Render(token))
		} else {
			parts = append(parts, w.upStyle.Render(token))
		}
	}
	return strings.Join(parts, " ")
}
