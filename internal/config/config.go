package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/rpdg/keystate/keyboard"
)

const (
	defaultInterval = 50 * time.Millisecond
	minInterval     = time.Millisecond
	defaultLogLevel = "info"
)

var defaultKeys = []string{"space"}

// Format selects how watcher samples are written.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type Config struct {
	Watch   WatchConfig   `toml:"watch"`
	Logging LoggingConfig `toml:"logging"`
}

type WatchConfig struct {
	Keys     []string `toml:"keys"`
	Interval string   `toml:"interval"`
	Count    int      `toml:"count"`
	Format   string   `toml:"format"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Watch: WatchConfig{
			Keys:     append([]string{}, defaultKeys...),
			Interval: defaultInterval.String(),
			Format:   string(FormatAuto),
		},
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
	}
}

// DefaultPath returns ~/.keystate/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".keystate", "config.toml"), nil
}

// Load reads path on top of the defaults. A missing or empty file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}
	if err := readTOML(resolved, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", resolved, err)
	}
	return cfg, nil
}

// Validate checks every field that an accessor would otherwise reject.
func (c Config) Validate() error {
	if _, err := c.WatchKeys(); err != nil {
		return err
	}
	if _, err := c.WatchInterval(); err != nil {
		return err
	}
	if c.Watch.Count < 0 {
		return fmt.Errorf("watch.count must not be negative: %d", c.Watch.Count)
	}
	if _, err := c.WatchFormat(); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel()); err != nil {
		return err
	}
	return nil
}

func (c Config) WatchKeys() ([]keyboard.Key, error) {
	names := normalizedList(c.Watch.Keys)
	if len(names) == 0 {
		names = append([]string{}, defaultKeys...)
	}
	keys := make([]keyboard.Key, 0, len(names))
	for _, name := range names {
		k, err := keyboard.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("watch.keys: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (c Config) WatchInterval() (time.Duration, error) {
	raw := strings.TrimSpace(c.Watch.Interval)
	if raw == "" {
		return defaultInterval, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("watch.interval: %w", err)
	}
	if d < minInterval {
		return 0, fmt.Errorf("watch.interval must be at least %s: %s", minInterval, d)
	}
	return d, nil
}

func (c Config) WatchFormat() (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(c.Watch.Format))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("watch.format: unknown format %q", c.Watch.Format)
	}
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func readTOML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultPath()
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

func normalizedList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
