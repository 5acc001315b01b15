// Package logger builds the application's *slog.Logger: colored tint output
// for people at a terminal, JSON for everything else.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("logger: unknown format")

// Options selects the handler.
type Options struct {
	Format    string // "text" (tint) or "json"
	Level     string // slog level name: debug, info, warn, error
	NoColor   bool   // disable ANSI colors in text output
	AddSource bool
}

// ParseLevel parses a slog level name, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logger: level %q: %w", s, err)
	}

	return lvl, nil
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(opts.Format) {
	case "", "text":
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
			AddSource:  opts.AddSource,
			NoColor:    opts.NoColor,
		})), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: opts.AddSource,
		})), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, opts.Format)
	}
}
