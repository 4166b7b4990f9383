package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Supported handler formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTint = "tint"
)

// New creates a configured application logger.
// It writes to Stderr (to keep Stdout free for command output and reports)
// and standardizes common keys (e.g., "error" -> "err").
func New(format string, level slog.Level) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}

	var handler slog.Handler
	switch format {
	case FormatText:
		handler = slog.NewTextHandler(os.Stderr, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case FormatTint:
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}

	return slog.New(handler), nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("could not parse log level %q: %w", name, err)
	}
	return level, nil
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
