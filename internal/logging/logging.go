// internal/logging/logging.go
package logging

import (
	"io"
	"log/slog"
)

type Config struct {
	Out   io.Writer
	Debug bool // debug level with source locations
	Quiet bool // warnings and errors only
}

// New builds a text logger for cfg without timestamps.
func New(cfg Config) *slog.Logger {
	if cfg.Out == nil {
		return Discard()
	}
	level := slog.LevelInfo
	switch {
	case cfg.Debug:
		level = slog.LevelDebug
	case cfg.Quiet:
		level = slog.LevelWarn
	}
	h := slog.NewTextHandler(cfg.Out, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(h)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
