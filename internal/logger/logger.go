package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Build returns a text logger writing to w at the named level. Unknown levels
// fall back to info.
func Build(level string, w io.Writer) *slog.Logger {
	ops := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	return slog.New(slog.NewTextHandler(w, ops))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
