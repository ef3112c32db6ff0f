package app

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger builds the app's isolated logger so embedding hosts keep their
// own global logger untouched. Probe verdicts go to the same writer, so the
// default stays at text/info to keep verdict lines and diagnostics readable
// together. An unrecognized level falls back to info.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(formatStr, "json") {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
