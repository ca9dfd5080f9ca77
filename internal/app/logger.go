package app

import (
	"io"
	"log/slog"
	"strings"
)

// logLevels maps the -log-level / MAZE_LOG_LEVEL names to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the per-run logger writing to w. Unknown or empty levels
// fall back to warn, the CLI default, so stderr stays quiet unless asked.
// Any format other than "json" selects the text handler.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	lvl, ok := logLevels[strings.ToLower(level)]
	if !ok {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
