package ui

import (
	"log/slog"

	"github.com/gogpu/ui/internal/logging"
)

// SetLogger configures the logger for ui and all its sub-packages
// (atlas, asset). By default, ui produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by ui:
//   - [slog.LevelDebug]: layout diagnostics (flex distribution, text wrapping,
//     style rasterization, atlas repacks)
//   - [slog.LevelWarn]: a layout pass failed and returned an error
//
// Example:
//
//	ui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by ui.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
