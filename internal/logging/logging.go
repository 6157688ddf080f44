// Package logging builds the run logger: slog with a tint handler.
//
// Progress diagnostics ("checking <path>" and friends) are Debug records,
// so they show up exactly when --verbose is on.
package logging

import (
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
)

// New returns the run logger writing to w. Verbose runs log at Debug,
// quiet runs at Info. Color follows the same terminal detection the rest
// of the console output uses.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		NoColor:    color.NoColor,
		TimeFormat: "15:04:05",
	}))
}
