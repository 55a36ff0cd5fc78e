package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Init installs the default slog logger. Diagnostics go to stderr so report
// output on stdout stays machine-readable.
func Init(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})

	slog.SetDefault(slog.New(handler))
}
