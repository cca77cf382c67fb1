package cli

import (
	"log/slog"
	"os"
)

var verbose bool

// newLogger builds the run logger. Informational per-file messages only show
// up with --verbose; warnings always print.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every file found or missed")
}
