package cmd

import (
	"io"
	"log/slog"

	"github.com/golang-cz/devslog"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(devslog.NewHandler(w, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{Level: level},
	}))
}
