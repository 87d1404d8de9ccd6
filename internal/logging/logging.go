package logging

import (
	"log/slog"
	"os"
)

// New bikin JSON logger dengan field service tetap, biar gampang di-filter.
func New(service string) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(h).With("service", service)
}
