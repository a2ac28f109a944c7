// Package logger builds the process-wide slog.Logger for an environment.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Setup returns a colored human-readable logger for local runs and a JSON
// logger otherwise: debug level on dev, info on prod and anything else.
func Setup(env string) *slog.Logger {
	return setup(env, os.Stdout)
}

func setup(env string, w io.Writer) *slog.Logger {
	switch env {
	case EnvLocal:
		color.NoColor = false
		return slog.New(NewPrettyHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
