package bootstrap

import (
	"log/slog"
	"os"
	"strings"

	"wishkeeper/internal/pkg/config"

	"go.uber.org/fx"
)

// LoggerModule provides a plain JSON slog logger for non-HTTP binaries; the
// server wires its logger through the request-logging middleware instead.
var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
