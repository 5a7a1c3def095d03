// Package iologger configures the global slog logger.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnparks/pkg/config"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "gnparks.log"

// Init sets the default slog logger according to cfg. With the "file"
// destination the log file in logDir is truncated on every start.
// The returned function closes the log file, if any.
func Init(logDir string, cfg config.LogConfig) (func() error, error) {
	var writer io.Writer
	closer := func() error { return nil }

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		file, err := os.Create(logPath)
		if err != nil {
			return closer, OpenLogError(logPath, err)
		}
		writer = file
		closer = file.Close
	default:
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text", "tint":
		handler = slog.NewTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
	return closer, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
