// Package logging builds the slog handlers used by the dev server.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Format selects the log record encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a user supplied format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatText), "txt", "console":
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported log format: %q", s)
	}
}

// levelSettings is the outcome of parsing a level name.
type levelSettings struct {
	level     slog.Level
	caller    bool
	timestamp bool
}

func parseLevel(logLevel string) levelSettings {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "trace":
		return levelSettings{level: slog.LevelDebug, caller: true, timestamp: true}
	case "debug":
		return levelSettings{level: slog.LevelDebug, timestamp: true}
	case "warn", "warning":
		return levelSettings{level: slog.LevelWarn}
	case "error":
		return levelSettings{level: slog.LevelError}
	default:
		return levelSettings{level: slog.LevelInfo}
	}
}

// SetupHandlerText returns a charmbracelet/log handler writing human readable lines.
// A nil writer means os.Stderr.
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	ls := parseLevel(logLevel)
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: ls.timestamp,
		ReportCaller:    ls.caller,
		Level:           charmLevel(ls.level),
	})
}

func charmLevel(l slog.Level) log.Level {
	switch {
	case l <= slog.LevelDebug:
		return log.DebugLevel
	case l >= slog.LevelError:
		return log.ErrorLevel
	case l >= slog.LevelWarn:
		return log.WarnLevel
	default:
		return log.InfoLevel
	}
}

// SetupHandlerJSON returns a JSON slog handler. A nil writer means os.Stdout.
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	ls := parseLevel(logLevel)
	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     ls.level,
		AddSource: ls.caller,
	})
}

// NewHandler picks the handler for the given format.
func NewHandler(format Format, logLevel string, writer io.Writer) slog.Handler {
	if format == FormatJSON {
		return SetupHandlerJSON(logLevel, writer)
	}
	return SetupHandlerText(logLevel, writer)
}

// SetupLogger installs a new default logger and returns it.
func SetupLogger(format Format, logLevel string, writer io.Writer) *slog.Logger {
	logger := slog.New(NewHandler(format, logLevel, writer))
	slog.SetDefault(logger)
	return logger
}
