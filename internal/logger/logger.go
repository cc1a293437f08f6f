package logger

import (
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	*slog.Logger
}

// New builds a JSON logger on stderr. Stdout is reserved for
// rendered output so pipelines can consume it directly.
func New(logLevel string) *Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLogLevel(logLevel),
		AddSource: logLevel == "debug",
	}

	handler := slog.NewJSONHandler(os.Stderr, opts)

	return &Logger{
		Logger: slog.New(handler),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", component),
	}
}

func (l *Logger) WithFields(fields ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.With(fields...),
	}
}

func (l *Logger) SourceSelected(category, source string) {
	l.Debug("Source selected",
		slog.String("category", category),
		slog.String("source", source))
}

func (l *Logger) CategoryCollected(category, source string, records int, duration int64) {
	l.Debug("Category collected",
		slog.String("category", category),
		slog.String("source", source),
		slog.Int("records", records),
		slog.Int64("duration_ms", duration))
}

func (l *Logger) CategoryFailed(category, source string, err error) {
	l.Warn("Category collection failed",
		slog.String("category", category),
		slog.String("source", source),
		slog.String("error", err.Error()))
}

func (l *Logger) RunCompleted(runID string, categories, records, failures int, duration int64) {
	l.Info("Collection run completed",
		slog.String("run_id", runID),
		slog.Int("categories", categories),
		slog.Int("records", records),
		slog.Int("failures", failures),
		slog.Int64("duration_ms", duration))
}
