package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type implLogger struct {
	logger zerolog.Logger
	level  zerolog.Level
}

// New creates a new Logger instance writing human readable lines to stdout
func New(level string) Logger {
	return NewWithWriter(level, "text", os.Stdout)
}

// NewWithWriter creates a Logger with an explicit output format ("text" or "json") and writer
func NewWithWriter(level, format string, w io.Writer) Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel // default to info
	}

	out := w
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: true}
	}

	return &implLogger{
		logger: zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "caption-digest").Logger(),
		level:  lvl,
	}
}

// NewNop returns a Logger that discards everything
func NewNop() Logger {
	return &implLogger{logger: zerolog.Nop(), level: zerolog.Disabled}
}

func (l *implLogger) shouldLog(level string) bool {
	target, err := zerolog.ParseLevel(level)
	if err != nil || target == zerolog.NoLevel {
		return true
	}
	return target >= l.level
}

func (l *implLogger) event(ctx context.Context, e *zerolog.Event) *zerolog.Event {
	if rid := RequestIDFromContext(ctx); rid != "" {
		e = e.Str("request_id", rid)
	}
	return e
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.event(ctx, l.logger.Debug()).Msgf(msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.event(ctx, l.logger.Info()).Msgf(msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.event(ctx, l.logger.Warn()).Msgf(msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.event(ctx, l.logger.Error()).Msgf(msg, args...)
	}
}
