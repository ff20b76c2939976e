// Package logging provides a zerolog-backed notion.Logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// Logger writes structured log lines through zerolog.
type Logger struct {
	logger zerolog.Logger
}

var _ notion.Logger = (*Logger)(nil)

// NewZerolog creates a logger writing JSON lines to w at or above level.
// A nil writer logs to stderr.
func NewZerolog(w io.Writer, level zerolog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}

	return &Logger{
		logger: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// NewConsole creates a human readable logger for terminals.
func NewConsole(w io.Writer, level zerolog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}

	return NewZerolog(zerolog.ConsoleWriter{Out: w, NoColor: true}, level)
}

// ParseLevel maps a level name such as "debug" or "warn" to a zerolog
// level. Unknown names fall back to info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
