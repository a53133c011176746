// Package logger provides the process wide zerolog logger. Lines are written in the
// GitHub Actions workflow command format so warnings and errors show up as
// annotations on the run.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is our internal "singleton" wrapper around zerolog allowing every
// consumer to be redirected at once
type Logger struct {
	zl *zerolog.Logger
}

var logger Logger

func init() {
	Reset()
}

// New returns the internal "singleton" logger
func New() Logger {
	return logger
}

// NewWriter returns a console writer that prefixes each line with the workflow
// command matching its level
func NewWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         out,
		NoColor:     true,
		PartsOrder:  []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: workflowCommand,
	}
}

func workflowCommand(i interface{}) string {
	level, _ := i.(string)
	switch level {
	case zerolog.LevelDebugValue, zerolog.LevelTraceValue:
		return "::debug::"
	case zerolog.LevelWarnValue:
		return "::warning::"
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return "::error::"
	}
	return ""
}

// SetOutput redirects all loggers to out
func SetOutput(out io.Writer) {
	zl := logger.zl.Output(NewWriter(out))
	*logger.zl = zl
}

// Reset resets the logger to write to stderr at info level
func Reset() {
	zl := zerolog.New(NewWriter(os.Stderr)).Level(zerolog.InfoLevel)

	logger = Logger{
		zl: &zl,
	}
}

// SetDebug lowers the logger's own level to debug
func SetDebug() {
	zl := logger.zl.Level(zerolog.DebugLevel)
	*logger.zl = zl
}

// Zerolog returns a copy of the underlying zerolog logger for injection
func (l Logger) Zerolog() zerolog.Logger {
	return *l.zl
}

// Info wrapper around zerolog Info
func (l Logger) Info() *zerolog.Event {
	return l.zl.Info()
}

// Debug wrapper around zerolog Debug
func (l Logger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

// Warn wrapper around zerolog Warn
func (l Logger) Warn() *zerolog.Event {
	return l.zl.Warn()
}

// Error wrapper around zerolog Error
func (l Logger) Error() *zerolog.Event {
	return l.zl.Error()
}
