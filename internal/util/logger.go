package util

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger = zerolog.Logger

// LogLevel represents available log levels
type LogLevel = int

// Log levels
const (
	TraceLevel LogLevel = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
)

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// InitializeLogger sets up the global logger with the specified configuration
func InitializeLogger(level LogLevel) {
	// Set time format to ISO8601
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerologLevel(level))

	// Console writer with nice formatting for terminal output
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	ctx := zerolog.New(output).With().Timestamp()
	if level == TraceLevel {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
	log.Info().Msg("Logger initialized")
}

// GetLogger returns a configured logger for a specific component
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// BadgerLogger adapts the global zerolog logger to badger's Logger interface
// so badger's internal output lands in the same stream as everything else.
type BadgerLogger struct{}

func (b *BadgerLogger) Errorf(format string, i ...any) {
	log.Error().Msg(fmt.Sprintf(format, i...))
}

func (b *BadgerLogger) Warningf(format string, i ...any) {
	log.Warn().Msg(fmt.Sprintf(format, i...))
}

func (b *BadgerLogger) Infof(format string, i ...any) {
	log.Info().Msg(fmt.Sprintf(format, i...))
}

func (b *BadgerLogger) Debugf(format string, i ...any) {
	log.Debug().Msg(fmt.Sprintf(format, i...))
}
