// internal/logger/logger.go
// Package logger provides the structured logger used across keyer-test.
//
// Call sites log a message plus key/value pairs:
//
//	log.Info("calibration done", "dit_on", cal.Dit.On, "dit_off", cal.Dit.Off)
package logger

import (
	"fmt"
	"strings"
)

// Level is a logging severity.
type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel
	WarnLevel
	ErrorLevel
	// FatalLevel logs and then calls os.Exit(1).
	FatalLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	default:
		return fmt.Sprintf("Level(%d)", int8(l))
	}
}

// ParseLevel maps a config string to a Level. Empty means info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "", "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("logger: unknown level %q", s)
	}
}

// Logger is the logging contract.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	// Fatal logs at error severity, then exits the process.
	Fatal(msg string, keysAndValues ...any)
	// With returns a child logger carrying extra key/values.
	With(keysAndValues ...any) Logger
	Level() Level
	SetLevel(level Level)
}
