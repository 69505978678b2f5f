// internal/logger/slog.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	console "github.com/phsym/console-slog"
	"golang.org/x/term"
)

// Format selects the handler.
type Format string

const (
	FormatAuto    Format = "auto"
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Options configure New.
type Options struct {
	Level     Level
	Format    Format
	Output    io.Writer // default os.Stderr
	AddSource bool
}

type slogLogger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// New builds a slog backed Logger.
//
// FormatAuto picks the console handler when the output is a terminal or
// ENV=development, JSON otherwise.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	lv := &slog.LevelVar{}
	lv.Set(toSlogLevel(opts.Level))

	var handler slog.Handler
	if useConsole(opts.Format, out) {
		handler = console.NewHandler(out, &console.HandlerOptions{
			AddSource: opts.AddSource,
			Level:     lv,
		})
	} else {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			AddSource: opts.AddSource,
			Level:     lv,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					a.Key = "ts"
				}
				return a
			},
		})
	}

	return &slogLogger{logger: slog.New(handler), level: lv}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return New(Options{Format: FormatJSON, Output: io.Discard, Level: ErrorLevel})
}

func useConsole(f Format, out io.Writer) bool {
	switch f {
	case FormatConsole:
		return true
	case FormatJSON:
		return false
	}
	if os.Getenv("ENV") == "development" {
		return true
	}
	if fd, ok := out.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fd.Fd()))
	}
	return false
}

func (l *slogLogger) Debug(msg string, keysAndValues ...any) {
	l.log(slog.LevelDebug, msg, keysAndValues...)
}

func (l *slogLogger) Info(msg string, keysAndValues ...any) {
	l.log(slog.LevelInfo, msg, keysAndValues...)
}

func (l *slogLogger) Warn(msg string, keysAndValues ...any) {
	l.log(slog.LevelWarn, msg, keysAndValues...)
}

func (l *slogLogger) Error(msg string, keysAndValues ...any) {
	l.log(slog.LevelError, msg, keysAndValues...)
}

func (l *slogLogger) Fatal(msg string, keysAndValues ...any) {
	l.log(slog.LevelError, msg, keysAndValues...)
	os.Exit(1)
}

func (l *slogLogger) With(keysAndValues ...any) Logger {
	return &slogLogger{
		logger: l.logger.With(keysAndValues...),
		level:  l.level,
	}
}

func (l *slogLogger) Level() Level {
	switch l.level.Level() {
	case slog.LevelDebug:
		return DebugLevel
	case slog.LevelInfo:
		return InfoLevel
	case slog.LevelWarn:
		return WarnLevel
	default:
		return ErrorLevel
	}
}

func (l *slogLogger) SetLevel(level Level) {
	l.level.Set(toSlogLevel(level))
}

// log must be called directly by an exported method: the caller pc is taken
// at a fixed depth.
func (l *slogLogger) log(level slog.Level, msg string, args ...any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	// skip [runtime.Callers, log, exported method]
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(ctx, r)
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
