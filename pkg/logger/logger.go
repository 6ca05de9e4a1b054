// Package logger provides the leveled, colored console logger used
// across swarmkit. Output is line-oriented and human-first; color is
// dropped automatically when stdout is not a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Level represents the severity of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// Logger is the logging interface handed to packages.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	WithPrefix(prefix string) Logger
	WithField(key string, value interface{}) Logger
}

type logger struct {
	mu       sync.Mutex
	level    Level
	writer   io.Writer
	prefix   string
	fields   map[string]interface{}
	noColor  bool
	showTime bool
}

// Config holds logger configuration.
type Config struct {
	Level    Level
	Writer   io.Writer
	NoColor  bool
	ShowTime bool
}

var defaultLogger = New()

// New creates a logger writing to stdout at Info level. Color is
// enabled only when stdout is a terminal.
func New() Logger {
	return NewWithConfig(Config{
		Level:    InfoLevel,
		Writer:   os.Stdout,
		NoColor:  !term.IsTerminal(int(os.Stdout.Fd())),
		ShowTime: true,
	})
}

// NewWithConfig creates a logger with explicit configuration.
func NewWithConfig(cfg Config) Logger {
	return &logger{
		level:    cfg.Level,
		writer:   cfg.Writer,
		fields:   make(map[string]interface{}),
		noColor:  cfg.NoColor,
		showTime: cfg.ShowTime,
	}
}

// SetLevel sets the level of the package-default logger.
func SetLevel(level Level) {
	if l, ok := defaultLogger.(*logger); ok {
		l.mu.Lock()
		l.level = level
		l.mu.Unlock()
	}
}

// SetNoColor forces color output off on the package-default logger.
func SetNoColor(noColor bool) {
	if l, ok := defaultLogger.(*logger); ok {
		l.mu.Lock()
		l.noColor = noColor
		l.mu.Unlock()
	}
}

// Package-level helpers delegating to the default logger.
func Debug(args ...interface{})                      { defaultLogger.Debug(args...) }
func Debugf(format string, args ...interface{})      { defaultLogger.Debugf(format, args...) }
func Info(args ...interface{})                       { defaultLogger.Info(args...) }
func Infof(format string, args ...interface{})       { defaultLogger.Infof(format, args...) }
func Warn(args ...interface{})                       { defaultLogger.Warn(args...) }
func Warnf(format string, args ...interface{})       { defaultLogger.Warnf(format, args...) }
func Error(args ...interface{})                      { defaultLogger.Error(args...) }
func Errorf(format string, args ...interface{})      { defaultLogger.Errorf(format, args...) }
func Fatal(args ...interface{})                      { defaultLogger.Fatal(args...) }
func Fatalf(format string, args ...interface{})      { defaultLogger.Fatalf(format, args...) }
func WithPrefix(prefix string) Logger                { return defaultLogger.WithPrefix(prefix) }
func WithField(key string, value interface{}) Logger { return defaultLogger.WithField(key, value) }

func (l *logger) log(level Level, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()

	var parts []string

	if l.showTime {
		ts := time.Now().Format("15:04:05")
		parts = append(parts, l.paint(colorGray, ts))
	}

	name, levelColor := levelString(level)
	parts = append(parts, l.paint(levelColor, name))

	if l.prefix != "" {
		parts = append(parts, l.paint(colorCyan, "["+l.prefix+"]"))
	}

	if len(l.fields) > 0 {
		var fieldParts []string
		for k, v := range l.fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, l.paint(colorGray, strings.Join(fieldParts, " ")))
	}

	parts = append(parts, fmt.Sprint(args...))
	_, _ = fmt.Fprintln(l.writer, strings.Join(parts, " "))

	l.mu.Unlock()

	if level == FatalLevel {
		os.Exit(1)
	}
}

func (l *logger) logf(level Level, format string, args ...interface{}) {
	l.log(level, fmt.Sprintf(format, args...))
}

// paint wraps s in a color unless color is disabled.
func (l *logger) paint(color, s string) string {
	if l.noColor {
		return s
	}
	return color + s + colorReset
}

func levelString(level Level) (string, string) {
	switch level {
	case DebugLevel:
		return "DEBUG", colorGray
	case InfoLevel:
		return "INFO ", colorGreen
	case WarnLevel:
		return "WARN ", colorYellow
	case ErrorLevel:
		return "ERROR", colorRed
	case FatalLevel:
		return "FATAL", colorRed + colorBold
	default:
		return "UNKNOWN", colorReset
	}
}

func (l *logger) Debug(args ...interface{})            { l.log(DebugLevel, args...) }
func (l *logger) Debugf(f string, args ...interface{}) { l.logf(DebugLevel, f, args...) }
func (l *logger) Info(args ...interface{})             { l.log(InfoLevel, args...) }
func (l *logger) Infof(f string, args ...interface{})  { l.logf(InfoLevel, f, args...) }
func (l *logger) Warn(args ...interface{})             { l.log(WarnLevel, args...) }
func (l *logger) Warnf(f string, args ...interface{})  { l.logf(WarnLevel, f, args...) }
func (l *logger) Error(args ...interface{})            { l.log(ErrorLevel, args...) }
func (l *logger) Errorf(f string, args ...interface{}) { l.logf(ErrorLevel, f, args...) }
func (l *logger) Fatal(args ...interface{})            { l.log(FatalLevel, args...) }
func (l *logger) Fatalf(f string, args ...interface{}) { l.logf(FatalLevel, f, args...) }

func (l *logger) child() *logger {
	nl := &logger{
		level:    l.level,
		writer:   l.writer,
		prefix:   l.prefix,
		fields:   make(map[string]interface{}, len(l.fields)),
		noColor:  l.noColor,
		showTime: l.showTime,
	}
	for k, v := range l.fields {
		nl.fields[k] = v
	}
	return nl
}

func (l *logger) WithPrefix(prefix string) Logger {
	nl := l.child()
	nl.prefix = prefix
	return nl
}

func (l *logger) WithField(key string, value interface{}) Logger {
	nl := l.child()
	nl.fields[key] = value
	return nl
}

// ParseLevel parses a level name, defaulting to Info.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}
