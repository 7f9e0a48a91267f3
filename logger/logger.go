// Package logger provides a small leveled logger with key=value fields.
// Output goes to stderr and, when a file path is configured, to a
// size-rotated log file as well.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Fields carries structured context appended to a log line as key=value pairs.
type Fields map[string]interface{}

// Level is the logger severity threshold.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var levelNames = map[Level]string{
	Debug: "DEBUG",
	Info:  "INFO",
	Warn:  "WARN",
	Error: "ERROR",
}

// ParseLevel maps a config string to a Level. Unknown values fall back to Info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// Logger writes leveled log lines to one or more destinations.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   *log.Logger
}

// New creates a Logger at the given level. When file is non-empty, lines are
// duplicated into a rotating file capped at 50 MB with 5 backups.
func New(level Level, file string) *Logger {
	var w io.Writer = os.Stderr
	if file != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	return &Logger{
		level: level,
		out:   log.New(w, "", log.LstdFlags),
	}
}

func (l *Logger) logf(level Level, msg string, fields Fields) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Printf("%s %s%s", levelNames[level], msg, formatFields(fields))
}

// formatFields renders fields sorted by key for stable output.
func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields Fields) { l.logf(Debug, msg, fields) }

// Info logs at info level.
func (l *Logger) Info(msg string, fields Fields) { l.logf(Info, msg, fields) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields Fields) { l.logf(Warn, msg, fields) }

// Error logs at error level.
func (l *Logger) Error(msg string, fields Fields) { l.logf(Error, msg, fields) }
