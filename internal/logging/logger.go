// Package logging provides file-based logging for opsboard. Entries go
// to a single log file under the data directory.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes leveled, categorized entries to a log file. An empty
// path disables logging entirely.
type Logger struct {
	path  string
	file  *os.File
	mu    sync.Mutex
	level slog.Level
}

func New(path string, level slog.Level) *Logger {
	return &Logger{path: path, level: level}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
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

func (l *Logger) ensureFile() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatEntry renders one line: [2024-06-19 10:02:51] [INFO] [store] message
func formatEntry(t time.Time, level slog.Level, category, msg string) string {
	return fmt.Sprintf("[%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, category, msg string) {
	if l.path == "" || level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := l.ensureFile()
	if err != nil {
		return
	}
	_, _ = io.WriteString(f, formatEntry(time.Now(), level, category, msg))
}

func (l *Logger) Debug(category, msg string) { l.log(slog.LevelDebug, category, msg) }
func (l *Logger) Info(category, msg string)  { l.log(slog.LevelInfo, category, msg) }
func (l *Logger) Warn(category, msg string)  { l.log(slog.LevelWarn, category, msg) }
func (l *Logger) Error(category, msg string) { l.log(slog.LevelError, category, msg) }
