package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Level is the minimal severity that gets written
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// ParseLevel maps "info" | "warn" | "error" to a Level. Unknown values mean info.
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

// Logger writes printf-style lines to stdout and, optionally, to a file
type Logger struct {
	mu    sync.Mutex
	level Level
	file  *os.File
	std   *log.Logger
}

// New creates a logger. An empty file path logs to stdout only.
func New(file string, level string) (*Logger, error) {
	var out io.Writer = os.Stdout
	var f *os.File

	if file != "" {
		if dir := filepath.Dir(file); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		var err error
		f, err = os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, f)
	}

	return &Logger{
		level: ParseLevel(level),
		file:  f,
		std:   log.New(out, "", log.LstdFlags|log.Lmicroseconds),
	}, nil
}

// NewWriter creates a logger over an arbitrary writer (tests, stderr)
func NewWriter(w io.Writer, level string) *Logger {
	return &Logger{
		level: ParseLevel(level),
		std:   log.New(w, "", log.LstdFlags|log.Lmicroseconds),
	}
}

func (l *Logger) write(level Level, tag, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.std.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "INFO", format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "WARN", format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "ERROR", format, v...)
}

// Fatal logs and exits with status 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "FATAL", format, v...)
	l.Close()
	os.Exit(1)
}

// Close flushes and closes the log file
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

// Nop discards everything. Handy in tests.
type Nop struct{}

func (Nop) Info(string, ...interface{})  {}
func (Nop) Warn(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
