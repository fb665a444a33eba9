// Package logger writes structured logs to a file so the TUI's alternate
// screen is never disturbed.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu       sync.Mutex
	base     *slog.Logger
	logFile  *os.File
	levelVar = new(slog.LevelVar)
)

// Init opens path for appending and routes all component loggers to it.
// Calling Init again replaces the previous destination.
func Init(path string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	setLevel(debug)
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", path)
	return nil
}

// InitWriter routes logs to w. Used by tests.
func InitWriter(w io.Writer, debug bool) {
	mu.Lock()
	defer mu.Unlock()
	setLevel(debug)
	base = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
}

func setLevel(debug bool) {
	if debug {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
}

// ComponentLogger returns a logger with the component attribute pre-attached.
// Before Init it discards everything.
//
//	log := logger.ComponentLogger("graphql")
//	log.Debug("request", "op", op)
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if base == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return base.With(slog.String("component", component))
}
