// Package logging provides component-scoped structured logging for dupfind
// built on charmbracelet/log. Loggers write to a file under the XDG state
// directory and optionally mirror to stderr.
//
// Basic usage:
//
//	if err := logging.Init(logging.Config{Level: "info"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Close()
//
//	logger := logging.Get("walker")
//	logger.Info("scan started", "root", "/home/user")
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Config configures the logging system.
type Config struct {
	// Level is the log level (debug, info, warn, error).
	Level string

	// Path is the log file path. Empty uses DefaultLogPath().
	Path string

	// Console mirrors log output to stderr when true.
	Console bool
}

// Logger emits structured log records for one component. It resolves its
// backend at call time, so loggers obtained before Init become active once
// Init runs.
type Logger struct {
	component string
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, args ...any) { l.backend().Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, args ...any) { l.backend().Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, args ...any) { l.backend().Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, args ...any) { l.backend().Error(msg, args...) }

func (l *Logger) backend() *log.Logger {
	state.mu.RLock()
	defer state.mu.RUnlock()

	if backend, ok := state.backends[l.component]; ok {
		return backend
	}
	return discard
}

// discard swallows records emitted before Init.
var discard = log.NewWithOptions(io.Discard, log.Options{})

// state holds the global logging configuration.
var state = struct {
	mu          sync.RWMutex
	initialized bool
	file        *os.File
	backends    map[string]*log.Logger
	components  map[string]*Logger
	level       log.Level
	console     bool
}{
	backends:   make(map[string]*log.Logger),
	components: make(map[string]*Logger),
}

// Get returns the logger for the given component. Before Init is called
// the returned logger is silent.
func Get(component string) *Logger {
	state.mu.Lock()
	defer state.mu.Unlock()

	if l, ok := state.components[component]; ok {
		return l
	}
	l := &Logger{component: component}
	state.components[component] = l
	if state.initialized {
		state.backends[component] = newBackend(component)
	}
	return l
}

// Init opens the log file and activates all loggers. Calling Init again
// reconfigures the system, closing any previously opened file.
func Init(cfg Config) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	path := cfg.Path
	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.file != nil {
		state.file.Close()
	}
	state.file = f
	state.level = level
	state.console = cfg.Console
	state.initialized = true

	// Rebuild backends so existing component loggers pick up the new sink.
	for component := range state.components {
		state.backends[component] = newBackend(component)
	}

	return nil
}

// newBackend creates a charm logger for a component using the current
// global state. Callers must hold state.mu.
func newBackend(component string) *log.Logger {
	var w io.Writer = state.file
	if state.console {
		w = io.MultiWriter(state.file, os.Stderr)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           state.level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          component,
	})
}

// Close flushes and closes the log file. Loggers fall silent afterwards.
func Close() error {
	state.mu.Lock()
	defer state.mu.Unlock()

	if !state.initialized {
		return nil
	}
	state.initialized = false
	state.backends = make(map[string]*log.Logger)

	if state.file != nil {
		err := state.file.Close()
		state.file = nil
		if err != nil {
			return fmt.Errorf("closing log file: %w", err)
		}
	}
	return nil
}

// DefaultLogPath returns $XDG_STATE_HOME/dupfind/dupfind.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "dupfind", "dupfind.log")
}
