// Package logging provides the leveled, optionally colored logger used by
// the see CLI. The library itself never logs — inspection is a pure,
// single-pass computation — so everything here serves the command-line
// frontend and the REPL.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/backmassage/see/internal/config"
	"github.com/backmassage/see/internal/term"
)

// Logger writes leveled lines to stdout, errors to stderr. Colors come
// from the term package and are empty strings when disabled.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

// New configures terminal colors from cfg and returns a logger writing to
// stdout/stderr.
func New(cfg *config.Config) *Logger {
	term.Configure(cfg.ColorMode)
	return &Logger{out: os.Stdout, errOut: os.Stderr, verbose: cfg.Verbose}
}

func (l *Logger) line(level, color, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	w := l.out
	if level == "ERROR" {
		w = l.errOut
	}
	if color != "" {
		fmt.Fprintf(w, "%s[%s]%s %s\n", color, level, term.NC, text)
	} else {
		fmt.Fprintf(w, "[%s] %s\n", level, text)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
