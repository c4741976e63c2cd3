// Package log provides the terminal logger shared by the lm launcher and
// the lmprep maintenance CLI.
//
// Launcher notices and maintenance output go through this package; output
// captured from the delegated lm process never does, it is relayed raw by
// the caller. Uses lipgloss for styling, stderr for warn/error, stdout for
// everything else.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// LogLevel controls the verbosity of log output.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn shows only warnings and errors.
	LevelWarn
	// LevelError shows only errors.
	LevelError
	// LevelSilent suppresses all output.
	LevelSilent
)

// config holds the global logger configuration.
type config struct {
	mu     sync.RWMutex
	level  LogLevel
	quiet  bool
	stdout io.Writer
	stderr io.Writer
}

var cfg = &config{
	level:  LevelInfo,
	stdout: os.Stdout,
	stderr: os.Stderr,
}

var (
	dimStyle    = lipgloss.NewStyle().Faint(true)
	boldStyle   = lipgloss.NewStyle().Bold(true)
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// SetLevel sets the minimum log level. Messages below this level are suppressed.
func SetLevel(level LogLevel) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.level = level
}

// GetLevel returns the current log level.
func GetLevel() LogLevel {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.level
}

// SetWriters redirects log output. The launcher points both streams at its
// own writers so notices and relayed child output stay ordered.
func SetWriters(stdout, stderr io.Writer) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.stdout = stdout
	cfg.stderr = stderr
}

// EnableQuietMode suppresses ALL output including errors.
// Only exit codes communicate success/failure.
func EnableQuietMode() {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.quiet = true
	cfg.level = LevelSilent
}

// DisableQuietMode restores normal output.
func DisableQuietMode() {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.quiet = false
	cfg.level = LevelInfo
}

// IsQuiet returns whether quiet mode is enabled.
func IsQuiet() bool {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.quiet
}

// canOutput checks if output is allowed at the given level.
func canOutput(level LogLevel) bool {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return !cfg.quiet && cfg.level <= level
}

func stdout() io.Writer {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.stdout
}

func stderr() io.Writer {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.stderr
}

// Debug outputs a debug-level message (dim styling).
func Debug(message string) {
	if canOutput(LevelDebug) {
		fmt.Fprintln(stdout(), dimStyle.Render(message))
	}
}

// Debugf outputs a formatted debug-level message.
func Debugf(format string, args ...any) {
	if canOutput(LevelDebug) {
		Debug(fmt.Sprintf(format, args...))
	}
}

// Info outputs an info-level message (no styling).
func Info(message string) {
	if canOutput(LevelInfo) {
		fmt.Fprintln(stdout(), message)
	}
}

// Infof outputs a formatted info-level message.
func Infof(format string, args ...any) {
	if canOutput(LevelInfo) {
		Info(fmt.Sprintf(format, args...))
	}
}

// Warn outputs a warning message (yellow, to stderr).
func Warn(message string) {
	if canOutput(LevelWarn) {
		fmt.Fprintln(stderr(), yellowStyle.Render(message))
	}
}

// Warnf outputs a formatted warning message.
func Warnf(format string, args ...any) {
	if canOutput(LevelWarn) {
		Warn(fmt.Sprintf(format, args...))
	}
}

// Error outputs an error message (red, to stderr).
func Error(message string) {
	if canOutput(LevelError) {
		fmt.Fprintln(stderr(), redStyle.Render(message))
	}
}

// Errorf outputs a formatted error message.
func Errorf(format string, args ...any) {
	if canOutput(LevelError) {
		Error(fmt.Sprintf(format, args...))
	}
}

// Success outputs a success message (green, info level).
func Success(message string) {
	if canOutput(LevelInfo) {
		fmt.Fprintln(stdout(), greenStyle.Render(message))
	}
}

// Dim outputs a subtle/dim message (info level).
func Dim(message string) {
	if canOutput(LevelInfo) {
		fmt.Fprintln(stdout(), dimStyle.Render(message))
	}
}

// Bold outputs a bold/emphasized message (info level).
func Bold(message string) {
	if canOutput(LevelInfo) {
		fmt.Fprintln(stdout(), boldStyle.Render(message))
	}
}

// Yellow outputs a yellow-colored message (info level, not warning).
func Yellow(message string) {
	if canOutput(LevelInfo) {
		fmt.Fprintln(stdout(), yellowStyle.Render(message))
	}
}

// Newline outputs an empty line. Respects log level (info).
func Newline() {
	if canOutput(LevelInfo) {
		fmt.Fprintln(stdout())
	}
}
