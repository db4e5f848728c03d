// Package logger provides levelled logging for hdcat.
// Warnings are printed by default so swallowed persistence failures stay
// visible. When verbose mode is enabled via the --verbose flag, debug and
// info messages describing query execution are printed too.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the minimum severity that is printed.
type Level int

// Levels from most to least chatty.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelOff
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelOff:
		return "off"
	default:
		return "unknown"
	}
}

var (
	mu     sync.Mutex
	level            = LevelWarn
	output io.Writer = os.Stderr
)

// SetVerbose switches between debug output and warnings only.
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelWarn)
}

// IsVerbose returns true if debug messages are printed.
func IsVerbose() bool {
	return CurrentLevel() == LevelDebug
}

// SetLevel sets the minimum printed level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// CurrentLevel returns the minimum printed level.
func CurrentLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// SetOutput sets the output writer and returns the previous one.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

func logf(l Level, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	logf(LevelDebug, "\n=== ", "%s ===", name)
}

// Info prints an informational message at info level or below.
func Info(format string, args ...any) {
	logf(LevelInfo, "[INFO] ", format, args...)
}

// Warn prints a warning unless logging is off.
func Warn(format string, args ...any) {
	logf(LevelWarn, "[WARN] ", format, args...)
}
