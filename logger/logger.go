package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Dependency injection points for testing outputs.
var (
	// outStdout is fatih/color's colorable stdout so escape codes render on Windows consoles too.
	outStdout io.Writer = color.Output

	// emit performs the actual write with the final argument list.
	emit = func(w io.Writer, args ...any) {
		_, _ = fmt.Fprintln(w, args...)
	}

	// Mutex for thread-safe logging across concurrent goroutines
	logMutex sync.Mutex
)

// Logger writes colored messages to a single writer.
// The zero value writes to standard output.
type Logger struct {
	out io.Writer
}

// New returns a Logger that writes to w. A nil w means standard output.
func New(w io.Writer) *Logger {
	return &Logger{out: w}
}

var std = &Logger{}

func (l *Logger) writer() io.Writer {
	if l == nil || l.out == nil {
		return outStdout
	}
	return l.out
}

// Log writes msg prefixed with the color code of severity.
// An empty severity is treated as Normal; an unrecognized one gets no prefix.
// No reset code is written after the message.
func (l *Logger) Log(msg string, severity Severity) {
	l.write(prefixed(msg, severity))
}

// LogData is like Log but also writes data as a second argument on the same line.
// data is passed through untouched so its own String or Error method decides
// how it renders. A nil data behaves exactly like Log.
func (l *Logger) LogData(msg string, severity Severity, data any) {
	if data == nil {
		l.Log(msg, severity)
		return
	}
	l.write(prefixed(msg, severity), data)
}

// Print writes msg with the Normal color code.
func (l *Logger) Print(msg string) {
	l.Log(msg, Normal)
}

func (l *Logger) write(args ...any) {
	logMutex.Lock()
	defer logMutex.Unlock()

	emit(l.writer(), args...)
}

func prefixed(msg string, severity Severity) string {
	code, _ := ColorCode(severity)
	return code + msg
}

// --- Package-level functions writing to standard output ---

// Log writes msg to standard output prefixed with the color code of severity.
// Thread-safe for concurrent use.
func Log(msg string, severity Severity) {
	std.Log(msg, severity)
}

// LogData writes msg and data to standard output on one line.
// Thread-safe for concurrent use.
//
// Example:
//
//	logger.LogData("disk full", logger.Error, map[string]int{"code": 28})
func LogData(msg string, severity Severity, data any) {
	std.LogData(msg, severity, data)
}

// Print writes msg to standard output with the Normal color code.
func Print(msg string) {
	std.Print(msg)
}
