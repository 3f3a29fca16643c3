package regionedit

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is the abstract sink for the engine's informational and error
// messages. It is purely observational and never influences control
// flow: an operation that logs an error still returns its own result.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}

// WriterLogger writes timestamped log lines to an io.Writer.
// Safe for concurrent use.
type WriterLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterLogger creates a WriterLogger writing to w.
func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{out: w}
}

// Infof logs an informational message.
func (l *WriterLogger) Infof(format string, args ...any) {
	l.log("INFO", format, args)
}

// Errorf logs an error message.
func (l *WriterLogger) Errorf(format string, args ...any) {
	l.log("ERROR", format, args)
}

func (l *WriterLogger) log(level, format string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(l.out, "[%s] %s: %s\n", timestamp, level, fmt.Sprintf(format, args...))
}
