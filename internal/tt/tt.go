// Package tt provides shared test helpers: a recording logger, temp
// file helpers, and diff-based text assertions.
package tt

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// RecordingLogger captures Infof/Errorf messages for assertions.
// Safe for concurrent use.
type RecordingLogger struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

// Infof records an informational message.
func (l *RecordingLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

// Errorf records an error message.
func (l *RecordingLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// Infos returns a copy of the recorded informational messages.
func (l *RecordingLogger) Infos() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.infos...)
}

// Errors returns a copy of the recorded error messages.
func (l *RecordingLogger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.errors...)
}

// WriteFile creates a file with the given content in a test temp
// directory and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// ReadFile reads the file back as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read test file: %v", err)
	}
	return string(data)
}

// AssertTextEqual fails the test with a unified diff when actual does
// not equal expected.
func AssertTextEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if expected == actual {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("text mismatch (diff failed: %v)\nexpected: %q\nactual:   %q", err, expected, actual)
	}
	t.Errorf("text mismatch:\n%s", diff)
}
