package regionedit

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
)

// Engine scans files for editable regions and mutates the content
// strictly inside them. It holds no state between calls other than
// configuration: every operation re-derives region positions from the
// file itself, so correctness is preserved even if the file changed
// between calls.
//
// Mutations hold a per-file lock (keyed by resolved absolute path) for
// the duration of their read-modify-write window, so an Engine shared
// by concurrent callers does not lose updates to the same file.
// Distinct Engine instances or processes still race.
type Engine struct {
	markers Markers
	logger  Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithMarkers sets a custom begin/end marker pair.
func WithMarkers(m Markers) Option {
	return func(e *Engine) { e.markers = m }
}

// WithLogger sets the logging collaborator. Defaults to NopLogger.
func WithLogger(l Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an Engine with the default HTML-comment markers.
func New(opts ...Option) *Engine {
	e := &Engine{
		markers: DefaultMarkers(),
		logger:  NopLogger(),
		locks:   make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// pathLock returns the mutex guarding the file at path.
func (e *Engine) pathLock(path string) *sync.Mutex {
	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[key] = lock
	}
	return lock
}

// Find resolves a region by exact, case-sensitive name. Name collisions
// resolve to the first region in document order. A structural scan
// failure is downgraded here: it has already been logged by Regions and
// reports as not found, so composite read/write operations degrade
// gracefully while direct Regions calls still surface the error. I/O
// failures other than a missing file are not downgraded; they are
// returned so callers never mistake an unreadable file for a missing
// region.
func (e *Engine) Find(path, name string) (Region, bool, error) {
	regions, err := e.Regions(path)
	if err != nil {
		if isStructural(err) {
			return Region{}, false, nil
		}
		return Region{}, false, err
	}
	for _, r := range regions {
		if r.Name == name {
			return r, true, nil
		}
	}
	e.logger.Errorf("region %q not found in file %q", name, path)
	return Region{}, false, nil
}

// Read returns the content of the named region: every line strictly
// between the marker lines, each retaining the terminator it had in the
// source file. An empty region yields "". A missing file, missing
// region, or structurally invalid file reports found=false with a nil
// error; only I/O failures return an error.
func (e *Engine) Read(path, name string) (content string, found bool, err error) {
	lock := e.pathLock(path)
	lock.Lock()
	defer lock.Unlock()
	return e.read(path, name)
}

func (e *Engine) read(path, name string) (string, bool, error) {
	region, ok, err := e.Find(path, name)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}

	text, err := e.readFile(path)
	if err != nil {
		e.logger.Errorf("error reading region %q from file %s: %v", name, path, err)
		return "", false, err
	}
	lines := splitLinesKeep(text)

	// Content spans the lines after the begin marker up to, but not
	// including, the end marker line.
	start := region.StartLine
	end := region.EndLine - 1
	if start >= end || start >= len(lines) {
		return "", true, nil
	}
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], ""), true, nil
}

// Write replaces the whole content of the named region. The supplied
// content is split on any recognized line break and every resulting
// line is re-terminated with the file's detected line ending, so mixed
// or foreign terminators are normalized to match the target file. The
// marker lines themselves are never altered.
//
// Returns false with a nil error if the file or region is not found;
// I/O failures are logged and returned.
func (e *Engine) Write(path, name, content string) (bool, error) {
	lock := e.pathLock(path)
	lock.Lock()
	defer lock.Unlock()
	return e.write(path, name, content)
}

func (e *Engine) write(path, name, content string) (bool, error) {
	rebuilt, ok, err := e.rebuild(path, name, content)
	if err != nil {
		e.logger.Errorf("error writing region %q to file %s: %v", name, path, err)
		return false, err
	}
	if !ok {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(rebuilt), 0o644); err != nil {
		e.logger.Errorf("error writing region %q to file %s: %v", name, path, err)
		return false, err
	}
	e.logger.Infof("successfully updated region %q in file %q", name, path)
	return true, nil
}

// rebuild computes the full file content with the named region's
// content replaced. Reports ok=false if the region cannot be resolved.
func (e *Engine) rebuild(path, name, content string) (rebuilt string, ok bool, err error) {
	region, found, err := e.Find(path, name)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}

	text, err := e.readFile(path)
	if err != nil {
		return "", false, err
	}
	lines := splitLinesKeep(text)
	ending := DetectLineEnding(text)

	newLines := SplitLines(content)
	var b strings.Builder
	// Everything up to and including the begin marker line.
	for _, line := range lines[:region.StartLine] {
		b.WriteString(line)
	}
	for _, line := range newLines {
		b.WriteString(line)
		b.WriteString(ending.Sequence())
	}
	// The end marker line and everything after it.
	for _, line := range lines[region.EndLine-1:] {
		b.WriteString(line)
	}
	return b.String(), true, nil
}

// ReplaceText replaces occurrences of old with new inside the named
// region, left to right, capped at max occurrences. A negative max
// means unlimited. When old does not occur the operation succeeds
// without touching the file: an absent search text is a no-op, not an
// error.
func (e *Engine) ReplaceText(path, name, old, new string, max int) (bool, error) {
	lock := e.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	content, ok, err := e.read(path, name)
	if err != nil || !ok {
		return false, err
	}

	replaced := strings.Replace(content, old, new, max)
	if replaced == content {
		e.logger.Infof("text %q not found in region %q of file %q; nothing to replace", old, name, path)
		return true, nil
	}
	return e.write(path, name, replaced)
}

// DeleteText removes the first occurrence of text from the named
// region. Deleting is replacing with the empty string, capped at one
// occurrence; later occurrences are left untouched.
func (e *Engine) DeleteText(path, name, text string) (bool, error) {
	return e.ReplaceText(path, name, text, "", 1)
}

// InsertBefore inserts text immediately before the first occurrence of
// anchor inside the named region. An absent anchor reports false with a
// nil error.
func (e *Engine) InsertBefore(path, name, anchor, text string) (bool, error) {
	return e.insert(path, name, anchor, text, false)
}

// InsertAfter inserts text immediately after the first occurrence of
// anchor inside the named region.
func (e *Engine) InsertAfter(path, name, anchor, text string) (bool, error) {
	return e.insert(path, name, anchor, text, true)
}

func (e *Engine) insert(path, name, anchor, text string, after bool) (bool, error) {
	lock := e.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	content, ok, err := e.read(path, name)
	if err != nil || !ok {
		return false, err
	}

	idx := strings.Index(content, anchor)
	if idx < 0 {
		e.logger.Errorf("anchor text %q not found in region %q of file %q", anchor, name, path)
		return false, nil
	}
	pos := idx
	if after {
		pos = idx + len(anchor)
	}
	return e.write(path, name, content[:pos]+text+content[pos:])
}

// PreviewWrite returns a unified diff of what Write(path, name,
// content) would change, without writing anything. Reports found=false
// if the file or region cannot be resolved.
func (e *Engine) PreviewWrite(path, name, content string) (diff string, found bool, err error) {
	lock := e.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	original, err := e.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.logger.Errorf("file not found: %s", path)
			return "", false, nil
		}
		e.logger.Errorf("error reading file %s: %v", path, err)
		return "", false, err
	}

	rebuilt, ok, err := e.rebuild(path, name, content)
	if err != nil {
		e.logger.Errorf("error previewing region %q in file %s: %v", name, path, err)
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}

	diff, err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(rebuilt),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	})
	if err != nil {
		return "", false, err
	}
	return diff, true, nil
}
