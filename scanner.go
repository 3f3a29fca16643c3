package regionedit

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// Regions scans the file at path and returns every editable region in
// document order. Line numbers are 1-based. A missing file is not an
// error: it yields an empty list and a logged error, so callers probing
// for regions do not have to special-case absent files.
//
// Structural violations of the begin/end pairing invariant surface as
// *NestedRegionError, *MismatchedMarkerError, or *UnterminatedRegionError.
// I/O failures are logged and returned as-is.
func (e *Engine) Regions(path string) ([]Region, error) {
	text, err := e.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.logger.Errorf("file not found: %s", path)
			return []Region{}, nil
		}
		e.logger.Errorf("error reading file %s: %v", path, err)
		return nil, err
	}

	regions, err := e.scanLines(splitLinesKeep(text))
	if err != nil {
		e.logger.Errorf("error processing file %s: %v", path, err)
		return nil, err
	}

	e.logger.Infof("found %d regions in %s", len(regions), path)
	return regions, nil
}

// scanLines runs the marker state machine over keepends lines.
// At most one region is open at any position. The begin pattern is
// checked before the end pattern on every line, so a line somehow
// matching both is treated as a begin marker.
//
// The returned slice is never nil: a file with no regions yields the
// same empty-list shape as a missing file.
func (e *Engine) scanLines(lines []string) ([]Region, error) {
	regions := []Region{}
	var openName string
	openLine := 0
	open := false

	for i, line := range lines {
		num := i + 1
		if m := e.markers.Begin.FindStringSubmatch(line); m != nil {
			if open {
				return nil, &NestedRegionError{Name: m[1], OpenName: openName, Line: num}
			}
			open = true
			openName = m[1]
			openLine = num
			e.logger.Infof("found start of region %q at line %d", openName, num)
			continue
		}
		if e.markers.End.MatchString(line) {
			if !open {
				return nil, &MismatchedMarkerError{Line: num}
			}
			e.logger.Infof("found end of region %q at line %d", openName, num)
			regions = append(regions, Region{
				Name:      openName,
				StartLine: openLine,
				EndLine:   num,
			})
			open = false
		}
	}

	if open {
		return nil, &UnterminatedRegionError{Name: openName, StartLine: openLine}
	}
	return regions, nil
}

// readFile reads the whole file as UTF-8, replacing invalid byte
// sequences rather than rejecting them. Decoding never fails.
func (e *Engine) readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
}
