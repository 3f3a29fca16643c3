package regionedit

import "regexp"

// Region describes a single editable region found in a file.
// StartLine and EndLine are 1-based and point at the marker lines
// themselves; the region's content is everything strictly between them.
//
// A Region is valid only for the scan that produced it. Engines never
// cache regions across calls: every operation re-scans the file, so a
// Region held across a mutation may point at stale line numbers.
type Region struct {
	Name      string `json:"name" yaml:"name"`
	StartLine int    `json:"start_line" yaml:"start_line"`
	EndLine   int    `json:"end_line" yaml:"end_line"`
}

// Markers holds the begin/end marker patterns the scanner recognizes.
// A marker must appear fully on one physical line to be recognized.
// The Begin pattern must contain exactly one capture group for the
// region name.
type Markers struct {
	Begin *regexp.Regexp
	End   *regexp.Regexp
}

// Default marker patterns, matching Dreamweaver-style template comments:
//
//	<!-- #BeginEditable "region-name" -->
//	...
//	<!-- #EndEditable -->
//
// Whitespace around the tokens is optional. The region name may contain
// any character except a double quote.
var (
	defaultBeginPattern = regexp.MustCompile(`<!--\s*#BeginEditable\s*"([^"]+)"\s*-->`)
	defaultEndPattern   = regexp.MustCompile(`<!--\s*#EndEditable\s*-->`)
)

// DefaultMarkers returns the default HTML-comment marker pair.
func DefaultMarkers() Markers {
	return Markers{
		Begin: defaultBeginPattern,
		End:   defaultEndPattern,
	}
}
