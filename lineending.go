package regionedit

// LineEnding specifies the line terminator style of a file.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns an escaped representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// DetectLineEnding sniffs the terminator of the first line of s.
// Files with mixed terminators are written back uniformly with the
// detected one; this matches the first terminator encountered. Content
// without any terminator defaults to LF.
func DetectLineEnding(s string) LineEnding {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			return LineEndingLF
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				return LineEndingCRLF
			}
			return LineEndingCR
		}
	}
	return LineEndingLF
}

// SplitLines splits s at every recognized line break (\n, \r\n, or \r),
// dropping the terminators. A trailing terminator does not produce an
// empty final line. An empty string yields no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// splitLinesKeep splits s after every line terminator, keeping the
// terminator on each line. Joining the result with "" reproduces s
// byte for byte, which is what preserves round-trip fidelity when a
// file is rebuilt around an unchanged region.
func splitLinesKeep(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i+1])
			start = i + 1
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			lines = append(lines, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
