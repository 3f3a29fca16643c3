package regionedit

import (
	"errors"
	"fmt"
)

// Structural marker errors are raised by Regions when the begin/end
// pairing invariant is violated. Lines that merely fail to match either
// marker pattern are inert and never an error.
//
// Composite operations (Read, Write, the text mutations) never surface
// these errors to the caller; they downgrade them to a logged error and
// a not-found result. Use errors.As against the concrete types when
// calling Regions directly.

// NestedRegionError reports a begin marker encountered while another
// region is still open. Regions never nest.
type NestedRegionError struct {
	Name     string // name on the offending begin marker
	OpenName string // region that was already open
	Line     int    // 1-based line of the offending marker
}

func (e *NestedRegionError) Error() string {
	return fmt.Sprintf(
		"nested region: found begin marker for %q inside region %q at line %d",
		e.Name, e.OpenName, e.Line)
}

// MismatchedMarkerError reports an end marker with no open region.
type MismatchedMarkerError struct {
	Line int // 1-based line of the stray end marker
}

func (e *MismatchedMarkerError) Error() string {
	return fmt.Sprintf(
		"mismatched marker: end marker without a matching begin marker at line %d",
		e.Line)
}

// UnterminatedRegionError reports a file ending inside an open region.
type UnterminatedRegionError struct {
	Name      string // region still open at end of file
	StartLine int    // 1-based line of its begin marker
}

func (e *UnterminatedRegionError) Error() string {
	return fmt.Sprintf(
		"unterminated region: reached end of file inside region %q opened at line %d",
		e.Name, e.StartLine)
}

// isStructural reports whether err is one of the marker pairing errors,
// as opposed to an I/O failure.
func isStructural(err error) bool {
	var nested *NestedRegionError
	var mismatched *MismatchedMarkerError
	var unterminated *UnterminatedRegionError
	return errors.As(err, &nested) ||
		errors.As(err, &mismatched) ||
		errors.As(err, &unterminated)
}
