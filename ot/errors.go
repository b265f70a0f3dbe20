package ot

import (
	"errors"
	"fmt"
)

// Error kinds returned by the decoders. Clients should test for them with
// errors.Is, as they are usually wrapped in a FontError or carry additional
// context.
var (
	// ErrOutOfBounds is reported when a read or seek would leave the current region.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrIndexOutOfRange is reported for a directory index beyond the table count.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownVariant is reported for a format selector with no known layout.
	ErrUnknownVariant = errors.New("unknown format variant")
	// ErrLimitExceeded is reported for counts beyond the sanity limits of this package.
	ErrLimitExceeded = errors.New("count exceeds limit")
	// ErrTableTooLarge is reported for tables larger than the configured maximum size.
	ErrTableTooLarge = errors.New("table too large")
	// ErrChecksum is reported for a table whose bytes do not sum to the stored checksum.
	ErrChecksum = errors.New("checksum mismatch")
	// ErrFontFormat is reported for fonts which are not sfnt fonts at all.
	ErrFontFormat = errors.New("OpenType font format")
)

// ErrorSeverity grades a FontError by what remains usable of the font.
type ErrorSeverity int

const (
	SeverityCritical ErrorSeverity = iota // font is unusable
	SeverityMajor                         // a table is unavailable, the font is not
	SeverityMinor                         // may be ignored
)

var severityNames = [...]string{"critical", "major", "minor"}

func (s ErrorSeverity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// FontError describes why a table, or the font as a whole, could not be
// decoded. It wraps one of the Err… kinds, if known.
type FontError struct {
	Table    Tag    // 0 for the table directory
	Section  string // structure within the table, e.g. "BaseScriptList"
	Issue    string
	Severity ErrorSeverity
	Offset   uint32 // position in the font file, 0 if unknown
	Err      error
}

func (e FontError) Error() string {
	where := "directory"
	if e.Table != 0 {
		where = "'" + e.Table.String() + "'"
	}
	if e.Section != "" {
		where += "/" + e.Section
	}
	if e.Offset > 0 {
		where += fmt.Sprintf(" @0x%x", e.Offset)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Severity, where, e.Issue)
}

func (e FontError) Unwrap() error {
	return e.Err
}

// FontWarning is a finding which does not stop decoding, e.g. a BaseCoord
// with an unknown format in lenient mode.
type FontWarning struct {
	Table  Tag
	Issue  string
	Offset uint32 // position in the font file, 0 if unknown
}

func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("warning '%s' @0x%x: %s", w.Table, w.Offset, w.Issue)
	}
	return fmt.Sprintf("warning '%s': %s", w.Table, w.Issue)
}

// errorCollector gathers the findings of a parse run. A nil collector
// discards them.
type errorCollector struct {
	errors   []FontError
	warnings []FontWarning
}

func (ec *errorCollector) addError(table Tag, section string, err error, severity ErrorSeverity, offset uint32) {
	if ec == nil {
		return
	}
	ec.errors = append(ec.errors, FontError{
		Table:    table,
		Section:  section,
		Issue:    err.Error(),
		Severity: severity,
		Offset:   offset,
		Err:      err,
	})
}

func (ec *errorCollector) addWarning(table Tag, issue string, offset uint32) {
	if ec == nil {
		return
	}
	ec.warnings = append(ec.warnings, FontWarning{Table: table, Issue: issue, Offset: offset})
}
