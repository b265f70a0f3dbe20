package ot

import (
	"fmt"
)

// Font represents the structure of an sfnt font, as far as this package
// decodes it: the table directory and the tables it interprets.
//
// A Font does not hold on to the font's bytes. Clients needing to look at raw
// table data keep the bytes themselves and use the directory entries.
type Font struct {
	Directory     *TableDirectory
	Base          *BaseTable    // BASE table, nil if missing or not decodable
	parseErrors   []FontError   // Errors accumulated during parsing
	parseWarnings []FontWarning // Warnings accumulated during parsing
}

// Parse parses an sfnt font from a byte slice.
//
// A malformed table directory makes the font unusable and an error is returned.
// A table which cannot be decoded is reported in Errors() and is unavailable
// in the Font, but does not make Parse fail.
func Parse(font []byte, opts ...ParseOption) (*Font, error) {
	conf := makeConfig(opts)
	ec := &errorCollector{}
	c := NewCursor(font)
	td, err := ParseTableDirectory(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontFormat, err)
	}
	tracer().Debugf("header = %s, %d tables", td.Version, td.NumTables)
	if !td.Version.IsKnown() {
		ec.addWarning(0, fmt.Sprintf("font type not supported: %s", td.Version), 0)
	}
	if err := td.Validate(len(font)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontFormat, err)
	}
	otf := &Font{Directory: td}
	if conf.verifyChecksum {
		for _, e := range td.entries {
			if err := VerifyChecksum(font, e); err != nil {
				ec.addWarning(e.Tag, err.Error(), e.Offset)
			}
		}
	}
	if e, ok := td.EntryByTag(BASE); ok {
		otf.Base = parseBaseEntry(font, e, conf, ec)
	}
	otf.parseErrors = ec.errors
	otf.parseWarnings = ec.warnings
	return otf, nil
}

// parseBaseEntry decodes table BASE. A failure is recorded and leaves the
// table unavailable.
func parseBaseEntry(font []byte, e DirectoryEntry, conf parseConfig, ec *errorCollector) *BaseTable {
	c := NewCursor(font)
	if err := c.Seek(int(e.Offset)); err != nil {
		ec.addError(e.Tag, "Offset", err, SeverityMajor, e.Offset)
		return nil
	}
	ctx := &decodeContext{conf: conf, ec: ec, table: e.Tag, origin: e.Offset}
	base, err := parseBase(c, int(e.Length), ctx)
	if err != nil {
		tracer().Errorf("error parsing BASE table: %v", err)
		ec.addError(e.Tag, "BASE", err, SeverityMajor, e.Offset)
		return nil
	}
	return base
}

// Table returns the directory entry for a given tag. A missing table is not
// an error, Table reports false in this case.
func (otf *Font) Table(tag Tag) (DirectoryEntry, bool) {
	if otf == nil {
		return DirectoryEntry{}, false
	}
	return otf.Directory.EntryByTag(tag)
}

// TableTags returns a list of tags, one for each table contained in the font,
// in directory order.
func (otf *Font) TableTags() []Tag {
	if otf == nil {
		return nil
	}
	return otf.Directory.Tags()
}

// Errors returns all errors encountered during font parsing.
// These errors represent issues that were found but did not prevent parsing from completing.
func (otf *Font) Errors() []FontError {
	if otf == nil || otf.parseErrors == nil {
		return []FontError{}
	}
	return otf.parseErrors
}

// Warnings returns all warnings encountered during font parsing.
// Warnings indicate potential issues that are generally safe to ignore.
func (otf *Font) Warnings() []FontWarning {
	if otf == nil || otf.parseWarnings == nil {
		return []FontWarning{}
	}
	return otf.parseWarnings
}

// TableError returns the error which made a table unavailable, if any.
func (otf *Font) TableError(tag Tag) error {
	for _, err := range otf.Errors() {
		if err.Table == tag {
			return err
		}
	}
	return nil
}
