package ot

import (
	"fmt"
	"strings"
)

// SfntVersion is the font type found at the start of a table directory.
//
// OpenType fonts that contain TrueType outlines should use the value of 0x00010000
// for the FontType. OpenType fonts containing CFF data (version 1 or 2) should
// use 0x4F54544F ('OTTO', when re-interpreted as a Tag).
// The Apple specification for TrueType fonts allows for 'true' and 'typ1',
// but these version tags should not be used for OpenType fonts.
type SfntVersion uint32

// Known sfnt flavours.
const (
	SfntTrueType SfntVersion = 0x00010000
	SfntCFF      SfntVersion = 0x4f54544f // OTTO
	SfntApple    SfntVersion = 0x74727565 // true
	SfntType1    SfntVersion = 0x74797031 // typ1
)

// IsKnown reports whether v is one of the known sfnt flavours.
func (v SfntVersion) IsKnown() bool {
	switch v {
	case SfntTrueType, SfntCFF, SfntApple, SfntType1:
		return true
	}
	return false
}

func (v SfntVersion) String() string {
	switch v {
	case SfntTrueType:
		return "TrueType"
	case SfntCFF:
		return "CFF"
	case SfntApple, SfntType1:
		return Tag(v).String()
	}
	return fmt.Sprintf("0x%08x", uint32(v))
}

// DirectoryEntry is a table record of the table directory. Offset and length
// are absolute byte positions into the whole font file.
type DirectoryEntry struct {
	Tag      Tag
	Checksum uint32
	Offset   uint32
	Length   uint32
}

func (e DirectoryEntry) String() string {
	return fmt.Sprintf("'%s' - chksm = 0x%x, off = 0x%x, len = %d", e.Tag, e.Checksum, e.Offset, e.Length)
}

// End returns the first byte position after the table. It reports false if
// offset + length overflows.
func (e DirectoryEntry) End() (uint32, bool) {
	end, err := checkedAddUint32(e.Offset, e.Length)
	return end, err == nil
}

// TableDirectory is a directory of the top-level tables in a font. If the font file
// contains only one font, the table directory will begin at byte 0 of the file.
//
// Entries are kept in file order. SearchRange, EntrySelector and RangeShift are
// kept as found, lookup does not depend on them.
type TableDirectory struct {
	Version       SfntVersion
	NumTables     uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
	entries       []DirectoryEntry
}

const (
	directoryHeaderSize = 12
	directoryEntrySize  = 16
)

// ParseTableDirectory reads a table directory at the current position of c.
// Exactly NumTables entries are read, in file order.
func ParseTableDirectory(c *Cursor) (*TableDirectory, error) {
	if err := c.need(1, directoryHeaderSize); err != nil {
		return nil, fmt.Errorf("table directory header: %w", err)
	}
	td := &TableDirectory{}
	v, _ := c.ReadU32()
	td.Version = SfntVersion(v)
	td.NumTables, _ = c.ReadU16()
	td.SearchRange, _ = c.ReadU16()
	td.EntrySelector, _ = c.ReadU16()
	td.RangeShift, _ = c.ReadU16()
	tracer().Debugf("table directory: version = %s, %d tables", td.Version, td.NumTables)
	// "The Offset Table is followed immediately by the Table Record entries", 16 bytes each.
	if err := c.need(int(td.NumTables), directoryEntrySize); err != nil {
		return nil, fmt.Errorf("table directory with %d entries: %w", td.NumTables, err)
	}
	td.entries = make([]DirectoryEntry, td.NumTables)
	for i := range td.entries {
		e := &td.entries[i]
		e.Tag, _ = c.ReadTag()
		e.Checksum, _ = c.ReadU32()
		e.Offset, _ = c.ReadU32()
		e.Length, _ = c.ReadU32()
	}
	return td, nil
}

// Len returns the number of entries.
func (td *TableDirectory) Len() int {
	if td == nil {
		return 0
	}
	return len(td.entries)
}

// Entry returns directory entry #i.
func (td *TableDirectory) Entry(i int) (DirectoryEntry, error) {
	if i < 0 || i >= td.Len() {
		return DirectoryEntry{}, fmt.Errorf("%w: entry %d of %d", ErrIndexOutOfRange, i, td.Len())
	}
	return td.entries[i], nil
}

// EntryByTag returns the first entry with the given tag. A missing table is
// not an error, in this case false is returned.
func (td *TableDirectory) EntryByTag(tag Tag) (DirectoryEntry, bool) {
	for i := 0; i < td.Len(); i++ {
		if td.entries[i].Tag == tag {
			return td.entries[i], true
		}
	}
	return DirectoryEntry{}, false
}

// Entries returns a copy of all entries in file order.
func (td *TableDirectory) Entries() []DirectoryEntry {
	if td == nil {
		return nil
	}
	r := make([]DirectoryEntry, len(td.entries))
	copy(r, td.entries)
	return r
}

// Tags returns the table tags in file order.
func (td *TableDirectory) Tags() []Tag {
	tags := make([]Tag, 0, td.Len())
	for i := 0; i < td.Len(); i++ {
		tags = append(tags, td.entries[i].Tag)
	}
	return tags
}

// Validate checks that every table lies within a font file of the given length.
func (td *TableDirectory) Validate(fileLength int) error {
	for i := 0; i < td.Len(); i++ {
		e := td.entries[i]
		end, ok := e.End()
		if !ok || int64(end) > int64(fileLength) {
			return fmt.Errorf("%w: table '%s' at [%d:%d+%d] exceeds font size %d",
				ErrOutOfBounds, e.Tag, e.Offset, e.Offset, e.Length, fileLength)
		}
	}
	return nil
}

func (td *TableDirectory) String() string {
	var sb strings.Builder
	sb.WriteString("Offset Table\n------ -----")
	fmt.Fprintf(&sb, "\n  sfnt version:     %s", td.Version)
	fmt.Fprintf(&sb, "\n  numTables =       %d", td.NumTables)
	fmt.Fprintf(&sb, "\n  searchRange =     %d", td.SearchRange)
	fmt.Fprintf(&sb, "\n  entrySelector =   %d", td.EntrySelector)
	fmt.Fprintf(&sb, "\n  rangeShift =      %d", td.RangeShift)
	sb.WriteString("\n\n")
	for i, e := range td.entries {
		fmt.Fprintf(&sb, "%d. %s\n", i, e)
	}
	return sb.String()
}
