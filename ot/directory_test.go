package ot

import (
	"testing"

	"github.com/npillmayer/otbase/internal/fontfixture"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTableDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	font := fontfixture.Sfnt(fontfixture.TrueType,
		fontfixture.Table{Tag: "cmap", Data: make([]byte, 10)},
		fontfixture.Table{Tag: "BASE", Data: make([]byte, 8)},
		fontfixture.Table{Tag: "head", Data: make([]byte, 54)},
	)
	td, err := ParseTableDirectory(NewCursor(font))
	require.NoError(t, err)
	assert.Equal(t, SfntTrueType, td.Version)
	assert.Equal(t, uint16(3), td.NumTables)
	assert.Equal(t, uint16(32), td.SearchRange)
	assert.Equal(t, uint16(1), td.EntrySelector)
	assert.Equal(t, uint16(16), td.RangeShift)
	assert.Equal(t, 3, td.Len())
	assert.Equal(t, []Tag{T("cmap"), T("BASE"), T("head")}, td.Tags(), "entries must stay in file order")
	//
	e, err := td.Entry(1)
	require.NoError(t, err)
	assert.Equal(t, T("BASE"), e.Tag)
	assert.Equal(t, uint32(12+3*16+12), e.Offset, "cmap is padded to 12 bytes")
	assert.Equal(t, uint32(8), e.Length)
	assert.NoError(t, td.Validate(len(font)))
	t.Logf("\n%s", td)
}

func TestDirectoryEntryIndex(t *testing.T) {
	font := fontfixture.Sfnt(fontfixture.TrueType, fontfixture.Table{Tag: "BASE", Data: make([]byte, 8)})
	td, err := ParseTableDirectory(NewCursor(font))
	require.NoError(t, err)
	_, err = td.Entry(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = td.Entry(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = td.Entry(0)
	assert.NoError(t, err)
}

func TestDirectoryEntryByTag(t *testing.T) {
	font := fontfixture.Sfnt(fontfixture.TrueType,
		fontfixture.Table{Tag: "BASE", Data: make([]byte, 8)},
		fontfixture.Table{Tag: "BASE", Data: make([]byte, 4)},
	)
	td, err := ParseTableDirectory(NewCursor(font))
	require.NoError(t, err)
	e, ok := td.EntryByTag(BASE)
	require.True(t, ok)
	assert.Equal(t, uint32(8), e.Length, "the first matching entry wins")
	_, ok = td.EntryByTag(T("GSUB"))
	assert.False(t, ok, "a missing table is reported as not found")
}

func TestDirectoryTruncated(t *testing.T) {
	font := fontfixture.Sfnt(fontfixture.TrueType,
		fontfixture.Table{Tag: "BASE", Data: make([]byte, 8)},
		fontfixture.Table{Tag: "head", Data: make([]byte, 54)},
	)
	for n := 0; n < 12+2*16; n++ {
		_, err := ParseTableDirectory(NewCursor(font[:n]))
		assert.ErrorIs(t, err, ErrOutOfBounds, "directory truncated to %d bytes", n)
	}
}

func TestDirectoryHugeCount(t *testing.T) {
	b := fontfixture.NewBuilder().U32(0x00010000).U16(0xffff).U16(0).U16(0).U16(0)
	b.Zeros(32)
	_, err := ParseTableDirectory(NewCursor(b.Bytes()))
	assert.ErrorIs(t, err, ErrOutOfBounds, "count must be checked before allocating")
}

func TestDirectoryEmpty(t *testing.T) {
	font := fontfixture.Sfnt(fontfixture.TrueType)
	td, err := ParseTableDirectory(NewCursor(font))
	require.NoError(t, err)
	assert.Equal(t, 0, td.Len())
	_, err = td.Entry(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDirectoryValidate(t *testing.T) {
	b := fontfixture.NewBuilder().U32(0x00010000).U16(1).U16(16).U16(0).U16(0)
	b.Tag("BASE").U32(0).U32(28).U32(20)
	b.Zeros(10)
	td, err := ParseTableDirectory(NewCursor(b.Bytes()))
	require.NoError(t, err)
	assert.ErrorIs(t, td.Validate(b.Len()), ErrOutOfBounds, "table at 28+20 exceeds 38 bytes")
	assert.NoError(t, td.Validate(48))
	//
	b = fontfixture.NewBuilder().U32(0x00010000).U16(1).U16(16).U16(0).U16(0)
	b.Tag("BASE").U32(0).U32(0xfffffff0).U32(0x20)
	td, err = ParseTableDirectory(NewCursor(b.Bytes()))
	require.NoError(t, err)
	_, ok := td.entries[0].End()
	assert.False(t, ok, "offset+length overflows")
	assert.ErrorIs(t, td.Validate(1<<30), ErrOutOfBounds)
}

func TestSfntVersion(t *testing.T) {
	assert.Equal(t, "TrueType", SfntTrueType.String())
	assert.Equal(t, "CFF", SfntCFF.String())
	assert.Equal(t, "true", SfntApple.String())
	assert.Equal(t, "typ1", SfntType1.String())
	assert.True(t, SfntCFF.IsKnown())
	assert.False(t, SfntVersion(0x774f4646).IsKnown()) // wOFF
	assert.Equal(t, "0x774f4646", SfntVersion(0x774f4646).String())
}

func TestDirectoryEntryString(t *testing.T) {
	e := DirectoryEntry{Tag: BASE, Checksum: 0xab, Offset: 0x1c, Length: 20}
	assert.Equal(t, "'BASE' - chksm = 0xab, off = 0x1c, len = 20", e.String())
}
