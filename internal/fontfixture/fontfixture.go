/*
Package fontfixture assembles font binaries for tests.

A Builder appends big-endian values and can patch 16-bit offsets after the
fact, which is how most sub-table graphs are easiest to write down:

	b := fontfixture.NewBuilder()
	b.U32(0x00010000)           // version
	at := b.Placeholder16()     // horizontal axis offset
	b.U16(0)                    // no vertical axis
	b.Patch16(at, b.Len())      // axis follows here
	...

Sfnt wraps a set of tables into a font file with a valid table directory.
*/
package fontfixture

import (
	"encoding/binary"
)

// Builder collects bytes of a font structure.
type Builder struct {
	buf []byte
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Bytes returns a copy of the bytes written so far.
func (b *Builder) Bytes() []byte {
	r := make([]byte, len(b.buf))
	copy(r, b.buf)
	return r
}

// U16 appends a uint16.
func (b *Builder) U16(v uint16) *Builder {
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
	return b
}

// I16 appends an int16.
func (b *Builder) I16(v int16) *Builder {
	return b.U16(uint16(v))
}

// U32 appends a uint32.
func (b *Builder) U32(v uint32) *Builder {
	b.buf = binary.BigEndian.AppendUint32(b.buf, v)
	return b
}

// Tag appends a 4-letter tag. Shorter tags are padded with spaces.
func (b *Builder) Tag(t string) *Builder {
	t = (t + "    ")[:4]
	b.buf = append(b.buf, t...)
	return b
}

// Raw appends bytes as they are.
func (b *Builder) Raw(p ...byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

// Zeros appends n zero bytes.
func (b *Builder) Zeros(n int) *Builder {
	b.buf = append(b.buf, make([]byte, n)...)
	return b
}

// Placeholder16 appends a zero uint16 and returns its position, for a later Patch16.
func (b *Builder) Placeholder16() int {
	at := len(b.buf)
	b.U16(0)
	return at
}

// Patch16 overwrites the uint16 at position at.
func (b *Builder) Patch16(at int, v int) *Builder {
	binary.BigEndian.PutUint16(b.buf[at:at+2], uint16(v))
	return b
}

// Patch32 overwrites the uint32 at position at.
func (b *Builder) Patch32(at int, v uint32) *Builder {
	binary.BigEndian.PutUint32(b.buf[at:at+4], v)
	return b
}

// --- sfnt ------------------------------------------------------------------

// Table is a font table to include into a font file.
type Table struct {
	Tag  string
	Data []byte
}

// TrueType is the sfnt version of fonts with TrueType outlines.
const TrueType uint32 = 0x00010000

// Sfnt creates a font file containing the given tables, in the given order.
// Table data is 4-byte aligned, checksums are computed, and searchRange,
// entrySelector and rangeShift are set as recommended.
func Sfnt(version uint32, tables ...Table) []byte {
	n := len(tables)
	b := NewBuilder()
	b.U32(version).U16(uint16(n))
	entrySelector, searchRange := 0, 1
	for searchRange*2 <= n {
		searchRange *= 2
		entrySelector++
	}
	searchRange *= 16
	if n == 0 {
		searchRange = 0
	}
	b.U16(uint16(searchRange)).U16(uint16(entrySelector)).U16(uint16(n*16 - searchRange))
	offset := 12 + 16*n
	for _, t := range tables {
		b.Tag(t.Tag).U32(checksum(t.Tag, t.Data)).U32(uint32(offset)).U32(uint32(len(t.Data)))
		offset += padded(len(t.Data))
	}
	for _, t := range tables {
		b.Raw(t.Data...)
		b.Zeros(padded(len(t.Data)) - len(t.Data))
	}
	return b.buf
}

func padded(n int) int {
	return (n + 3) &^ 3
}

// checksum sums the table's words. The checkSumAdjustment word of 'head'
// does not take part.
func checksum(tag string, data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var w [4]byte
		copy(w[:], data[i:])
		sum += binary.BigEndian.Uint32(w[:])
	}
	if tag == "head" && len(data) >= 12 {
		sum -= binary.BigEndian.Uint32(data[8:12])
	}
	return sum
}
