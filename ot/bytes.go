package ot

import (
	"fmt"
)

// Reading bytes from a font's binary representation

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// binarySegm is a segment of byte data.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset > len(b) || n > len(b)-offset {
		return nil, errBounds(offset, n, len(b))
	}
	return b[offset : offset+n], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// u32 returns the uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

func errBounds(offset, n, size int) error {
	return fmt.Errorf("%w: %d bytes at offset %d, region has %d", ErrOutOfBounds, n, offset, size)
}

// --- Cursor ----------------------------------------------------------------

// Cursor is a bounds-checked big-endian reader over a fixed byte region.
//
// A cursor has a base, which is the start of the structure it is reading,
// and a current absolute position within the region. Offsets found inside a
// structure are relative to the structure's base; SubCursor re-bases a new
// cursor at such an offset without moving the parent.
//
// Reads never go past the region. A failed read leaves the position unchanged.
type Cursor struct {
	data binarySegm
	base int
	pos  int
}

// NewCursor creates a cursor at position 0 of b. The cursor does not copy b,
// clients must not modify b while the cursor is in use.
func NewCursor(b []byte) *Cursor {
	return &Cursor{data: b}
}

// Len is the size of the whole region in bytes.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Pos is the current absolute position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Base is the absolute start position of the structure this cursor reads.
func (c *Cursor) Base() int {
	return c.base
}

// Remaining returns the number of bytes between the current position and the
// end of the region.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Seek moves the cursor to an absolute position within [0, Len).
func (c *Cursor) Seek(offset int) error {
	if offset < 0 || offset >= len(c.data) {
		return fmt.Errorf("%w: seek to %d, region has %d", ErrOutOfBounds, offset, len(c.data))
	}
	c.pos = offset
	return nil
}

// SubCursor returns a new cursor rooted at Base()+offset. The parent cursor
// is not moved.
func (c *Cursor) SubCursor(offset int) (*Cursor, error) {
	start := c.base + offset
	if offset < 0 || start >= len(c.data) {
		return nil, fmt.Errorf("%w: sub-structure at %d+%d, region has %d",
			ErrOutOfBounds, c.base, offset, len(c.data))
	}
	return &Cursor{data: c.data, base: start, pos: start}, nil
}

// here returns a cursor based at the current position of c.
func (c *Cursor) here() *Cursor {
	return &Cursor{data: c.data, base: c.pos, pos: c.pos}
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	if _, err := c.read(n); err != nil {
		return err
	}
	return nil
}

func (c *Cursor) read(n int) (binarySegm, error) {
	b, err := c.data.view(c.pos, n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// ReadBytes returns a view of the next n bytes. The view shares memory with
// the cursor's region.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.read(n)
	return b, err
}

// ReadU8 reads an unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a big-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.read(2)
	if err != nil {
		return 0, err
	}
	return u16(b), nil
}

// ReadI16 reads a big-endian int16.
func (c *Cursor) ReadI16() (int16, error) {
	n, err := c.ReadU16()
	return int16(n), err
}

// ReadU32 reads a big-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.read(4)
	if err != nil {
		return 0, err
	}
	return u32(b), nil
}

// ReadI32 reads a big-endian int32.
func (c *Cursor) ReadI32() (int32, error) {
	n, err := c.ReadU32()
	return int32(n), err
}

// ReadTag reads a 4-byte tag.
func (c *Cursor) ReadTag() (Tag, error) {
	n, err := c.ReadU32()
	return Tag(n), err
}

// need checks that count records of recordSize bytes are available at the
// current position, before anything gets allocated for them.
func (c *Cursor) need(count, recordSize int) error {
	size, err := checkedMulInt(count, recordSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, err)
	}
	if size > c.Remaining() {
		return errBounds(c.pos, size, len(c.data))
	}
	return nil
}
