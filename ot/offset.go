package ot

import "fmt"

// Sub-structures of a table are linked by 16-bit offsets. An offset is always
// measured from the start of the structure containing it, so every level of
// nesting re-bases. A NULL offset means the sub-structure is absent.

// decodeContext is handed down the decoders of a table.
type decodeContext struct {
	conf   parseConfig
	ec     *errorCollector
	table  Tag
	origin uint32 // offset of the table within the font file, for diagnostics
}

func (ctx *decodeContext) warn(c *Cursor, issue string) {
	if ctx == nil {
		return
	}
	tracer().Infof("%s: %s", ctx.table, issue)
	ctx.ec.addWarning(ctx.table, issue, ctx.origin+uint32(c.Pos()))
}

// decoder decodes a structure starting at the base of c.
type decoder[T any] func(c *Cursor, ctx *decodeContext) (T, error)

// readOffset16 reads an offset field at the current position of c and decodes
// the linked structure, relative to c's base.
func readOffset16[T any](c *Cursor, ctx *decodeContext, name string, decode decoder[T]) (uint16, Option[T], error) {
	off, err := c.ReadU16()
	if err != nil {
		return 0, None[T](), fmt.Errorf("offset to %s: %w", name, err)
	}
	v, err := followOffset16(c, off, ctx, name, decode)
	return off, v, err
}

// followOffset16 decodes the structure linked by off, relative to c's base.
// A NULL offset yields None without any further read.
func followOffset16[T any](c *Cursor, off uint16, ctx *decodeContext, name string, decode decoder[T]) (Option[T], error) {
	if off == 0 {
		return None[T](), nil
	}
	sub, err := c.SubCursor(int(off))
	if err != nil {
		return None[T](), fmt.Errorf("%s: %w", name, err)
	}
	tracer().Debugf("decoding %s at %d = %d + %d", name, sub.Base(), c.Base(), off)
	v, err := decode(sub, ctx)
	if err != nil {
		return None[T](), fmt.Errorf("%s at %d: %w", name, sub.Base(), err)
	}
	return Some(v), nil
}

// readCount reads a uint16 count and checks that count records of recordSize
// bytes follow it.
func readCount(c *Cursor, name string, limit, recordSize int) (int, error) {
	n, err := c.ReadU16()
	if err != nil {
		return 0, fmt.Errorf("%s count: %w", name, err)
	}
	count := int(n)
	if err := checkCount(name, count, limit); err != nil {
		return 0, err
	}
	if err := c.need(count, recordSize); err != nil {
		return 0, fmt.Errorf("%s with %d records: %w", name, count, err)
	}
	return count, nil
}
