package ot

import "fmt"

// --- BaseCoord -------------------------------------------------------------

// BaseCoord describes a baseline coordinate in design units. It is a tagged
// union over three formats:
//
//	Format 1: Coordinate
//	Format 2: Coordinate, ReferenceGlyph, BaseCoordPoint
//	Format 3: Coordinate, DeviceOffset (and the linked Device table)
//
// Fields not belonging to Format are zero.
type BaseCoord struct {
	Format         uint16
	Coordinate     int16               // X or Y value, in design units
	ReferenceGlyph GlyphIndex          // format 2: glyph ID of control glyph
	BaseCoordPoint uint16              // format 2: index of contour point on the reference glyph
	DeviceOffset   uint16              // format 3: offset to Device table, from beginning of BaseCoord
	Device         Option[DeviceTable] // format 3: Device or VariationIndex table
}

type baseCoordDecoder func(c *Cursor, coord *Cursor, ctx *decodeContext, bc *BaseCoord) error

// baseCoordFormats maps a format selector to the decoder of its layout.
var baseCoordFormats = [...]baseCoordDecoder{
	1: decodeBaseCoordFormat1,
	2: decodeBaseCoordFormat2,
	3: decodeBaseCoordFormat3,
}

// readBaseCoord reads a format selector at the current position of c,
// followed by the variant's fields. For unknown formats, only the selector
// is consumed.
func readBaseCoord(c *Cursor, ctx *decodeContext) (Option[BaseCoord], error) {
	coord := c.here()
	format, err := c.ReadU16()
	if err != nil {
		return None[BaseCoord](), fmt.Errorf("BaseCoord format: %w", err)
	}
	var decode baseCoordDecoder
	if int(format) < len(baseCoordFormats) {
		decode = baseCoordFormats[format]
	}
	if decode == nil {
		if ctx != nil && ctx.conf.strictCoords {
			return None[BaseCoord](), fmt.Errorf("%w: BaseCoord format %d at %d", ErrUnknownVariant, format, coord.Base())
		}
		ctx.warn(coord, fmt.Sprintf("BaseCoord format %d not recognized, coordinate dropped", format))
		return None[BaseCoord](), nil
	}
	bc := BaseCoord{Format: format}
	if err := decode(c, coord, ctx, &bc); err != nil {
		return None[BaseCoord](), fmt.Errorf("BaseCoord format %d: %w", format, err)
	}
	return Some(bc), nil
}

// followBaseCoord decodes the BaseCoord table linked by off, relative to c's base.
func followBaseCoord(c *Cursor, off uint16, ctx *decodeContext) (Option[BaseCoord], error) {
	if off == 0 {
		return None[BaseCoord](), nil
	}
	sub, err := c.SubCursor(int(off))
	if err != nil {
		return None[BaseCoord](), fmt.Errorf("BaseCoord: %w", err)
	}
	return readBaseCoord(sub, ctx)
}

func decodeBaseCoordFormat1(c *Cursor, _ *Cursor, _ *decodeContext, bc *BaseCoord) (err error) {
	bc.Coordinate, err = c.ReadI16()
	return
}

func decodeBaseCoordFormat2(c *Cursor, _ *Cursor, _ *decodeContext, bc *BaseCoord) error {
	if err := c.need(1, 6); err != nil {
		return err
	}
	bc.Coordinate, _ = c.ReadI16()
	g, _ := c.ReadU16()
	bc.ReferenceGlyph = GlyphIndex(g)
	bc.BaseCoordPoint, _ = c.ReadU16()
	return nil
}

func decodeBaseCoordFormat3(c *Cursor, coord *Cursor, ctx *decodeContext, bc *BaseCoord) (err error) {
	if err = c.need(1, 4); err != nil {
		return err
	}
	bc.Coordinate, _ = c.ReadI16()
	bc.DeviceOffset, _ = c.ReadU16()
	bc.Device, err = followOffset16(coord, bc.DeviceOffset, ctx, "Device", decodeDevice)
	return err
}

// Coord returns the coordinate value of an optional BaseCoord and whether it is present.
func Coord(o Option[BaseCoord]) (int16, bool) {
	bc, ok := o.Unwrap()
	return bc.Coordinate, ok
}

// --- Device tables ---------------------------------------------------------

// Delta formats of Device tables.
const (
	DeltaLocal2Bit      uint16 = 0x0001
	DeltaLocal4Bit      uint16 = 0x0002
	DeltaLocal8Bit      uint16 = 0x0003
	DeltaVariationIndex uint16 = 0x8000
)

// DeviceTable holds size-specific adjustments of a coordinate, or, for
// variable fonts, an index into the item variation store. For
// VariationIndex tables, StartSize and EndSize hold the outer and inner
// delta-set indices.
type DeviceTable struct {
	StartSize   uint16
	EndSize     uint16
	DeltaFormat uint16
	DeltaValues []uint16 // packed delta values
}

func decodeDevice(c *Cursor, ctx *decodeContext) (DeviceTable, error) {
	if err := c.need(1, 6); err != nil {
		return DeviceTable{}, err
	}
	d := DeviceTable{}
	d.StartSize, _ = c.ReadU16()
	d.EndSize, _ = c.ReadU16()
	d.DeltaFormat, _ = c.ReadU16()
	bits := d.deltaBits()
	if bits == 0 {
		if d.DeltaFormat != DeltaVariationIndex {
			ctx.warn(c, fmt.Sprintf("device table delta format 0x%04x not recognized", d.DeltaFormat))
		}
		return d, nil
	}
	if d.EndSize < d.StartSize {
		return d, nil
	}
	sizes := int(d.EndSize) - int(d.StartSize) + 1
	words := (sizes*bits + 15) / 16
	if err := c.need(words, 2); err != nil {
		return DeviceTable{}, fmt.Errorf("device table deltas: %w", err)
	}
	d.DeltaValues = make([]uint16, words)
	for i := range d.DeltaValues {
		d.DeltaValues[i], _ = c.ReadU16()
	}
	return d, nil
}

func (d DeviceTable) deltaBits() int {
	switch d.DeltaFormat {
	case DeltaLocal2Bit, DeltaLocal4Bit, DeltaLocal8Bit:
		return 1 << d.DeltaFormat
	}
	return 0
}

// IsVariationIndex reports whether d is a VariationIndex table.
func (d DeviceTable) IsVariationIndex() bool {
	return d.DeltaFormat == DeltaVariationIndex
}

// Delta returns the adjustment in pixels for the given size in pixels per em.
// Sizes outside [StartSize, EndSize] have no adjustment.
func (d DeviceTable) Delta(ppem uint16) int16 {
	bits := d.deltaBits()
	if bits == 0 || ppem < d.StartSize || ppem > d.EndSize {
		return 0
	}
	perWord := 16 / bits
	inx := int(ppem - d.StartSize)
	w := inx / perWord
	if w >= len(d.DeltaValues) {
		return 0
	}
	shift := 16 - bits*(inx%perWord+1)
	mask := uint16(1)<<bits - 1
	v := int16((d.DeltaValues[w] >> shift) & mask)
	if v&(1<<(bits-1)) != 0 { // sign-extend
		v -= 1 << bits
	}
	return v
}
