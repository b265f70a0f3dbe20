package otquery

import (
	"github.com/npillmayer/otbase/ot"
)

// HeadTableInfo holds the fields of table 'head' a client needs to interpret
// BASE values: the design grid, the font's bounding box and some flags.
type HeadTableInfo struct {
	MajorVersion      uint16
	MinorVersion      uint16
	FontRevision      uint32
	MagicNumber       uint32
	Flags             uint16
	UnitsPerEm        uint16
	XMin, YMin        int16
	XMax, YMax        int16
	MacStyle          uint16
	LowestRecPPEM     uint16
	FontDirectionHint int16
}

const headMagic = 0x5f0f3cf5

// HeadInfo reads table 'head' from the font's bytes, where the table
// directory of otf tells its location. Callers have to pass the bytes otf
// has been parsed from. It reports false if the table is missing, truncated,
// or does not carry the OpenType magic number.
func HeadInfo(font []byte, otf *ot.Font) (HeadTableInfo, bool) {
	var h HeadTableInfo
	if otf == nil {
		return h, false
	}
	e, ok := otf.Table(ot.T("head"))
	if !ok {
		return h, false
	}
	end, ok := e.End()
	if !ok || int64(end) > int64(len(font)) {
		tracer().Infof("table 'head' exceeds font data")
		return h, false
	}
	c := ot.NewCursor(font[e.Offset:end])
	if err := readHead(c, &h); err != nil {
		tracer().Infof("cannot read table 'head': %v", err)
		return HeadTableInfo{}, false
	}
	return h, h.MagicNumber == headMagic
}

func readHead(c *ot.Cursor, h *HeadTableInfo) (err error) {
	u16 := func(p *uint16) {
		if err == nil {
			*p, err = c.ReadU16()
		}
	}
	i16 := func(p *int16) {
		if err == nil {
			*p, err = c.ReadI16()
		}
	}
	u16(&h.MajorVersion)
	u16(&h.MinorVersion)
	if err == nil {
		h.FontRevision, err = c.ReadU32()
	}
	if err == nil {
		err = c.Skip(4) // checkSumAdjustment
	}
	if err == nil {
		h.MagicNumber, err = c.ReadU32()
	}
	u16(&h.Flags)
	u16(&h.UnitsPerEm)
	if err == nil {
		err = c.Skip(16) // created, modified
	}
	i16(&h.XMin)
	i16(&h.YMin)
	i16(&h.XMax)
	i16(&h.YMax)
	u16(&h.MacStyle)
	u16(&h.LowestRecPPEM)
	i16(&h.FontDirectionHint)
	return err
}
