package ot

// OpenType defines a Tag as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// Frequently used tags.
var (
	DFLT = T("DFLT") // default script
	BASE = T("BASE") // baseline table
)

// EncodeTag creates a Tag from 4 bytes, most significant byte first.
func EncodeTag(b [4]byte) Tag {
	return Tag(u32(b[:]))
}

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

// Bytes returns the 4 bytes of t, most significant byte first. Bytes are not
// checked for printability.
func (t Tag) Bytes() [4]byte {
	return [4]byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
}

func (t Tag) String() string {
	b := t.Bytes()
	return string(b[:])
}

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16
