package fontfixture

// Sample BASE table, horizontal axis only, BaseCoords stored inline after the
// offset arrays:
//
//	baselines  hang ideo romn
//	DFLT       1500 -120    0            default romn
//	latn       1400 -100*   0            default romn, *format 2 (glyph 5, point 2)
//	           min -300, max 1800
//	           DEU : min -350, max 1850, feature 'case' min -400
//	cyrl       NULL
const (
	SampleHang     = 1500
	SampleIdeo     = -120
	SampleLatnHang = 1400
	SampleLatnIdeo = -100
	SampleLatnMin  = -300
	SampleLatnMax  = 1800
	SampleDeuMin   = -350
	SampleDeuMax   = 1850
	SampleCaseMin  = -400
)

// SampleBase returns the bytes of the sample BASE table.
func SampleBase() []byte {
	b := NewBuilder()
	b.U32(0x00010000)
	horiz := b.Placeholder16()
	b.U16(0) // no vertical axis
	//
	axis := b.Len()
	b.Patch16(horiz, axis)
	tagList := b.Placeholder16()
	scriptList := b.Placeholder16()
	b.Patch16(tagList, b.Len()-axis)
	b.U16(3).Tag("hang").Tag("ideo").Tag("romn")
	//
	list := b.Len()
	b.Patch16(scriptList, list-axis)
	b.U16(3)
	b.Tag("DFLT")
	dflt := b.Placeholder16()
	b.Tag("cyrl").U16(0)
	b.Tag("latn")
	latn := b.Placeholder16()
	//
	script := b.Len()
	b.Patch16(dflt, script-list)
	b.U16(6).U16(0).U16(0) // BaseValues follow the header
	inlineValues(b, 2, coordFormat1(SampleHang), coordFormat1(SampleIdeo), coordFormat1(0))
	//
	script = b.Len()
	b.Patch16(latn, script-list)
	values := b.Placeholder16()
	minmax := b.Placeholder16()
	b.U16(1).Tag("DEU ")
	deu := b.Placeholder16()
	b.Patch16(values, b.Len()-script)
	inlineValues(b, 2, coordFormat1(SampleLatnHang), coordFormat2(SampleLatnIdeo, 5, 2), coordFormat1(0))
	b.Patch16(minmax, b.Len()-script)
	b.U16(6).U16(10).U16(0)
	b.Raw(coordFormat1(SampleLatnMin)...)
	b.Raw(coordFormat1(SampleLatnMax)...)
	//
	b.Patch16(deu, b.Len()-script)
	b.U16(14).U16(18).U16(1)
	b.Tag("case").U16(22).U16(0)
	b.Raw(coordFormat1(SampleDeuMin)...)
	b.Raw(coordFormat1(SampleDeuMax)...)
	b.Raw(coordFormat1(SampleCaseMin)...)
	return b.Bytes()
}

// SampleUnitsPerEm is the design grid of the sample font.
const SampleUnitsPerEm = 1000

// SampleFont returns a font file containing the sample BASE table and a
// minimal 'head' table.
func SampleFont() []byte {
	head := NewBuilder().U32(0x00010000).U32(0x00010000).U32(0xb1b0afba).U32(0x5f0f3cf5)
	head.U16(0).U16(SampleUnitsPerEm)
	head.Zeros(54 - head.Len())
	return Sfnt(TrueType,
		Table{Tag: "BASE", Data: SampleBase()},
		Table{Tag: "head", Data: head.Bytes()},
	)
}

// inlineValues appends a BaseValues table whose BaseCoords follow the offset
// array. The offsets point to the coords, so both layouts decode alike.
func inlineValues(b *Builder, defaultIndex uint16, coords ...[]byte) {
	b.U16(defaultIndex).U16(uint16(len(coords)))
	at := 4 + 2*len(coords)
	for _, c := range coords {
		b.U16(uint16(at))
		at += len(c)
	}
	for _, c := range coords {
		b.Raw(c...)
	}
}

func coordFormat1(v int16) []byte {
	return NewBuilder().U16(1).I16(v).Bytes()
}

func coordFormat2(v int16, glyph, point uint16) []byte {
	return NewBuilder().U16(2).I16(v).U16(glyph).U16(point).Bytes()
}
