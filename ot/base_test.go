package ot

import (
	"testing"

	"github.com/npillmayer/otbase/internal/fontfixture"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSampleBase(t *testing.T, opts ...ParseOption) *BaseTable {
	t.Helper()
	data := fontfixture.SampleBase()
	base, err := ParseBase(NewCursor(data), len(data), opts...)
	require.NoError(t, err)
	require.NotNil(t, base)
	return base
}

// baseWithValues creates a BASE table with a horizontal axis, baselines
// ideo/romn/hang and a single script 'latn', whose BaseValues are given.
// BaseValues start at position 40 of the table.
func baseWithValues(values []byte) []byte {
	b := fontfixture.NewBuilder()
	b.U32(0x00010000).U16(8).U16(0)
	b.U16(4).U16(18)                             // axis @8
	b.U16(3).Tag("ideo").Tag("romn").Tag("hang") // tag list @12
	b.U16(1).Tag("latn").U16(8)                  // script list @26
	b.U16(6).U16(0).U16(0)                       // BaseScript @34
	b.Raw(values...)                             // BaseValues @40
	return b.Bytes()
}

const valuesStart = 40

func TestBaseEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	base := fontfixture.NewBuilder().U32(0x00010000).U16(0).U16(0).Zeros(12).Bytes()
	font := fontfixture.Sfnt(fontfixture.TrueType, fontfixture.Table{Tag: "BASE", Data: base})
	otf, err := Parse(font)
	require.NoError(t, err)
	require.Empty(t, otf.Errors())
	e, ok := otf.Table(BASE)
	require.True(t, ok)
	assert.Equal(t, uint32(28), e.Offset)
	assert.Equal(t, uint32(20), e.Length)
	require.NotNil(t, otf.Base)
	assert.Equal(t, uint32(0x00010000), otf.Base.Version)
	assert.True(t, otf.Base.HorizAxis.IsNone())
	assert.True(t, otf.Base.VertAxis.IsNone())
	major, minor := otf.Base.MajorMinor()
	assert.Equal(t, uint16(1), major)
	assert.Equal(t, uint16(0), minor)
}

func TestBaseOverlappingDirectory(t *testing.T) {
	// The BASE entry claims offset 12, which is where its own table record
	// lives. Decoding has to stay within the claimed 20 bytes nevertheless.
	b := fontfixture.NewBuilder().U32(0x00010000).U16(1).U16(16).U16(0).U16(0)
	b.Tag("BASE").U32(0).U32(12).U32(20)
	b.Zeros(4)
	otf, err := Parse(b.Bytes())
	require.NoError(t, err)
	require.Empty(t, otf.Errors())
	require.NotNil(t, otf.Base)
	assert.Equal(t, uint32(BASE), otf.Base.Version)
	assert.Equal(t, uint32(12), otf.Base.ItemVarStoreOffset)
	assert.True(t, otf.Base.HorizAxis.IsNone())
	assert.True(t, otf.Base.VertAxis.IsNone())
}

func TestBaseReadsOnlyItsRegion(t *testing.T) {
	data := fontfixture.NewBuilder().U32(0x00010000).U16(0).U16(0).Zeros(12).Raw(0xde, 0xad).Bytes()
	c := NewCursor(data)
	base, err := ParseBase(c, 20)
	require.NoError(t, err)
	assert.True(t, base.HorizAxis.IsNone())
	assert.Equal(t, 20, c.Pos(), "exactly the table's bytes are consumed")
	_, err = ParseBase(NewCursor(data[:10]), 20)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestBaseSample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	base := parseSampleBase(t)
	assert.True(t, base.VertAxis.IsNone())
	axis, ok := base.Horizontal()
	require.True(t, ok)
	assert.Equal(t, 8, axis.Start)
	assert.Equal(t, []Tag{T("hang"), T("ideo"), T("romn")}, axis.BaselineTags())
	assert.Equal(t, []Tag{DFLT, T("cyrl"), T("latn")}, axis.ScriptTags())
	//
	_, ok = axis.Script(T("cyrl"))
	assert.False(t, ok, "NULL script offset means no BaseScript")
	_, ok = axis.Script(T("grek"))
	assert.False(t, ok)
	//
	dflt, ok := axis.Script(DFLT)
	require.True(t, ok)
	bv := dflt.BaseValues.MustUnwrap()
	assert.Equal(t, uint16(2), bv.DefaultIndex)
	require.Len(t, bv.Coords, 3)
	hang, ok := Coord(bv.Coords[0])
	assert.True(t, ok)
	assert.Equal(t, int16(fontfixture.SampleHang), hang)
	ideo, _ := Coord(bv.Coords[1])
	assert.Equal(t, int16(fontfixture.SampleIdeo), ideo)
	assert.True(t, dflt.DefaultMinMax.IsNone())
	assert.Empty(t, dflt.LangSysRecords)
	//
	latn, ok := axis.Script(T("latn"))
	require.True(t, ok)
	bc, ok := latn.Coordinate(1)
	require.True(t, ok)
	assert.Equal(t, BaseCoord{Format: 2, Coordinate: fontfixture.SampleLatnIdeo, ReferenceGlyph: 5, BaseCoordPoint: 2}, bc)
	_, ok = latn.Coordinate(3)
	assert.False(t, ok)
	mm := latn.DefaultMinMax.MustUnwrap()
	lo, _ := Coord(mm.MinCoord)
	hi, _ := Coord(mm.MaxCoord)
	assert.Equal(t, int16(fontfixture.SampleLatnMin), lo)
	assert.Equal(t, int16(fontfixture.SampleLatnMax), hi)
	//
	deu, ok := latn.LangSysMinMax(T("DEU"))
	require.True(t, ok)
	lo, _ = Coord(deu.MinCoord)
	hi, _ = Coord(deu.MaxCoord)
	assert.Equal(t, int16(fontfixture.SampleDeuMin), lo)
	assert.Equal(t, int16(fontfixture.SampleDeuMax), hi)
	feat, ok := deu.FeatureMinMax(T("case"))
	require.True(t, ok)
	lo, _ = Coord(feat.MinCoord)
	assert.Equal(t, int16(fontfixture.SampleCaseMin), lo)
	assert.True(t, feat.MaxCoord.IsNone())
	_, ok = latn.LangSysMinMax(T("FRA"))
	assert.False(t, ok)
}

func TestBaseOffsetsRebase(t *testing.T) {
	base := parseSampleBase(t)
	axis, _ := base.Horizontal()
	assert.Equal(t, int(base.HorizAxisOffset), axis.Start)
	tl := axis.BaseTagList.MustUnwrap()
	assert.Equal(t, axis.Start+int(axis.BaseTagListOffset), tl.Start)
	sl := axis.BaseScriptList.MustUnwrap()
	assert.Equal(t, axis.Start+int(axis.BaseScriptListOffset), sl.Start)
	assert.Equal(t, 26, sl.Start)
	for i, rec := range sl.Records {
		s, ok := sl.Scripts[i].Unwrap()
		if rec.Offset == 0 {
			assert.False(t, ok, "script %s", rec.Tag)
			continue
		}
		require.True(t, ok, "script %s", rec.Tag)
		assert.Equal(t, sl.Start+int(rec.Offset), s.Start, "script %s is relative to its list", rec.Tag)
		bv := s.BaseValues.MustUnwrap()
		assert.Equal(t, s.Start+int(s.BaseValuesOffset), bv.Start, "values of %s are relative to their BaseScript", rec.Tag)
		if mm, ok := s.DefaultMinMax.Unwrap(); ok {
			assert.Equal(t, s.Start+int(s.DefaultMinMaxOffset), mm.Start)
		}
		for j, lrec := range s.LangSysRecords {
			mm := s.MinMax[j].MustUnwrap()
			assert.Equal(t, s.Start+int(lrec.MinMaxOffset), mm.Start, "MinMax %s is relative to its BaseScript", lrec.Tag)
		}
	}
	latn, _ := axis.Script(T("latn"))
	assert.Equal(t, 74, latn.Start)
	assert.Equal(t, 126, latn.MinMax[0].MustUnwrap().Start)
}

func TestBaseTruncated(t *testing.T) {
	data := fontfixture.SampleBase()
	for n := 0; n < len(data); n++ {
		region := data[:n]
		_, err := ParseBase(NewCursor(region), n)
		assert.ErrorIs(t, err, ErrOutOfBounds, "BASE truncated to %d bytes", n)
	}
}

func TestBaseInlineAndFollowAgree(t *testing.T) {
	inline := parseSampleBase(t)
	follow := parseSampleBase(t, FollowCoordOffsets)
	assert.Equal(t, inline, follow, "the sample's offsets point at the inline coords")
}

func TestBaseValuesFollowOffsets(t *testing.T) {
	values := fontfixture.NewBuilder()
	values.U16(0).U16(3).U16(14).U16(10).U16(0)
	values.U16(1).I16(222) // @10
	values.U16(1).I16(111) // @14
	values.U16(1).I16(333) // @18
	data := baseWithValues(values.Bytes())
	//
	base, err := ParseBase(NewCursor(data), len(data), FollowCoordOffsets)
	require.NoError(t, err)
	axis, _ := base.Horizontal()
	latn, ok := axis.Script(T("latn"))
	require.True(t, ok)
	bv := latn.BaseValues.MustUnwrap()
	assert.Equal(t, valuesStart, bv.Start)
	assert.Equal(t, []uint16{14, 10, 0}, bv.CoordOffsets)
	c0, _ := Coord(bv.Coords[0])
	c1, _ := Coord(bv.Coords[1])
	assert.Equal(t, int16(111), c0)
	assert.Equal(t, int16(222), c1)
	assert.True(t, bv.Coords[2].IsNone(), "NULL coord offset")
	//
	base, err = ParseBase(NewCursor(data), len(data))
	require.NoError(t, err)
	axis, _ = base.Horizontal()
	latn, _ = axis.Script(T("latn"))
	bv = latn.BaseValues.MustUnwrap()
	coords := make([]int16, len(bv.Coords))
	for i, o := range bv.Coords {
		coords[i] = o.MustUnwrap().Coordinate
	}
	assert.Equal(t, []int16{222, 111, 333}, coords, "inline coords are read in sequence")
}

func TestBaseUnknownCoordFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	values := fontfixture.NewBuilder()
	values.U16(1).U16(3).U16(0).U16(0).U16(0)
	values.U16(1).I16(10)
	values.U16(7) // unknown format, only the selector is consumed
	values.U16(1).I16(30)
	font := fontfixture.Sfnt(fontfixture.TrueType,
		fontfixture.Table{Tag: "BASE", Data: baseWithValues(values.Bytes())})
	//
	otf, err := Parse(font)
	require.NoError(t, err)
	require.NotNil(t, otf.Base)
	axis, _ := otf.Base.Horizontal()
	latn, _ := axis.Script(T("latn"))
	bv := latn.BaseValues.MustUnwrap()
	require.Len(t, bv.Coords, 3)
	c0, _ := Coord(bv.Coords[0])
	assert.Equal(t, int16(10), c0)
	assert.True(t, bv.Coords[1].IsNone())
	c2, _ := Coord(bv.Coords[2])
	assert.Equal(t, int16(30), c2)
	require.Len(t, otf.Warnings(), 1)
	w := otf.Warnings()[0]
	assert.Equal(t, BASE, w.Table)
	assert.Contains(t, w.Issue, "format 7")
	assert.Equal(t, uint32(28+valuesStart+10+4), w.Offset)
	//
	otf, err = Parse(font, StrictCoordFormats)
	require.NoError(t, err, "a broken table does not make the font fail")
	assert.Nil(t, otf.Base, "BASE is unavailable")
	require.Len(t, otf.Errors(), 1)
	assert.Equal(t, SeverityMajor, otf.Errors()[0].Severity)
	assert.ErrorIs(t, otf.TableError(BASE), ErrUnknownVariant)
	assert.NoError(t, otf.TableError(T("GSUB")))
}

func TestBaseUnknownCoordFormatAfterWideRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	tests := []struct {
		name  string
		first func(*fontfixture.Builder)
		size  int // bytes taken by the first BaseCoord
		coord int16
	}{
		{"format 2", func(b *fontfixture.Builder) { b.U16(2).I16(-120).U16(5).U16(2) }, 8, -120},
		{"format 3", func(b *fontfixture.Builder) { b.U16(3).I16(900).U16(0) }, 6, 900},
	}
	for _, tt := range tests {
		values := fontfixture.NewBuilder()
		values.U16(0).U16(3).U16(0).U16(0).U16(0)
		tt.first(values)
		values.U16(9)
		values.U16(1).I16(30)
		font := fontfixture.Sfnt(fontfixture.TrueType,
			fontfixture.Table{Tag: "BASE", Data: baseWithValues(values.Bytes())})
		//
		otf, err := Parse(font)
		require.NoError(t, err, tt.name)
		require.NotNil(t, otf.Base, tt.name)
		axis, _ := otf.Base.Horizontal()
		latn, _ := axis.Script(T("latn"))
		bv := latn.BaseValues.MustUnwrap()
		require.Len(t, bv.Coords, 3, tt.name)
		c0, ok := Coord(bv.Coords[0])
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.coord, c0, tt.name)
		assert.True(t, bv.Coords[1].IsNone(), tt.name)
		c2, ok := Coord(bv.Coords[2])
		require.True(t, ok, tt.name)
		assert.Equal(t, int16(30), c2, "%s: next record is read after the selector", tt.name)
		require.Len(t, otf.Warnings(), 1, tt.name)
		assert.Equal(t, uint32(28+valuesStart+10+tt.size), otf.Warnings()[0].Offset, tt.name)
	}
}

func TestBaseCoordDevice(t *testing.T) {
	values := fontfixture.NewBuilder()
	values.U16(0).U16(2).U16(0).U16(0)
	values.U16(3).I16(500).U16(14) // coord @8, device @22
	values.U16(3).I16(600).U16(16) // coord @14, variation index @30
	values.Zeros(2)
	values.U16(12).U16(14).U16(DeltaLocal4Bit).U16(0x1f20)
	values.U16(2).U16(7).U16(DeltaVariationIndex)
	data := baseWithValues(values.Bytes())
	//
	base, err := ParseBase(NewCursor(data), len(data))
	require.NoError(t, err)
	axis, _ := base.Horizontal()
	latn, _ := axis.Script(T("latn"))
	bc, ok := latn.Coordinate(0)
	require.True(t, ok)
	assert.Equal(t, uint16(3), bc.Format)
	assert.Equal(t, int16(500), bc.Coordinate)
	dev, ok := bc.Device.Unwrap()
	require.True(t, ok, "device table is relative to the BaseCoord")
	assert.False(t, dev.IsVariationIndex())
	assert.Equal(t, []uint16{0x1f20}, dev.DeltaValues)
	assert.Equal(t, int16(1), dev.Delta(12))
	assert.Equal(t, int16(-1), dev.Delta(13))
	assert.Equal(t, int16(2), dev.Delta(14))
	assert.Equal(t, int16(0), dev.Delta(15))
	assert.Equal(t, int16(0), dev.Delta(11))
	//
	bc, ok = latn.Coordinate(1)
	require.True(t, ok)
	vi := bc.Device.MustUnwrap()
	assert.True(t, vi.IsVariationIndex())
	assert.Equal(t, uint16(2), vi.StartSize)
	assert.Equal(t, uint16(7), vi.EndSize)
	assert.Empty(t, vi.DeltaValues)
	assert.Equal(t, int16(0), vi.Delta(4))
}

func TestDeviceDelta8Bit(t *testing.T) {
	d := DeviceTable{StartSize: 9, EndSize: 11, DeltaFormat: DeltaLocal8Bit, DeltaValues: []uint16{0x7f80, 0x0300}}
	assert.Equal(t, int16(127), d.Delta(9))
	assert.Equal(t, int16(-128), d.Delta(10))
	assert.Equal(t, int16(3), d.Delta(11))
	d = DeviceTable{StartSize: 1, EndSize: 8, DeltaFormat: DeltaLocal2Bit, DeltaValues: []uint16{0b01_11_10_00_00_00_00_01}}
	assert.Equal(t, int16(1), d.Delta(1))
	assert.Equal(t, int16(-1), d.Delta(2))
	assert.Equal(t, int16(-2), d.Delta(3))
	assert.Equal(t, int16(1), d.Delta(8))
}

func TestBaseFailsAtDepth(t *testing.T) {
	values := fontfixture.NewBuilder()
	values.U16(0).U16(1).U16(0x4000)
	data := baseWithValues(values.Bytes())
	base, err := ParseBase(NewCursor(data), len(data), FollowCoordOffsets)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Nil(t, base, "no partial table")
}

func TestBaseZeroOffsetsShortCircuit(t *testing.T) {
	// Axis with NULL tag list and NULL script list. Nothing after the axis
	// header exists, so any read beyond it would fail.
	data := fontfixture.NewBuilder().U32(0x00010000).U16(8).U16(8).U16(0).U16(0).Bytes()
	base, err := ParseBase(NewCursor(data), len(data))
	require.NoError(t, err)
	for _, o := range []Option[Axis]{base.HorizAxis, base.VertAxis} {
		axis, ok := o.Unwrap()
		require.True(t, ok)
		assert.True(t, axis.BaseTagList.IsNone())
		assert.True(t, axis.BaseScriptList.IsNone())
		assert.Nil(t, axis.BaselineTags())
		assert.Nil(t, axis.ScriptTags())
		_, ok = axis.Script(DFLT)
		assert.False(t, ok)
	}
}

func TestBaseLimits(t *testing.T) {
	b := fontfixture.NewBuilder()
	b.U32(0x00010000).U16(8).U16(0)
	b.U16(4).U16(0)
	b.U16(MaxTagListCount + 1)
	for i := 0; i <= MaxTagListCount; i++ {
		b.Tag("romn")
	}
	data := b.Bytes()
	_, err := ParseBase(NewCursor(data), len(data))
	assert.ErrorIs(t, err, ErrLimitExceeded)
	//
	_, err = ParseBase(NewCursor(data), len(data), MaxTableSize(100))
	assert.ErrorIs(t, err, ErrTableTooLarge)
	_, err = ParseBase(NewCursor(data), -1)
	assert.ErrorIs(t, err, ErrTableTooLarge)
}

func TestBaseVersion11(t *testing.T) {
	data := fontfixture.NewBuilder().U32(0x00010001).U16(0).U16(0).U32(0x100).Bytes()
	base, err := ParseBase(NewCursor(data), len(data))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x100), base.ItemVarStoreOffset)
	major, minor := base.MajorMinor()
	assert.Equal(t, uint16(1), major)
	assert.Equal(t, uint16(1), minor)
	_, err = ParseBase(NewCursor(data[:8]), 8)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestBaseString(t *testing.T) {
	s := parseSampleBase(t).String()
	t.Logf("\n%s", s)
	assert.Contains(t, s, "'BASE' Table - Baseline, version 1.0")
	assert.Contains(t, s, "vertical Axis: none")
	assert.Contains(t, s, "BaseTagList @12: 'hang' 'ideo' 'romn'")
	assert.Contains(t, s, "'cyrl' -> none")
	assert.Contains(t, s, "'latn' -> BaseScript @74")
	assert.Contains(t, s, "[1] 'ideo' -100 (glyph 5, point 2)")
	assert.Contains(t, s, "feature 'case': min -400, max none")
	var nilBase *BaseTable
	assert.Equal(t, "BASE <nil>", nilBase.String())
}
