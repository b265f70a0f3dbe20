package ot

import (
	"fmt"
)

// --- BASE table ------------------------------------------------------------

// BaseTable, the Baseline table (BASE), provides information used to align glyphs
// of different scripts and sizes in a line of text, whether the glyphs are in the
// same font or in different fonts.
//
// A BaseTable is decoded completely by ParseBase and does not reference the
// font's bytes afterwards. All offsets are kept as found in the font, and
// positions (field Start of the sub-structures) are relative to the start
// of the BASE table.
//
// See also
// https://docs.microsoft.com/en-us/typography/opentype/spec/base
type BaseTable struct {
	Version            uint32       // 0x00010000 or 0x00010001
	HorizAxisOffset    uint16       // offset to horizontal Axis table, from beginning of BASE table
	VertAxisOffset     uint16       // offset to vertical Axis table, from beginning of BASE table
	ItemVarStoreOffset uint32       // offset to ItemVariationStore (version 1.1 only)
	HorizAxis          Option[Axis] // baseline data for horizontal text layout
	VertAxis           Option[Axis] // baseline data for vertical text layout
}

// Axis is a BASE axis table, either horizontal or vertical.
//
// For each script listed in the BaseScriptList table, a BaseScriptRecord must be
// defined that identifies the script and references its layout data.
type Axis struct {
	Start                int
	BaseTagListOffset    uint16
	BaseScriptListOffset uint16
	BaseTagList          Option[BaseTagList]
	BaseScriptList       Option[BaseScriptList]
}

// BaseTagList enumerates all baselines used to render the scripts in the
// text layout direction.
type BaseTagList struct {
	Start int
	Tags  []Tag // baseline identification tags, in declaration order
}

// BaseScriptRecord links a script tag to its BaseScript table.
type BaseScriptRecord struct {
	Tag    Tag
	Offset uint16 // from beginning of BaseScriptList
}

// BaseScriptList holds one BaseScript per record. Scripts[i] belongs to
// Records[i] and is empty for a NULL offset.
type BaseScriptList struct {
	Start   int
	Records []BaseScriptRecord
	Scripts []Option[BaseScript]
}

// BaseLangSysRecord links a language system tag to its MinMax table.
type BaseLangSysRecord struct {
	Tag          Tag
	MinMaxOffset uint16 // from beginning of BaseScript
}

// BaseScript holds the baseline values of a script and optional min/max
// extents for the script and its language systems. MinMax[i] belongs to
// LangSysRecords[i].
type BaseScript struct {
	Start               int
	BaseValuesOffset    uint16
	DefaultMinMaxOffset uint16
	LangSysRecords      []BaseLangSysRecord
	BaseValues          Option[BaseValues]
	DefaultMinMax       Option[MinMax]
	MinMax              []Option[MinMax]
}

// BaseValues lists the coordinates of all the baselines of an axis' BaseTagList,
// for one script. Coords[i] is the coordinate for baseline tag i. Slots of
// unrecognized coordinate formats are empty.
type BaseValues struct {
	Start        int
	DefaultIndex uint16 // index of the default baseline for the script
	CoordOffsets []uint16
	Coords       []Option[BaseCoord]
}

// FeatMinMaxRecord holds feature-specific min/max extents.
type FeatMinMaxRecord struct {
	Tag       Tag
	MinOffset uint16 // from beginning of MinMax
	MaxOffset uint16 // from beginning of MinMax
	MinCoord  Option[BaseCoord]
	MaxCoord  Option[BaseCoord]
}

// MinMax holds the minimum and maximum extent values of a script or language system.
type MinMax struct {
	Start             int
	MinCoordOffset    uint16
	MaxCoordOffset    uint16
	FeatMinMaxRecords []FeatMinMaxRecord
	MinCoord          Option[BaseCoord]
	MaxCoord          Option[BaseCoord]
}

// ParseBase decodes a BASE table of length bytes at the current position of c.
// The table's bytes are the only bytes the decoder will look at. Any failure,
// at whatever depth, makes the whole table fail; no partially decoded table
// is returned.
func ParseBase(c *Cursor, length int, opts ...ParseOption) (*BaseTable, error) {
	ctx := &decodeContext{conf: makeConfig(opts), table: BASE}
	return parseBase(c, length, ctx)
}

func parseBase(c *Cursor, length int, ctx *decodeContext) (*BaseTable, error) {
	if length < 0 || length > ctx.conf.maxTableSize {
		return nil, fmt.Errorf("%w: BASE table has %d bytes, limit is %d",
			ErrTableTooLarge, length, ctx.conf.maxTableSize)
	}
	region, err := c.ReadBytes(length)
	if err != nil {
		return nil, fmt.Errorf("BASE table: %w", err)
	}
	r := NewCursor(region)
	if err := r.need(1, 8); err != nil {
		return nil, fmt.Errorf("BASE header: %w", err)
	}
	base := &BaseTable{}
	base.Version, _ = r.ReadU32()
	base.HorizAxisOffset, _ = r.ReadU16()
	base.VertAxisOffset, _ = r.ReadU16()
	tracer().Debugf("BASE version 0x%08x, axis offsets %d|%d", base.Version,
		base.HorizAxisOffset, base.VertAxisOffset)
	if base.Version >= 0x00010001 {
		if base.ItemVarStoreOffset, err = r.ReadU32(); err != nil {
			return nil, fmt.Errorf("BASE header v1.1: %w", err)
		}
	}
	// The BASE table begins with offsets to Axis tables that describe layout data for
	// the horizontal and vertical layout directions of text. A font can provide layout
	// data for both text directions or for only one text direction.
	if base.HorizAxis, err = followOffset16(r, base.HorizAxisOffset, ctx, "horizontal Axis", decodeAxis); err != nil {
		return nil, err
	}
	if base.VertAxis, err = followOffset16(r, base.VertAxisOffset, ctx, "vertical Axis", decodeAxis); err != nil {
		return nil, err
	}
	return base, nil
}

// An Axis table consists of offsets, measured from the beginning of the Axis table,
// to a BaseTagList and a BaseScriptList.
func decodeAxis(c *Cursor, ctx *decodeContext) (axis Axis, err error) {
	axis.Start = c.Base()
	if err = c.need(1, 4); err != nil {
		return Axis{}, fmt.Errorf("Axis header: %w", err)
	}
	// If no baseline data is available for a text direction,
	// the offset to the corresponding BaseTagList may be set to NULL.
	axis.BaseTagListOffset, axis.BaseTagList, err = readOffset16(c, ctx, "BaseTagList", decodeBaseTagList)
	if err != nil {
		return Axis{}, err
	}
	axis.BaseScriptListOffset, axis.BaseScriptList, err = readOffset16(c, ctx, "BaseScriptList", decodeBaseScriptList)
	if err != nil {
		return Axis{}, err
	}
	return axis, nil
}

func decodeBaseTagList(c *Cursor, _ *decodeContext) (BaseTagList, error) {
	count, err := readCount(c, "BaseTagList", MaxTagListCount, 4)
	if err != nil {
		return BaseTagList{}, err
	}
	tl := BaseTagList{Start: c.Base(), Tags: make([]Tag, count)}
	for i := range tl.Tags {
		tl.Tags[i], _ = c.ReadTag()
	}
	tracer().Debugf("BaseTagList has %d entries", count)
	return tl, nil
}

// BaseScriptRecords are stored in the baseScriptRecords array, ordered
// alphabetically by the baseScriptTag in each record. We do not rely on
// the ordering.
func decodeBaseScriptList(c *Cursor, ctx *decodeContext) (BaseScriptList, error) {
	count, err := readCount(c, "BaseScriptList", MaxScriptCount, 6)
	if err != nil {
		return BaseScriptList{}, err
	}
	sl := BaseScriptList{
		Start:   c.Base(),
		Records: make([]BaseScriptRecord, count),
		Scripts: make([]Option[BaseScript], count),
	}
	for i := range sl.Records {
		sl.Records[i].Tag, _ = c.ReadTag()
		sl.Records[i].Offset, _ = c.ReadU16()
	}
	for i, rec := range sl.Records {
		name := fmt.Sprintf("BaseScript '%s'", rec.Tag)
		if sl.Scripts[i], err = followOffset16(c, rec.Offset, ctx, name, decodeBaseScript); err != nil {
			return BaseScriptList{}, err
		}
	}
	tracer().Debugf("BaseScriptList has %d entries", count)
	return sl, nil
}

func decodeBaseScript(c *Cursor, ctx *decodeContext) (s BaseScript, err error) {
	s.Start = c.Base()
	if s.BaseValuesOffset, err = c.ReadU16(); err != nil {
		return BaseScript{}, fmt.Errorf("offset to BaseValues: %w", err)
	}
	if s.DefaultMinMaxOffset, err = c.ReadU16(); err != nil {
		return BaseScript{}, fmt.Errorf("offset to default MinMax: %w", err)
	}
	count, err := readCount(c, "BaseLangSysRecords", MaxRecordMapCount, 6)
	if err != nil {
		return BaseScript{}, err
	}
	s.LangSysRecords = make([]BaseLangSysRecord, count)
	for i := range s.LangSysRecords {
		s.LangSysRecords[i].Tag, _ = c.ReadTag()
		s.LangSysRecords[i].MinMaxOffset, _ = c.ReadU16()
	}
	if s.BaseValues, err = followOffset16(c, s.BaseValuesOffset, ctx, "BaseValues", decodeBaseValues); err != nil {
		return BaseScript{}, err
	}
	if s.DefaultMinMax, err = followOffset16(c, s.DefaultMinMaxOffset, ctx, "default MinMax", decodeMinMax); err != nil {
		return BaseScript{}, err
	}
	s.MinMax = make([]Option[MinMax], count)
	for i, rec := range s.LangSysRecords {
		name := fmt.Sprintf("MinMax '%s'", rec.Tag)
		if s.MinMax[i], err = followOffset16(c, rec.MinMaxOffset, ctx, name, decodeMinMax); err != nil {
			return BaseScript{}, err
		}
	}
	return s, nil
}

// BaseValues tables come in two layouts: BaseCoords directly following the
// offset array (the default), or BaseCoords linked by the offsets, each
// measured from the beginning of the BaseValues table.
func decodeBaseValues(c *Cursor, ctx *decodeContext) (v BaseValues, err error) {
	v.Start = c.Base()
	if v.DefaultIndex, err = c.ReadU16(); err != nil {
		return BaseValues{}, fmt.Errorf("default baseline index: %w", err)
	}
	count, err := readCount(c, "BaseCoords", MaxCoordCount, 2)
	if err != nil {
		return BaseValues{}, err
	}
	v.CoordOffsets = make([]uint16, count)
	for i := range v.CoordOffsets {
		v.CoordOffsets[i], _ = c.ReadU16()
	}
	v.Coords = make([]Option[BaseCoord], count)
	for i := range v.Coords {
		if ctx != nil && ctx.conf.followOffsets {
			v.Coords[i], err = followBaseCoord(c, v.CoordOffsets[i], ctx)
		} else {
			v.Coords[i], err = readBaseCoord(c, ctx)
		}
		if err != nil {
			return BaseValues{}, fmt.Errorf("BaseCoord #%d: %w", i, err)
		}
	}
	return v, nil
}

func decodeMinMax(c *Cursor, ctx *decodeContext) (mm MinMax, err error) {
	mm.Start = c.Base()
	if mm.MinCoordOffset, err = c.ReadU16(); err != nil {
		return MinMax{}, fmt.Errorf("offset to min coordinate: %w", err)
	}
	if mm.MaxCoordOffset, err = c.ReadU16(); err != nil {
		return MinMax{}, fmt.Errorf("offset to max coordinate: %w", err)
	}
	count, err := readCount(c, "FeatMinMaxRecords", MaxRecordMapCount, 8)
	if err != nil {
		return MinMax{}, err
	}
	mm.FeatMinMaxRecords = make([]FeatMinMaxRecord, count)
	for i := range mm.FeatMinMaxRecords {
		rec := &mm.FeatMinMaxRecords[i]
		rec.Tag, _ = c.ReadTag()
		rec.MinOffset, _ = c.ReadU16()
		rec.MaxOffset, _ = c.ReadU16()
	}
	if mm.MinCoord, err = followBaseCoord(c, mm.MinCoordOffset, ctx); err != nil {
		return MinMax{}, fmt.Errorf("min coordinate: %w", err)
	}
	if mm.MaxCoord, err = followBaseCoord(c, mm.MaxCoordOffset, ctx); err != nil {
		return MinMax{}, fmt.Errorf("max coordinate: %w", err)
	}
	for i := range mm.FeatMinMaxRecords {
		rec := &mm.FeatMinMaxRecords[i]
		if rec.MinCoord, err = followBaseCoord(c, rec.MinOffset, ctx); err != nil {
			return MinMax{}, fmt.Errorf("feature '%s' min coordinate: %w", rec.Tag, err)
		}
		if rec.MaxCoord, err = followBaseCoord(c, rec.MaxOffset, ctx); err != nil {
			return MinMax{}, fmt.Errorf("feature '%s' max coordinate: %w", rec.Tag, err)
		}
	}
	return mm, nil
}

// --- Navigation ------------------------------------------------------------

// MajorMinor returns major and minor BASE table version numbers.
func (b *BaseTable) MajorMinor() (uint16, uint16) {
	if b == nil {
		return 0, 0
	}
	return uint16(b.Version >> 16), uint16(b.Version)
}

// Horizontal returns the horizontal axis table, if present.
func (b *BaseTable) Horizontal() (Axis, bool) {
	if b == nil {
		return Axis{}, false
	}
	return b.HorizAxis.Unwrap()
}

// Vertical returns the vertical axis table, if present.
func (b *BaseTable) Vertical() (Axis, bool) {
	if b == nil {
		return Axis{}, false
	}
	return b.VertAxis.Unwrap()
}

// BaselineTags returns the baseline tags in declaration order.
func (a Axis) BaselineTags() []Tag {
	tl, ok := a.BaseTagList.Unwrap()
	if !ok {
		return nil
	}
	return tl.Tags
}

// Index returns the position of a baseline tag within the list.
func (tl BaseTagList) Index(tag Tag) (int, bool) {
	for i, t := range tl.Tags {
		if t == tag {
			return i, true
		}
	}
	return 0, false
}

// ScriptTags returns the tags of all script records in declaration order.
func (a Axis) ScriptTags() []Tag {
	sl, ok := a.BaseScriptList.Unwrap()
	if !ok {
		return nil
	}
	tags := make([]Tag, len(sl.Records))
	for i, rec := range sl.Records {
		tags[i] = rec.Tag
	}
	return tags
}

// Script returns the BaseScript for a script tag.
func (a Axis) Script(tag Tag) (BaseScript, bool) {
	sl, ok := a.BaseScriptList.Unwrap()
	if !ok {
		return BaseScript{}, false
	}
	for i, rec := range sl.Records {
		if rec.Tag == tag {
			return sl.Scripts[i].Unwrap()
		}
	}
	return BaseScript{}, false
}

// Coordinate returns the coordinate of baseline #i (index into the axis'
// baseline tags) for script s.
func (s BaseScript) Coordinate(i int) (BaseCoord, bool) {
	bv, ok := s.BaseValues.Unwrap()
	if !ok || i < 0 || i >= len(bv.Coords) {
		return BaseCoord{}, false
	}
	return bv.Coords[i].Unwrap()
}

// LangSysMinMax returns the language-specific MinMax for a language system tag.
func (s BaseScript) LangSysMinMax(tag Tag) (MinMax, bool) {
	for i, rec := range s.LangSysRecords {
		if rec.Tag == tag {
			return s.MinMax[i].Unwrap()
		}
	}
	return MinMax{}, false
}

// FeatureMinMax returns the feature-specific min/max record for a feature tag.
func (mm MinMax) FeatureMinMax(tag Tag) (FeatMinMaxRecord, bool) {
	for _, rec := range mm.FeatMinMaxRecords {
		if rec.Tag == tag {
			return rec, true
		}
	}
	return FeatMinMaxRecord{}, false
}
