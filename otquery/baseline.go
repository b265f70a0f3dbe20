package otquery

import (
	"github.com/npillmayer/otbase/ot"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// --- Font Information -------------------------------------------------

// FontSupportsScript returns a tuple (script-tag, language-tag) for a given input
// of a script tag and a language tag, telling which BASE records will serve
// queries for them. If the language has no special support in the
// font, DFLT will be returned. If the script has no support in the font,
// DFLT will be returned for the script. For fonts without baseline
// information, (0, 0) is returned.
func FontSupportsScript(otf *ot.Font, dir Direction, scr ot.Tag, lang ot.Tag) (ot.Tag, ot.Tag) {
	axis, ok := axisOf(otf, dir)
	if !ok {
		return 0, 0
	}
	script, found, ok := scriptOf(axis, scr)
	if !ok {
		return 0, 0
	}
	if found != scr {
		tracer().Infof("cannot find script %s in BASE, using %s", scr, found)
		return found, ot.DFLT
	}
	if _, ok := script.LangSysMinMax(lang); ok {
		return scr, lang
	}
	return scr, ot.DFLT
}

// Baselines returns the baseline positions of a script. If the font does not
// contain baseline information for the script, the baselines of the default
// script (DFLT) are returned, if any.
func Baselines(otf *ot.Font, dir Direction, script ot.Tag) (BaselineSet, bool) {
	axis, ok := axisOf(otf, dir)
	if !ok {
		return BaselineSet{}, false
	}
	s, found, ok := scriptOf(axis, script)
	if !ok {
		return BaselineSet{}, false
	}
	bv, ok := s.BaseValues.Unwrap()
	if !ok {
		return BaselineSet{}, false
	}
	tags := axis.BaselineTags()
	set := BaselineSet{Script: found}
	if int(bv.DefaultIndex) < len(tags) {
		set.Default = tags[bv.DefaultIndex]
	}
	for i, o := range bv.Coords {
		bc, ok := o.Unwrap()
		if !ok || i >= len(tags) {
			continue
		}
		set.Baselines = append(set.Baselines, Baseline{
			Tag:      tags[i],
			Position: sfnt.Units(bc.Coordinate),
			Format:   bc.Format,
		})
	}
	return set, true
}

// BaselinePosition returns the position of a single baseline for a script.
// A zero baseline tag selects the default baseline of the script.
func BaselinePosition(otf *ot.Font, dir Direction, script, baseline ot.Tag) (sfnt.Units, bool) {
	set, ok := Baselines(otf, dir, script)
	if !ok {
		return 0, false
	}
	if baseline == 0 {
		baseline = set.Default
	}
	return set.Position(baseline)
}

// BaselineOffset returns the distance to move glyphs of a script from
// baseline `from` to baseline `to`, e.g. to align ideographs on the roman
// baseline of a Latin run.
func BaselineOffset(otf *ot.Font, dir Direction, script, from, to ot.Tag) (sfnt.Units, bool) {
	set, ok := Baselines(otf, dir, script)
	if !ok {
		return 0, false
	}
	p, ok1 := set.Position(from)
	q, ok2 := set.Position(to)
	if !ok1 || !ok2 {
		return 0, false
	}
	return q - p, true
}

// MinMaxExtent returns the extent of glyphs for a script and language system.
// If lang is 0 or not present in the font, the script's default extents are
// used. If feature is not 0 and the font carries feature-specific extents,
// these take precedence where given.
func MinMaxExtent(otf *ot.Font, dir Direction, script, lang, feature ot.Tag) (Extent, bool) {
	axis, ok := axisOf(otf, dir)
	if !ok {
		return Extent{}, false
	}
	s, _, ok := scriptOf(axis, script)
	if !ok {
		return Extent{}, false
	}
	mm, ok := s.LangSysMinMax(lang)
	if !ok || lang == 0 {
		if mm, ok = s.DefaultMinMax.Unwrap(); !ok {
			return Extent{}, false
		}
	}
	ext := extentOf(mm.MinCoord, mm.MaxCoord)
	if feature != 0 {
		if rec, ok := mm.FeatureMinMax(feature); ok {
			f := extentOf(rec.MinCoord, rec.MaxCoord)
			if f.HasMin {
				ext.Min, ext.HasMin = f.Min, true
			}
			if f.HasMax {
				ext.Max, ext.HasMax = f.Max, true
			}
		}
	}
	return ext, !ext.IsEmpty()
}

// Scale converts a value in design units to a size in pixels (26.6 fixed
// point), for a font of unitsPerEm at ppem pixels per em.
func Scale(u sfnt.Units, unitsPerEm uint16, ppem fixed.Int26_6) fixed.Int26_6 {
	if unitsPerEm == 0 {
		return 0
	}
	return fixed.Int26_6(int64(u) * int64(ppem) / int64(unitsPerEm))
}

// ---------------------------------------------------------------------------

func axisOf(otf *ot.Font, dir Direction) (ot.Axis, bool) {
	if otf == nil || otf.Base == nil {
		return ot.Axis{}, false
	}
	if dir == Vertical {
		return otf.Base.Vertical()
	}
	return otf.Base.Horizontal()
}

// scriptOf finds the BaseScript for tag, falling back to DFLT.
func scriptOf(axis ot.Axis, tag ot.Tag) (ot.BaseScript, ot.Tag, bool) {
	if s, ok := axis.Script(tag); ok {
		return s, tag, true
	}
	s, ok := axis.Script(ot.DFLT)
	return s, ot.DFLT, ok
}

func extentOf(lo, hi ot.Option[ot.BaseCoord]) Extent {
	var ext Extent
	if v, ok := ot.Coord(lo); ok {
		ext.Min, ext.HasMin = sfnt.Units(v), true
	}
	if v, ok := ot.Coord(hi); ok {
		ext.Max, ext.HasMax = sfnt.Units(v), true
	}
	return ext
}
