package otquery

import (
	"github.com/npillmayer/otbase/ot"
	"golang.org/x/image/font/sfnt"
)

// Direction selects one of the axes of a BASE table.
type Direction int

// Text layout directions.
const (
	Horizontal Direction = iota // baselines are horizontal lines, y-values
	Vertical                    // baselines are vertical lines, x-values
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Baseline is the position of a named baseline of a script.
type Baseline struct {
	Tag      ot.Tag     // baseline tag, e.g. 'romn' or 'ideo'
	Position sfnt.Units // coordinate along the axis, in design units
	Format   uint16     // BaseCoord format the position was taken from
}

// BaselineSet holds all the baselines a font defines for a script.
type BaselineSet struct {
	Script    ot.Tag // script which has been found in the font; DFLT for a fallback
	Default   ot.Tag // default baseline of the script, 0 if not specified
	Baselines []Baseline
}

// Position returns the position of baseline tag in the set.
func (bs BaselineSet) Position(tag ot.Tag) (sfnt.Units, bool) {
	for _, bl := range bs.Baselines {
		if bl.Tag == tag {
			return bl.Position, true
		}
	}
	return 0, false
}

// Extent describes the minimum and maximum extent of glyphs of a script
// for a language or a feature, perpendicular to the axis.
type Extent struct {
	Min, Max       sfnt.Units
	HasMin, HasMax bool // a font may specify either value only
}

// IsEmpty reports whether neither minimum nor maximum is available.
func (e Extent) IsEmpty() bool {
	return !e.HasMin && !e.HasMax
}

// Dy returns the distance between minimum and maximum extent. It is 0 if
// one of the two is not specified.
func (e Extent) Dy() sfnt.Units {
	if !e.HasMin || !e.HasMax {
		return 0
	}
	return e.Max - e.Min
}
