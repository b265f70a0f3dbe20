package ot

import (
	"fmt"
	"strings"
)

// Diagnostic rendering of decoded tables. The output is meant for humans
// and may change at any time.

type dumper struct {
	sb    strings.Builder
	depth int
}

func (d *dumper) line(format string, args ...any) {
	d.sb.WriteString(strings.Repeat("  ", d.depth))
	fmt.Fprintf(&d.sb, format, args...)
	d.sb.WriteByte('\n')
}

func (d *dumper) indent(f func()) {
	d.depth++
	f()
	d.depth--
}

func (b *BaseTable) String() string {
	if b == nil {
		return "BASE <nil>"
	}
	d := &dumper{}
	major, minor := b.MajorMinor()
	d.line("'BASE' Table - Baseline, version %d.%d", major, minor)
	d.indent(func() {
		if b.ItemVarStoreOffset != 0 {
			d.line("ItemVariationStore @%d", b.ItemVarStoreOffset)
		}
		d.axis("horizontal", b.HorizAxis)
		d.axis("vertical", b.VertAxis)
	})
	return d.sb.String()
}

func (d *dumper) axis(name string, o Option[Axis]) {
	axis, ok := o.Unwrap()
	if !ok {
		d.line("%s Axis: none", name)
		return
	}
	d.line("%s Axis @%d", name, axis.Start)
	d.indent(func() {
		tags := axis.BaselineTags()
		if tl, ok := axis.BaseTagList.Unwrap(); ok {
			d.line("BaseTagList @%d: %s", tl.Start, tagsString(tl.Tags))
		} else {
			d.line("BaseTagList: none")
		}
		sl, ok := axis.BaseScriptList.Unwrap()
		if !ok {
			d.line("BaseScriptList: none")
			return
		}
		d.line("BaseScriptList @%d, %d records", sl.Start, len(sl.Records))
		d.indent(func() {
			for i, rec := range sl.Records {
				d.script(rec.Tag, sl.Scripts[i], tags)
			}
		})
	})
}

func (d *dumper) script(tag Tag, o Option[BaseScript], baselines []Tag) {
	s, ok := o.Unwrap()
	if !ok {
		d.line("'%s' -> none", tag)
		return
	}
	d.line("'%s' -> BaseScript @%d", tag, s.Start)
	d.indent(func() {
		if bv, ok := s.BaseValues.Unwrap(); ok {
			d.line("BaseValues @%d, default baseline %d%s", bv.Start, bv.DefaultIndex,
				baselineName(baselines, int(bv.DefaultIndex)))
			d.indent(func() {
				for i, c := range bv.Coords {
					d.line("[%d]%s %s", i, baselineName(baselines, i), coordString(c))
				}
			})
		}
		if mm, ok := s.DefaultMinMax.Unwrap(); ok {
			d.line("default MinMax @%d", mm.Start)
			d.indent(func() { d.minmax(mm) })
		}
		for i, rec := range s.LangSysRecords {
			mm, ok := s.MinMax[i].Unwrap()
			if !ok {
				d.line("LangSys '%s' -> none", rec.Tag)
				continue
			}
			d.line("LangSys '%s' -> MinMax @%d", rec.Tag, mm.Start)
			d.indent(func() { d.minmax(mm) })
		}
	})
}

func (d *dumper) minmax(mm MinMax) {
	d.line("min %s, max %s", coordString(mm.MinCoord), coordString(mm.MaxCoord))
	for _, rec := range mm.FeatMinMaxRecords {
		d.line("feature '%s': min %s, max %s", rec.Tag, coordString(rec.MinCoord), coordString(rec.MaxCoord))
	}
}

func coordString(o Option[BaseCoord]) string {
	c, ok := o.Unwrap()
	if !ok {
		return "none"
	}
	switch c.Format {
	case 2:
		return fmt.Sprintf("%d (glyph %d, point %d)", c.Coordinate, c.ReferenceGlyph, c.BaseCoordPoint)
	case 3:
		if dev, ok := c.Device.Unwrap(); ok {
			if dev.IsVariationIndex() {
				return fmt.Sprintf("%d (variation index %d/%d)", c.Coordinate, dev.StartSize, dev.EndSize)
			}
			return fmt.Sprintf("%d (device %d..%d ppem)", c.Coordinate, dev.StartSize, dev.EndSize)
		}
	}
	return fmt.Sprintf("%d", c.Coordinate)
}

func baselineName(tags []Tag, i int) string {
	if i < 0 || i >= len(tags) {
		return ""
	}
	return fmt.Sprintf(" '%s'", tags[i])
}

func tagsString(tags []Tag) string {
	if len(tags) == 0 {
		return "(empty)"
	}
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = "'" + t.String() + "'"
	}
	return strings.Join(s, " ")
}
