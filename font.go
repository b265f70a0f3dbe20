/*
Package otbase reads the baseline information of OpenType fonts.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "font" is a variant of a typeface with a certain weight, slant, etc.
An example is "Helvetica regular".

▪︎ A "baseline" is a line along which glyphs of a script are aligned.
Latin glyphs sit on the roman baseline, ideographs on the ideographic
baseline, Devanagari glyphs hang from the hanging baseline. Mixing scripts
in a line of text requires moving runs from one baseline to another, and
the OpenType BASE table tells by how much.

Package otbase is the entry point for clients: it loads fonts and hands
out the decoded tables. Table decoding is done in package ot, typesetting
queries live in package otquery.

# Status

Does not yet contain methods for font collections (*.ttc), e.g.,
/System/Library/Fonts/Helvetica.ttc on Mac OS.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otbase

import (
	"github.com/npillmayer/otbase/internal/fontload"
	"github.com/npillmayer/otbase/ot"
	"github.com/npillmayer/otbase/otquery"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'otbase'
func tracer() tracing.Trace {
	return tracing.Select("otbase")
}

// Font is a font loaded from a file or from memory, together with its
// decoded tables.
type Font struct {
	Fontname string
	Filepath string   // empty for fonts parsed from memory
	Binary   []byte   // raw data, must not be changed by clients
	OT       *ot.Font // decoded tables
	sf       *sfnt.Font
}

// FromBinary parses raw OpenType bytes and returns a decoded font.
//
// The input is expected to contain a complete single-font SFNT stream.
func FromBinary(data []byte, opts ...ot.ParseOption) (*ot.Font, error) {
	return ot.Parse(data, opts...)
}

// LoadFont loads an OpenType font (TTF or OTF) from a file and decodes it.
func LoadFont(fontfile string, opts ...ot.ParseOption) (*Font, error) {
	sf, err := fontload.LoadOpenTypeFont(fontfile)
	if err != nil {
		return nil, err
	}
	return decode(sf, opts)
}

// ParseFont decodes an OpenType font (TTF or OTF) from memory.
func ParseFont(data []byte, opts ...ot.ParseOption) (*Font, error) {
	sf, err := fontload.ParseOpenTypeFont(data)
	if err != nil {
		return nil, err
	}
	return decode(sf, opts)
}

func decode(sf *fontload.ScalableFont, opts []ot.ParseOption) (*Font, error) {
	otf, err := ot.Parse(sf.Binary, opts...)
	if err != nil {
		return nil, err
	}
	f := &Font{
		Fontname: sf.Fontname,
		Filepath: sf.Filepath,
		Binary:   sf.Binary,
		OT:       otf,
		sf:       sf.SFNT,
	}
	for _, e := range otf.Errors() {
		tracer().Errorf("font %s: %s", f.Fontname, e)
	}
	tracer().Debugf("loaded and parsed font %s, BASE = %v", f.Fontname, otf.Base != nil)
	return f, nil
}

// UnitsPerEm returns the design grid size of the font.
func (f *Font) UnitsPerEm() sfnt.Units {
	if f.sf == nil {
		return 0
	}
	return f.sf.UnitsPerEm()
}

// HasBaselines reports whether the font carries a usable BASE table.
func (f *Font) HasBaselines() bool {
	return f != nil && f.OT != nil && f.OT.Base != nil
}

// Baselines returns the baselines the font defines for text in a language.
// The script is taken from lang, or derived from it if lang does not name one.
func (f *Font) Baselines(dir otquery.Direction, lang language.Tag) (otquery.BaselineSet, bool) {
	if !f.HasBaselines() {
		return otquery.BaselineSet{}, false
	}
	script, _ := otquery.ForLanguage(lang)
	return otquery.Baselines(f.OT, dir, script)
}

// Extent returns the min/max extent of glyphs for text in a language.
func (f *Font) Extent(dir otquery.Direction, lang language.Tag) (otquery.Extent, bool) {
	if !f.HasBaselines() {
		return otquery.Extent{}, false
	}
	script, langsys := otquery.ForLanguage(lang)
	return otquery.MinMaxExtent(f.OT, dir, script, langsys, 0)
}
