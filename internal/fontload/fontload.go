package fontload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a font file's bytes together with an x/image SFNT view,
// which we use for font naming and metrics the BASE reader does not cover.
type ScalableFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", filepath.Base(fontfile), err)
	}
	f.Filepath = fontfile
	if f.Fontname == "" {
		f.Fontname = filepath.Base(fontfile)
	}
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
// A font without a usable name table is accepted, with an empty Fontname.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	for _, id := range []sfnt.NameID{sfnt.NameIDFull, sfnt.NameIDFamily} {
		name, err := f.SFNT.Name(nil, id)
		if err == nil && name != "" {
			f.Fontname = name
			break
		}
		if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
			return nil, err
		}
	}
	return f, nil
}

// UnitsPerEm returns the design grid size of the font.
func (f *ScalableFont) UnitsPerEm() sfnt.Units {
	if f == nil || f.SFNT == nil {
		return 0
	}
	return f.SFNT.UnitsPerEm()
}
