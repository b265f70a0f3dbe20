/*
Package ot provides access to the table directory and the baseline table of
sfnt fonts (TrueType and OpenType).
Intended audience for this package are:

▪︎ text layout engines, which need to align glyphs of different scripts and sizes

▪︎ font tooling, which needs to look at the structure of a font file

Package `ot` will not provide functions to interpret the tables, but rather
just expose them to the client. For example, it is not possible to ask
package `ot` for the position of the ideographic baseline of a script in a
certain size. Clients have to check for the availability of baseline
information and consult the BASE table themselves. Functions for this are
homed in a sister package.

Font tables consist of sub-tables, linked by offsets. An offset is measured from
the start of the sub-table containing it, never from the start of the font.
This package decodes such sub-table trees completely, and the resulting
values do not reference the font's bytes any more. Decoding never reads
outside the byte extent of a table: the bytes of untrusted fonts may contain
anything, and every count and offset is checked before use.

Errors are reported using the error kinds of this package (ErrOutOfBounds,
ErrUnknownVariant, etc.), to be checked with errors.Is. A table which is
missing from a font is not an error.

# Status

Decodes the table directory and the BASE table. No font collections nor
variable fonts are supported yet, though the item variation store offset of
BASE version 1.1 is kept.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
