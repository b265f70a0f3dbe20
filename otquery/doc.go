/*
Package otquery answers typesetting questions from the decoded tables of a font.

Package ot decodes the BASE table as it is found in the font. Clients in a
text layout engine usually want something simpler: "where is the ideographic
baseline for Japanese text?", "how far may accents of German capitals extend?".
otquery answers such questions, falling back to the default script where a
font does not cover a script, and reports values in font design units.

Language and script information is accepted as golang.org/x/text/language
values and mapped to OpenType script and language system tags.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otbase.query'
func tracer() tracing.Trace {
	return tracing.Select("otbase.query")
}
