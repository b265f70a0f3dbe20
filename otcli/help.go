package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "axis", "axes":
		pterm.Info.Println("Axis")
		pterm.Println(`
	BASE has a horizontal and a vertical Axis table, both optional.
	An Axis links to a list of baseline tags and a list of scripts:
	+-----------------------------+
	| Link to BaseTagList         |
	+-----------------------------+
	| Link to BaseScriptList      |
	+-----------------------------+
	Select an axis with 'axis:h' or 'axis:v'.
	`)
	case "script", "scripts":
		pterm.Info.Println("BaseScriptList / BaseScript")
		pterm.Println(`
	BaseScriptList consists of BaseScriptRecords:
	+------------+--------------------+
	| Script Tag | Link to BaseScript |
	+------------+--------------------+
	BaseScriptList behaves as a map.

	A BaseScript links to BaseValues, to a default MinMax and to MinMax tables
	per language system:
	+--------------------------------+
	| Link to BaseValues             |
	+--------------------------------+
	| Link to default MinMax         |
	+--------------+-----------------+
	| Language Tag | Link to MinMax  |
	+--------------+-----------------+
	Scripts not present in the font fall back to DFLT.
	`)
	case "coord", "coords", "basecoord":
		pterm.Info.Println("BaseCoord")
		pterm.Println(`
	A BaseCoord is a position in design units, in one of three formats:
	+--------+-----------------------------------------+
	| 1      | coordinate only                         |
	| 2      | coordinate, glyph and contour point     |
	| 3      | coordinate and Device or Variation data |
	+--------+-----------------------------------------+
	Unknown formats are skipped, unless the CLI is started with -strict.
	`)
	case "lang", "langsys", "minmax", "extent":
		pterm.Info.Println("MinMax")
		pterm.Println(`
	MinMax holds the minimum and maximum extent of glyphs, perpendicular to the axis.
	It may be refined by feature records:
	+-------------+-----------+-----------+
	| Feature Tag | Link: min | Link: max |
	+-------------+-----------+-----------+
	Use 'lang:DEU' to select a language system, 'extent:case' for a feature.
	`)
	default:
		pterm.Info.Println("General Help")
		pterm.Println(`
	quit              leave the CLI
	help[:topic]      topics are axis, script, coord, minmax
	tables            list the table directory
	entry[:i|:tag]    show a single table record
	base              dump the BASE table
	axis:h|v          select an axis
	script:tag        select a script and show its baselines
	lang:tag          select a language system and show its extents
	extent[:feature]  show extents of the current script and language
	errors            list errors and warnings found while parsing
	Commands may be chained on one line, e.g. 'axis:h script:latn lang:DEU'.
	`)
	}
}
