package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/otbase/ot"
	"github.com/npillmayer/otbase/otquery"
	"github.com/thatisuday/commando"
)

func runBaselinesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f := mustLoadFont(fontPath, parseOptions(flags)...)
	if !f.HasBaselines() {
		if err := f.OT.TableError(ot.BASE); err != nil {
			fatalf("font %s: %v", f.Fontname, err)
		}
		fatalf("font %s has no BASE table", f.Fontname)
	}
	script, lang, err := scriptAndLang(flags)
	if err != nil {
		fatalf("%v", err)
	}
	axisFlag, err := flags["axis"].GetString()
	if err != nil {
		fatalf("invalid --axis flag: %v", err)
	}
	dir, err := parseAxis(axisFlag)
	if err != nil {
		fatalf("%v", err)
	}
	feature, err := parseFeature(flags["feature"])
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Print(formatBaselineReport(f.OT, dir, script, lang, feature))
}

// formatBaselineReport lists the baselines and extents which apply to a
// script and language system on one axis.
func formatBaselineReport(otf *ot.Font, dir otquery.Direction, script, lang, feature ot.Tag) string {
	sb := strings.Builder{}
	scr, ls := otquery.FontSupportsScript(otf, dir, script, lang)
	if scr == 0 {
		sb.WriteString(fmt.Sprintf("no %s baselines in font\n", dir))
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("%s axis, script '%s' -> '%s', language '%s' -> '%s'\n",
		dir, tagName(script), tagName(scr), tagName(lang), tagName(ls)))
	if set, ok := otquery.Baselines(otf, dir, script); ok {
		for _, bl := range set.Baselines {
			marker := " "
			if bl.Tag == set.Default {
				marker = "*"
			}
			sb.WriteString(fmt.Sprintf("%s %s %6d  (format %d)\n", marker, bl.Tag, bl.Position, bl.Format))
		}
	}
	ext, ok := otquery.MinMaxExtent(otf, dir, script, lang, feature)
	if !ok {
		sb.WriteString("extents: none\n")
		return sb.String()
	}
	sb.WriteString("extents:")
	if ext.HasMin {
		sb.WriteString(fmt.Sprintf(" min %d", ext.Min))
	}
	if ext.HasMax {
		sb.WriteString(fmt.Sprintf(" max %d", ext.Max))
	}
	if feature != 0 {
		sb.WriteString(fmt.Sprintf(" (feature '%s')", feature))
	}
	sb.WriteString("\n")
	return sb.String()
}

// tagName renders a tag without its space padding, and an unset tag as "-".
func tagName(t ot.Tag) string {
	if t == 0 {
		return "-"
	}
	return strings.TrimRight(t.String(), " ")
}
