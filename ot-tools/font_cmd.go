package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/otbase"
	"github.com/npillmayer/otbase/ot"
	"github.com/npillmayer/otbase/otquery"
	"github.com/thatisuday/commando"
)

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f := mustLoadFont(fontPath, parseOptions(flags)...)
	otf := f.OT

	fmt.Printf("Path: %s\n", fontPath)
	fmt.Printf("Name: %s\n", f.Fontname)
	fmt.Printf("Type: %s\n", otf.Directory.Version)
	if h, ok := otquery.HeadInfo(f.Binary, otf); ok {
		fmt.Printf("Units per em: %d\n", h.UnitsPerEm)
	}

	tags := otf.TableTags()
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	fmt.Printf("Tables (%d):", len(tags))
	for _, tag := range tags {
		fmt.Printf(" %s", tag.String())
	}
	fmt.Println()
	printBaseSummary(f)

	errs := otf.Errors()
	warns := otf.Warnings()
	fmt.Printf("Issues: errors=%d warnings=%d\n", len(errs), len(warns))

	if len(args["tables"].Value) > 0 {
		printSelectedTables(f, args["tables"].Value)
	}
	if mustFlagBool(flags["errors"], "errors") {
		for _, e := range errs {
			fmt.Printf("error: %s\n", e.Error())
		}
		for _, w := range warns {
			fmt.Printf("warning: %s\n", w.String())
		}
	}
}

func printBaseSummary(f *otbase.Font) {
	if !f.HasBaselines() {
		fmt.Println("BASE: none")
		return
	}
	major, minor := f.OT.Base.MajorMinor()
	fmt.Printf("BASE: version %d.%d\n", major, minor)
	for _, dir := range []otquery.Direction{otquery.Horizontal, otquery.Vertical} {
		axis, ok := f.OT.Base.Horizontal()
		if dir == otquery.Vertical {
			axis, ok = f.OT.Base.Vertical()
		}
		if !ok {
			fmt.Printf("  %s: none\n", dir)
			continue
		}
		fmt.Printf("  %s: baselines %v, scripts %v\n", dir, axis.BaselineTags(), axis.ScriptTags())
	}
}

func printSelectedTables(f *otbase.Font, raw string) {
	for _, t := range splitCSVSpace(raw) {
		tagName := strings.TrimSpace(t)
		if tagName == "" {
			continue
		}
		e, ok := f.OT.Table(ot.T(tagName))
		if !ok {
			fmt.Printf("table %s: missing\n", tagName)
			continue
		}
		fmt.Printf("table %s: offset=%d size=%d\n", tagName, e.Offset, e.Length)
		if err := f.OT.TableError(e.Tag); err != nil {
			fmt.Printf("table %s: %v\n", tagName, err)
		}
	}
}
