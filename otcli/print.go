package main

import (
	"fmt"

	"github.com/npillmayer/otbase/ot"
	"github.com/npillmayer/otbase/otquery"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/sfnt"
)

func printDirectory(td *ot.TableDirectory) {
	if td == nil {
		pterm.Error.Println("table directory is nil")
		return
	}
	pterm.Printf("%s font with %d tables\n", td.Version, td.Len())
	data := [][]string{
		{"Index", "Tag", "Offset", "Length", "Checksum"},
	}
	for i, e := range td.Entries() {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			e.Tag.String(),
			fmt.Sprintf("0x%x", e.Offset),
			fmt.Sprintf("%d", e.Length),
			fmt.Sprintf("0x%08x", e.Checksum),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printBaselines(set otquery.BaselineSet) {
	pterm.Printf("script '%s', default baseline '%s'\n", set.Script, set.Default)
	if len(set.Baselines) == 0 {
		return
	}
	data := [][]string{
		{"Baseline", "Position", "Format"},
	}
	for _, bl := range set.Baselines {
		data = append(data, []string{
			bl.Tag.String(),
			fmt.Sprintf("%d", bl.Position),
			fmt.Sprintf("%d", bl.Format),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printExtent(ext otquery.Extent) {
	pterm.Printf("min = %s, max = %s\n", formatUnits(ext.Min, ext.HasMin), formatUnits(ext.Max, ext.HasMax))
}

func printErrors(errs []ot.FontError, warnings []ot.FontWarning) {
	if len(errs) == 0 && len(warnings) == 0 {
		pterm.Println("no errors or warnings")
		return
	}
	data := [][]string{
		{"Kind", "Table", "Message"},
	}
	for _, e := range errs {
		data = append(data, []string{e.Severity.String(), formatTableTag(e.Table), e.Error()})
	}
	for _, w := range warnings {
		data = append(data, []string{"warning", formatTableTag(w.Table), w.Issue})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func formatUnits(u sfnt.Units, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprintf("%d", u)
}

func formatTableTag(tag ot.Tag) string {
	if tag == 0 {
		return "directory"
	}
	return tag.String()
}
