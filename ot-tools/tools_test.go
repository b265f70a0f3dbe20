package main

import (
	"testing"

	"github.com/npillmayer/otbase/internal/fontfixture"
	"github.com/npillmayer/otbase/ot"
	"github.com/npillmayer/otbase/otquery"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatisuday/commando"
)

func TestSplitCSVSpace(t *testing.T) {
	assert.Equal(t, []string{"BASE", "head", "GSUB"}, splitCSVSpace("BASE,head GSUB"))
	assert.Empty(t, splitCSVSpace(" , "))
}

func TestParseAxis(t *testing.T) {
	dir, err := parseAxis("v")
	require.NoError(t, err)
	assert.Equal(t, otquery.Vertical, dir)
	dir, err = parseAxis("")
	require.NoError(t, err)
	assert.Equal(t, otquery.Horizontal, dir)
	_, err = parseAxis("diagonal")
	assert.Error(t, err)
}

func TestTraceConfig(t *testing.T) {
	conf := traceConfig(true)
	assert.Equal(t, "Info", conf["trace.font.opentype"])
	assert.Equal(t, "Info", conf["trace.otbase.query"])
	conf = traceConfig(false)
	assert.Equal(t, "Error", conf["trace.otbase"])
	assert.Equal(t, "go", conf["tracing.adapter"])
	//
	assert.False(t, flagSet(map[string]commando.FlagValue{}, "verbose"))
}

func TestTagName(t *testing.T) {
	assert.Equal(t, "DEU", tagName(ot.T("DEU")))
	assert.Equal(t, "yi", tagName(ot.T("yi  ")))
	assert.Equal(t, "latn", tagName(ot.T("latn")))
	assert.Equal(t, "-", tagName(0))
}

func TestBaselineReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf, err := ot.Parse(fontfixture.SampleFont())
	require.NoError(t, err)
	report := formatBaselineReport(otf, otquery.Horizontal, ot.T("latn"), ot.T("DEU"), ot.T("case"))
	assert.Contains(t, report, "script 'latn' -> 'latn', language 'DEU' -> 'DEU'")
	assert.Contains(t, report, "* romn      0")
	assert.Contains(t, report, "ideo   -100  (format 2)")
	assert.Contains(t, report, "extents: min -400 max 1850 (feature 'case')")
	//
	report = formatBaselineReport(otf, otquery.Horizontal, ot.T("latn"), 0, 0)
	assert.Contains(t, report, "language '-' -> 'DFLT'")
	//
	report = formatBaselineReport(otf, otquery.Vertical, ot.T("latn"), 0, 0)
	assert.Equal(t, "no vertical baselines in font\n", report)
}
