package otquery

import (
	"testing"

	"github.com/npillmayer/otbase/internal/fontfixture"
	"github.com/npillmayer/otbase/ot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// --- Test Suite Preparation ------------------------------------------------

type BaselineTestEnviron struct {
	suite.Suite
	font []byte
	otf  *ot.Font
}

// listen for 'go test' command --> run test methods
func TestBaselineFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otbase.query")
	defer teardown()
	suite.Run(t, new(BaselineTestEnviron))
}

// run once, before test suite methods
func (env *BaselineTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("font.opentype").SetTraceLevel(tracing.LevelError)
	env.font = fontfixture.SampleFont()
	otf, err := ot.Parse(env.font)
	env.Require().NoError(err)
	env.Require().NotNil(otf.Base, "expected sample font to have a BASE table")
	env.otf = otf
	tracing.Select("font.opentype").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *BaselineTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *BaselineTestEnviron) TestBaselines() {
	set, ok := Baselines(env.otf, Horizontal, ot.T("latn"))
	env.Require().True(ok, "expected baselines for Latin")
	env.Equal(ot.T("latn"), set.Script)
	env.Equal(ot.T("romn"), set.Default)
	env.Len(set.Baselines, 3)
	ideo, ok := set.Position(ot.T("ideo"))
	env.True(ok)
	env.Equal(sfnt.Units(fontfixture.SampleLatnIdeo), ideo)
	env.Equal(uint16(2), set.Baselines[1].Format, "ideographic baseline of latn is given as format 2")
	_, ok = set.Position(ot.T("math"))
	env.False(ok, "font has no math baseline")
}

func (env *BaselineTestEnviron) TestBaselinesFallBackToDefault() {
	for _, script := range []ot.Tag{ot.T("cyrl"), ot.T("grek")} {
		set, ok := Baselines(env.otf, Horizontal, script)
		env.Require().True(ok, "expected DFLT baselines for %s", script)
		env.Equal(ot.DFLT, set.Script, "script %s", script)
		hang, _ := set.Position(ot.T("hang"))
		env.Equal(sfnt.Units(fontfixture.SampleHang), hang, "script %s", script)
	}
	_, ok := Baselines(env.otf, Vertical, ot.T("latn"))
	env.False(ok, "sample font has no vertical axis")
}

func (env *BaselineTestEnviron) TestBaselinePosition() {
	p, ok := BaselinePosition(env.otf, Horizontal, ot.T("latn"), ot.T("hang"))
	env.True(ok)
	env.Equal(sfnt.Units(fontfixture.SampleLatnHang), p)
	p, ok = BaselinePosition(env.otf, Horizontal, ot.T("latn"), 0)
	env.True(ok, "zero tag selects the default baseline")
	env.Equal(sfnt.Units(0), p)
	d, ok := BaselineOffset(env.otf, Horizontal, ot.DFLT, ot.T("ideo"), ot.T("romn"))
	env.True(ok)
	env.Equal(sfnt.Units(-fontfixture.SampleIdeo), d)
	_, ok = BaselineOffset(env.otf, Horizontal, ot.DFLT, ot.T("ideo"), ot.T("icfb"))
	env.False(ok)
}

func (env *BaselineTestEnviron) TestMinMaxExtent() {
	ext, ok := MinMaxExtent(env.otf, Horizontal, ot.T("latn"), 0, 0)
	env.Require().True(ok)
	env.Equal(Extent{Min: fontfixture.SampleLatnMin, Max: fontfixture.SampleLatnMax, HasMin: true, HasMax: true}, ext)
	env.Equal(sfnt.Units(fontfixture.SampleLatnMax-fontfixture.SampleLatnMin), ext.Dy())
	//
	ext, ok = MinMaxExtent(env.otf, Horizontal, ot.T("latn"), ot.T("DEU"), 0)
	env.Require().True(ok)
	env.Equal(sfnt.Units(fontfixture.SampleDeuMin), ext.Min)
	env.Equal(sfnt.Units(fontfixture.SampleDeuMax), ext.Max)
	//
	ext, ok = MinMaxExtent(env.otf, Horizontal, ot.T("latn"), ot.T("DEU"), ot.T("case"))
	env.Require().True(ok)
	env.Equal(sfnt.Units(fontfixture.SampleCaseMin), ext.Min, "feature overrides the minimum")
	env.Equal(sfnt.Units(fontfixture.SampleDeuMax), ext.Max, "feature has no maximum")
	//
	ext, ok = MinMaxExtent(env.otf, Horizontal, ot.T("latn"), ot.T("FRA"), 0)
	env.True(ok, "unknown language falls back to the script's extents")
	env.Equal(sfnt.Units(fontfixture.SampleLatnMin), ext.Min)
	//
	_, ok = MinMaxExtent(env.otf, Horizontal, ot.T("cyrl"), 0, 0)
	env.False(ok, "DFLT has no extents")
}

func (env *BaselineTestEnviron) TestFontSupportsScript() {
	scr, lang := FontSupportsScript(env.otf, Horizontal, ot.T("latn"), ot.T("DEU"))
	env.Equal(ot.T("latn"), scr)
	env.Equal(ot.T("DEU"), lang)
	scr, lang = FontSupportsScript(env.otf, Horizontal, ot.T("latn"), ot.T("TRK"))
	env.Equal(ot.T("latn"), scr)
	env.Equal(ot.DFLT, lang)
	scr, lang = FontSupportsScript(env.otf, Horizontal, ot.T("arab"), ot.T("ARA"))
	env.Equal(ot.DFLT, scr)
	env.Equal(ot.DFLT, lang)
	scr, _ = FontSupportsScript(env.otf, Vertical, ot.T("latn"), 0)
	env.Equal(ot.Tag(0), scr)
}

func (env *BaselineTestEnviron) TestHeadInfo() {
	h, ok := HeadInfo(env.font, env.otf)
	env.Require().True(ok, "expected to decode table 'head'")
	env.Equal(uint16(fontfixture.SampleUnitsPerEm), h.UnitsPerEm)
	env.Equal(uint32(0x5F0F3CF5), h.MagicNumber, "expected OpenType head magic number")
	_, ok = HeadInfo(env.font[:100], env.otf)
	env.False(ok, "truncated font bytes")
}

func (env *BaselineTestEnviron) TestScaledBaseline() {
	h, _ := HeadInfo(env.font, env.otf)
	p, _ := BaselinePosition(env.otf, Horizontal, ot.DFLT, ot.T("hang"))
	px := Scale(p, h.UnitsPerEm, fixed.I(12))
	env.Equal(fixed.Int26_6(1500*12*64/1000), px)
	env.Equal(fixed.Int26_6(0), Scale(p, 0, fixed.I(12)))
}

// --- Tests without BASE ----------------------------------------------------

func TestNoBaseTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otbase.query")
	defer teardown()
	//
	otf, err := ot.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("cannot parse Go Regular: %v", err)
	}
	if _, ok := Baselines(otf, Horizontal, ot.T("latn")); ok {
		t.Errorf("expected no baselines for a font without BASE")
	}
	if _, ok := MinMaxExtent(otf, Horizontal, ot.T("latn"), 0, 0); ok {
		t.Errorf("expected no extents for a font without BASE")
	}
	h, ok := HeadInfo(goregular.TTF, otf)
	if !ok || h.UnitsPerEm != 2048 {
		t.Errorf("expected Go Regular to have 2048 units per em, have %d", h.UnitsPerEm)
	}
	if _, ok := Baselines(nil, Horizontal, ot.DFLT); ok {
		t.Errorf("expected nil font to have no baselines")
	}
}
