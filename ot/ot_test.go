package ot

import (
	"bytes"
	"testing"

	gotext "github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/otbase/internal/fontfixture"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseSampleFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf := parseTestFont(t, fontfixture.SampleFont(), VerifyChecksums)
	assert.Empty(t, otf.Errors())
	assert.Empty(t, otf.Warnings())
	assert.Equal(t, []Tag{BASE, T("head")}, otf.TableTags())
	require.NotNil(t, otf.Base)
	_, ok := otf.Base.Horizontal()
	assert.True(t, ok)
	_, ok = otf.Table(T("GPOS"))
	assert.False(t, ok)
}

func TestParseChecksumWarnings(t *testing.T) {
	font := fontfixture.SampleFont()
	font[len(font)-4] ^= 0x55 // 'head' is last, padded by 2 bytes
	otf := parseTestFont(t, font, VerifyChecksums)
	require.Len(t, otf.Warnings(), 1)
	assert.Equal(t, T("head"), otf.Warnings()[0].Table)
	assert.Contains(t, otf.Warnings()[0].Issue, "checksum")
	otf = parseTestFont(t, font)
	assert.Empty(t, otf.Warnings(), "checksums are verified on request only")
}

func TestParseNotAFont(t *testing.T) {
	_, err := Parse([]byte("OTTO"))
	assert.ErrorIs(t, err, ErrFontFormat)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	//
	font := fontfixture.SampleFont()
	_, err = Parse(font[:len(font)-8])
	assert.ErrorIs(t, err, ErrFontFormat, "tables must lie within the font")
}

func TestParseUnknownFlavour(t *testing.T) {
	font := fontfixture.Sfnt(0x774f4646, fontfixture.Table{Tag: "BASE", Data: fontfixture.SampleBase()})
	otf := parseTestFont(t, font)
	require.Len(t, otf.Warnings(), 1)
	assert.Contains(t, otf.Warnings()[0].Issue, "not supported")
	assert.NotNil(t, otf.Base)
}

func TestParseBrokenBase(t *testing.T) {
	base := fontfixture.NewBuilder().U32(0x00010000).U16(8).U16(0).U16(0x7000).U16(0).Bytes()
	font := fontfixture.Sfnt(fontfixture.TrueType, fontfixture.Table{Tag: "BASE", Data: base})
	otf := parseTestFont(t, font)
	assert.Nil(t, otf.Base)
	require.Len(t, otf.Errors(), 1)
	fe := otf.Errors()[0]
	assert.Equal(t, BASE, fe.Table)
	assert.Equal(t, uint32(28), fe.Offset)
	assert.ErrorIs(t, fe, ErrOutOfBounds)
	_, ok := otf.Table(BASE)
	assert.True(t, ok, "directory entry is still there")
}

func TestParseGoRegular(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	otf := parseTestFont(t, goregular.TTF, VerifyChecksums)
	assert.Equal(t, SfntTrueType, otf.Directory.Version)
	assert.Nil(t, otf.Base, "Go Regular has no BASE table")
	assert.Empty(t, otf.Errors())
	//
	ld, err := gotext.NewLoader(bytes.NewReader(goregular.TTF))
	require.NoError(t, err)
	theirs := ld.Tables()
	require.Len(t, otf.TableTags(), len(theirs))
	for _, tag := range theirs {
		e, ok := otf.Table(Tag(tag))
		require.True(t, ok, "table %s", Tag(tag))
		raw, err := ld.RawTable(tag)
		require.NoError(t, err)
		assert.Equal(t, len(raw), int(e.Length), "length of table %s", e.Tag)
		assert.Equal(t, raw, goregular.TTF[e.Offset:e.Offset+e.Length], "bytes of table %s", e.Tag)
	}
	for _, w := range otf.Warnings() {
		t.Logf("%s", w)
	}
}

// ---------------------------------------------------------------------------

func parseTestFont(t *testing.T, font []byte, opts ...ParseOption) *Font {
	t.Helper()
	otf, err := Parse(font, opts...)
	if err != nil {
		t.Fatalf("cannot parse font: %v", err)
	}
	return otf
}
