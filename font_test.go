package otbase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/otbase/internal/fontfixture"
	"github.com/npillmayer/otbase/ot"
	"github.com/npillmayer/otbase/otquery"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
)

func TestLoadFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otbase")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o600))
	f, err := LoadFont(path, ot.VerifyChecksums)
	require.NoError(t, err)
	assert.Equal(t, path, f.Filepath)
	assert.Equal(t, sfnt.Units(2048), f.UnitsPerEm())
	assert.False(t, f.HasBaselines(), "Go Regular has no BASE table")
	_, ok := f.Baselines(otquery.Horizontal, language.English)
	assert.False(t, ok)
	_, ok = f.OT.Table(ot.T("glyf"))
	assert.True(t, ok)
	//
	_, err = LoadFont(filepath.Join(t.TempDir(), "nofont.ttf"))
	assert.Error(t, err)
}

func TestParseFont(t *testing.T) {
	f, err := ParseFont(goregular.TTF)
	require.NoError(t, err)
	assert.Empty(t, f.Filepath)
	assert.NotEmpty(t, f.Fontname)
	_, err = ParseFont([]byte("OTTO"))
	assert.Error(t, err)
}

func TestFontBaselines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otbase")
	defer teardown()
	//
	otf, err := FromBinary(fontfixture.SampleFont())
	require.NoError(t, err)
	f := &Font{OT: otf}
	require.True(t, f.HasBaselines())
	set, ok := f.Baselines(otquery.Horizontal, language.German)
	require.True(t, ok)
	assert.Equal(t, ot.T("latn"), set.Script)
	hang, _ := set.Position(ot.T("hang"))
	assert.Equal(t, sfnt.Units(fontfixture.SampleLatnHang), hang)
	set, ok = f.Baselines(otquery.Horizontal, language.Greek)
	require.True(t, ok)
	assert.Equal(t, ot.DFLT, set.Script, "Greek falls back to the default script")
	//
	ext, ok := f.Extent(otquery.Horizontal, language.German)
	require.True(t, ok)
	assert.Equal(t, sfnt.Units(fontfixture.SampleDeuMax), ext.Max)
	ext, ok = f.Extent(otquery.Horizontal, language.English)
	require.True(t, ok)
	assert.Equal(t, sfnt.Units(fontfixture.SampleLatnMax), ext.Max)
}
