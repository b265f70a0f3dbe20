package main

import (
	"testing"

	"github.com/npillmayer/otbase"
	"github.com/npillmayer/otbase/internal/fontfixture"
	"github.com/npillmayer/otbase/ot"
	"github.com/npillmayer/otbase/otquery"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIntp(t *testing.T) *Intp {
	otf, err := ot.Parse(fontfixture.SampleFont())
	require.NoError(t, err)
	return &Intp{font: &otbase.Font{Fontname: "sample", OT: otf}}
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otbase.cli")
	defer teardown()
	//
	intp := &Intp{}
	cmd, err := intp.parseCommand("axis:h script:latn lang:DEU")
	require.NoError(t, err)
	assert.Equal(t, 3, cmd.count)
	assert.Equal(t, AXIS, cmd.op[0].code)
	assert.Equal(t, "h", cmd.op[0].arg)
	assert.Equal(t, SCRIPT, cmd.op[1].code)
	assert.Equal(t, "latn", cmd.op[1].arg)
	assert.Equal(t, LANG, cmd.op[2].code)
	assert.Equal(t, NOOP, cmd.op[3].code)
	//
	cmd, err = intp.parseCommand("frobnicate")
	require.NoError(t, err)
	assert.Equal(t, HELP, cmd.op[0].code, "unknown commands show help")
	cmd, err = intp.parseCommand("quit base")
	require.NoError(t, err)
	assert.Equal(t, QUIT, cmd.op[0].code)
}

func TestNavigateSampleFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otbase.cli")
	defer teardown()
	//
	intp := sampleIntp(t)
	cmd, err := intp.parseCommand("tables entry:1 base axis:h script:latn lang:DEU extent:case errors")
	require.NoError(t, err)
	err, stop := intp.execute(cmd)
	require.NoError(t, err)
	assert.False(t, stop)
	assert.Equal(t, otquery.Horizontal, intp.axis)
	assert.Equal(t, ot.T("latn"), intp.script)
	assert.Equal(t, ot.T("DEU"), intp.lang)
	//
	cmd, _ = intp.parseCommand("axis:v")
	err, _ = intp.execute(cmd)
	require.NoError(t, err)
	assert.Equal(t, ot.Tag(0), intp.script, "switching axis resets the script")
	cmd, _ = intp.parseCommand("quit")
	_, stop = intp.execute(cmd)
	assert.True(t, stop)
}

func TestCommandErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otbase.cli")
	defer teardown()
	//
	intp := sampleIntp(t)
	err, _ := langOp(intp, &Op{code: LANG, arg: "DEU"})
	assert.ErrorIs(t, err, ErrNoScript)
	err, _ = axisOp(intp, &Op{code: AXIS, arg: "x"})
	assert.Error(t, err)
	err, _ = entryOp(intp, &Op{code: ENTRY, arg: "GSUB"})
	assert.Error(t, err)
	err, _ = entryOp(intp, &Op{code: ENTRY, arg: "7"})
	assert.ErrorIs(t, err, ot.ErrIndexOutOfRange)
	//
	empty := &Intp{}
	err, _ = baseOp(empty, &Op{code: BASE})
	assert.ErrorIs(t, err, ErrNoBase)
	assert.Equal(t, "()", empty.String())
}

func TestParseOptions(t *testing.T) {
	assert.Len(t, parseOptions(false, false, false), 0)
	assert.Len(t, parseOptions(true, true, true), 3)
}
