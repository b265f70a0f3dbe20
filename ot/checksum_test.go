package ot

import (
	"testing"

	"github.com/npillmayer/otbase/internal/fontfixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, uint32(0), Checksum(nil))
	assert.Equal(t, uint32(0x00010002), Checksum([]byte{0, 1, 0, 2}))
	assert.Equal(t, uint32(0x00010002+0x03000000), Checksum([]byte{0, 1, 0, 2, 3}), "partial words are zero padded")
	assert.Equal(t, uint32(0), Checksum([]byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 1}), "sum wraps around")
}

func TestVerifyChecksum(t *testing.T) {
	font := fontfixture.SampleFont()
	td, err := ParseTableDirectory(NewCursor(font))
	require.NoError(t, err)
	for _, e := range td.Entries() {
		assert.NoError(t, VerifyChecksum(font, e), "table %s", e.Tag)
	}
	e, _ := td.EntryByTag(BASE)
	font[e.Offset+1] ^= 0x01
	assert.ErrorIs(t, VerifyChecksum(font, e), ErrChecksum)
	e.Length = uint32(len(font))
	assert.ErrorIs(t, VerifyChecksum(font, e), ErrOutOfBounds)
}

func TestVerifyChecksumHead(t *testing.T) {
	font := fontfixture.SampleFont()
	td, err := ParseTableDirectory(NewCursor(font))
	require.NoError(t, err)
	head, ok := td.EntryByTag(T("head"))
	require.True(t, ok)
	font[head.Offset+8] = 0x12 // checkSumAdjustment does not count
	assert.NoError(t, VerifyChecksum(font, head))
}
