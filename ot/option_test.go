package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	var empty Option[int16]
	assert.True(t, empty.IsNone())
	assert.Equal(t, int16(7), empty.Or(7))
	assert.Equal(t, "none", empty.String())
	assert.Panics(t, func() { empty.MustUnwrap() })
	//
	o := Some[int16](-120)
	v, ok := o.Unwrap()
	assert.True(t, ok)
	assert.Equal(t, int16(-120), v)
	assert.Equal(t, "-120", o.String())
	assert.Equal(t, None[Tag](), Option[Tag]{})
}
