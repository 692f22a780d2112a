package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameMarshalBinary(t *testing.T) {
	red, err := colorful.Hex("#ff0000")
	require.NoError(t, err)

	b, err := FilledFrame(2, red).MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0, 255, 0, 0, 255, 0, 0}, b)

	b, err = NewFrame(0).MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0}, b)
}

func TestLerpFrame(t *testing.T) {
	black := FilledFrame(3, colorful.Color{})
	white := FilledFrame(3, colorful.Color{R: 1, G: 1, B: 1})

	assert.Same(t, black, LerpFrame(black, white, 0))
	assert.Same(t, white, LerpFrame(black, white, 1))

	mid := LerpFrame(black, white, 0.5)
	assert.Equal(t, 3, mid.Len())
	l := mid.Pixel(0)
	assert.Greater(t, l.R, 0.0)
	assert.Less(t, l.R, 1.0)
}

func TestInterpolateFrameLengths(t *testing.T) {
	short := FilledFrame(1, colorful.Color{})
	long := FilledFrame(3, colorful.Color{R: 1})

	out := short.InterpolateFrame(long, 0.5)
	assert.Equal(t, 3, out.Len())
	assert.Equal(t, long.Pixel(2), out.Pixel(2))
}
