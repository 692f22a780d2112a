package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestGradientGetColor(t *testing.T) {
	g := GradientTable{{Hue: 0, Pos: 0}, {Hue: 100, Pos: 1}}
	assert.Equal(t, colorful.Hcl(50, 1, 0.5), g.GetColor(0.5, 1, 0.5))
	assert.Equal(t, colorful.Hcl(100, 1, 0.05), g.GetColor(2, 1, 0.5))
}

func TestGradientTrail(t *testing.T) {
	f := Rainbow.Trail(20, 10, 0)
	assert.Equal(t, 20, f.Len())
	// The trail repeats every trailLength pixels.
	assert.Equal(t, f.Pixel(3), f.Pixel(13))

	shifted := Rainbow.Trail(20, 10, 0.1)
	assert.Equal(t, f.Pixel(3), shifted.Pixel(4))
}
