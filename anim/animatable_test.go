package anim

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestLerpNumbers(t *testing.T) {
	assert.Equal(t, 20.0, LerpFloat64(20, 100, 0))
	assert.Equal(t, 100.0, LerpFloat64(20, 100, 1))
	assert.InDelta(t, 60, LerpFloat64(20, 100, 0.5), 1e-9)
	assert.InDelta(t, float32(1.5), LerpFloat32(1, 2, 0.5), 1e-6)

	assert.Equal(t, 3, LerpInt(0, 10, 0.26))
	assert.Equal(t, 7, LerpInt(10, 0, 0.26))
	assert.Equal(t, -3, LerpInt(0, -10, 0.26))
	assert.Equal(t, uint8(255), LerpInt(uint8(0), uint8(255), 1))
	assert.Equal(t, 500*time.Millisecond, LerpDuration(0, time.Second, 0.5))
}

func TestLerpBool(t *testing.T) {
	assert.False(t, LerpBool(false, true, 0))
	assert.False(t, LerpBool(false, true, 0.99))
	assert.True(t, LerpBool(false, true, 1))
}

func TestLerpColor(t *testing.T) {
	black := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}

	assert.Equal(t, black, LerpColor(black, white, 0))
	assert.Equal(t, white, LerpColor(black, white, 1))
	mid := LerpColor(black, white, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)

	assert.Equal(t, black, LerpColorHcl(black, white, 0))
	assert.Equal(t, white, LerpColorHcl(black, white, 1))
}

func TestLerpComposite(t *testing.T) {
	s := Size{Width: 10, Height: 20}.Animate(Size{Width: 20, Height: 40}, 0.5)
	assert.Equal(t, Size{Width: 15, Height: 30}, s)

	lerp := LerpSlice(LerpFloat64)
	assert.Equal(t, []float64{5, 10, 7}, lerp([]float64{0, 0}, []float64{10, 20, 7}, 0.5))

	pair := LerpPair(LerpFloat64, LerpBool)
	p := pair(Pair[float64, bool]{0, false}, Pair[float64, bool]{4, true}, 0.5)
	assert.Equal(t, Pair[float64, bool]{2, false}, p)
}
