package anim

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestOptionsBeginAnimation(t *testing.T) {
	tl := Float(20, 100).Duration(time.Second).Easing(Linear).BeginAnimation()
	assert.Equal(t, Running, tl.Status())

	assert.Equal(t, Running, tl.Update(500*ms))
	assert.InDelta(t, 60, tl.Value(), 1e-9)

	assert.Equal(t, Completed, tl.Update(500*ms))
	assert.Equal(t, 100.0, tl.Value())
}

func TestOptionsDefaults(t *testing.T) {
	a := Float(0, 1).Build()
	assert.Equal(t, DefaultDuration, a.Duration())

	tl := Float(0, 1).Timeline()
	assert.Equal(t, Idle, tl.Status())
}

func TestOptionsRepeat(t *testing.T) {
	a := Float(0, 10).Duration(time.Second).Times(2).AutoReverse(true).Build()
	assert.Equal(t, 2*time.Second, a.Duration())
	v, _ := a.Animate(1500 * ms)
	assert.InDelta(t, 5, v, 1e-9)

	forever := Float(0, 10).Forever().Build()
	assert.Equal(t, Forever, forever.Duration())
}

func TestOptionsDelayAndBeginTime(t *testing.T) {
	a := Float(0, 10).Duration(time.Second).Delay(500 * ms).BeginTime(200 * ms).Build()
	assert.Equal(t, 1300*ms, a.Duration())

	v, st := a.Animate(100 * ms)
	assert.InDelta(t, 2, v, 1e-9)
	assert.Equal(t, Idle, st)

	v, _ = a.Animate(800 * ms)
	assert.InDelta(t, 5, v, 1e-9)
}

func TestOptionsIsATemplate(t *testing.T) {
	base := Float(0, 10).Duration(time.Second)
	longer := base.Duration(2 * time.Second).To(20)
	assert.Equal(t, time.Second, base.Build().Duration())
	assert.Equal(t, 2*time.Second, longer.Build().Duration())

	v, _ := base.From(5).Build().Animate(0)
	assert.Equal(t, 5.0, v)
}

func TestColorOptions(t *testing.T) {
	black := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}
	tl := ColorOptions(black, white).Duration(time.Second).BeginAnimation()
	assert.Equal(t, black, tl.Value())
	tl.Update(time.Second)
	assert.Equal(t, white, tl.Value())
}

func TestNewOptionsWithAnimatable(t *testing.T) {
	a := NewOptions(Point{}, Point{X: 10, Y: -10}, LerpAnimatable[Point]()).Duration(time.Second).Build()
	v, _ := a.Animate(500 * ms)
	assert.InDelta(t, 5, v.X, 1e-9)
	assert.InDelta(t, -5, v.Y, 1e-9)
}
