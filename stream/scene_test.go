package stream

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = colorful.Color{}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

func fade(from, to string, d time.Duration) SceneConfig {
	return SceneConfig{Kind: "fade", From: from, To: to, Duration: d}
}

func TestBuildFade(t *testing.T) {
	a, err := NewSceneBuilder(4).Build(fade("#000000", "#ffffff", time.Second))
	require.NoError(t, err)
	assert.Equal(t, time.Second, a.Duration())

	f, st := a.Animate(0)
	assert.Equal(t, black, f.Pixel(0))
	assert.Equal(t, anim.Idle, st)

	f, st = a.Animate(time.Second)
	assert.Equal(t, white, f.Pixel(3))
	assert.Equal(t, anim.Completed, st)
}

func TestBuildFadeRepeat(t *testing.T) {
	sc := fade("#000000", "#ffffff", time.Second)
	sc.Times = 2
	sc.AutoReverse = true
	sc.Delay = 500 * time.Millisecond
	sc.Easing = "inOutSine"
	sc.Lut = 32

	a, err := NewSceneBuilder(1).Build(sc)
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, a.Duration())

	f, _ := a.Animate(1500 * time.Millisecond)
	assert.Equal(t, white, f.Pixel(0))
	f, st := a.Animate(2500 * time.Millisecond)
	assert.Equal(t, black, f.Pixel(0))
	assert.Equal(t, anim.Completed, st)
}

func TestBuildPulse(t *testing.T) {
	sc := SceneConfig{Kind: "pulse", From: "#000000", To: "#ffffff", Duration: time.Second, Lut: 5}
	a, err := NewSceneBuilder(1).Build(sc)
	require.NoError(t, err)

	f, _ := a.Animate(500 * time.Millisecond)
	assert.Equal(t, white, f.Pixel(0))
	f, st := a.Animate(time.Second)
	assert.Equal(t, black, f.Pixel(0))
	assert.Equal(t, anim.Completed, st)
}

func TestBuildGradient(t *testing.T) {
	sc := SceneConfig{Kind: "gradient", Duration: 2 * time.Second, TrailLength: 10, Forever: true}
	a, err := NewSceneBuilder(20).Build(sc)
	require.NoError(t, err)
	assert.Equal(t, anim.Forever, a.Duration())

	f, st := a.Animate(time.Second)
	assert.Equal(t, 20, f.Len())
	assert.Equal(t, anim.Running, st)
	assert.Equal(t, Rainbow.Trail(20, 10, 0.5).Pixel(0), f.Pixel(0))
}

func TestBuildSteps(t *testing.T) {
	sc := SceneConfig{Kind: "steps", Colours: []string{"#000000", "#ffffff"}, Duration: 100 * time.Millisecond, Times: 2}
	a, err := NewSceneBuilder(2).Build(sc)
	require.NoError(t, err)
	assert.Equal(t, 400*time.Millisecond, a.Duration())

	f, _ := a.Animate(150 * time.Millisecond)
	assert.Equal(t, white, f.Pixel(1))
	f, _ = a.Animate(250 * time.Millisecond)
	assert.Equal(t, black, f.Pixel(1))
}

func TestBuildErrors(t *testing.T) {
	b := NewSceneBuilder(1)
	tests := []struct {
		name  string
		scene SceneConfig
	}{
		{"unknown kind", SceneConfig{Kind: "sparkle"}},
		{"unknown easing", SceneConfig{From: "#000000", To: "#ffffff", Easing: "wobble"}},
		{"bad colour", fade("black", "#ffffff", time.Second)},
		{"steps without colours", SceneConfig{Kind: "steps"}},
		{"bad step colour", SceneConfig{Kind: "steps", Colours: []string{"#zzzzzz"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Build(tt.scene)
			assert.Error(t, err)
		})
	}

	_, err := b.BuildAll(nil)
	assert.ErrorIs(t, err, ErrNoScenes)
}

func TestShow(t *testing.T) {
	scenes, err := NewSceneBuilder(1).BuildAll([]SceneConfig{
		fade("#000000", "#ffffff", time.Second),
		fade("#ffffff", "#000000", time.Second),
	})
	require.NoError(t, err)

	once := Show(scenes, false)
	assert.Equal(t, 2*time.Second, once.Duration())
	f, _ := once.Animate(time.Second)
	assert.Equal(t, white, f.Pixel(0))

	looped := Show(scenes, true)
	assert.Equal(t, anim.Forever, looped.Duration())
	f, st := looped.Animate(time.Hour + time.Second)
	assert.Equal(t, white, f.Pixel(0))
	assert.Equal(t, anim.Running, st)
}

func TestCrossFade(t *testing.T) {
	b := NewSceneBuilder(1)
	from, err := b.Build(SceneConfig{Kind: "steps", Colours: []string{"#000000"}, Duration: time.Hour})
	require.NoError(t, err)
	to, err := b.Build(SceneConfig{Kind: "steps", Colours: []string{"#ffffff"}, Duration: time.Second})
	require.NoError(t, err)

	x := crossFade(from, to, 500*time.Millisecond)
	assert.Equal(t, time.Second, x.Duration())

	f, _ := x.Animate(0)
	assert.Equal(t, black, f.Pixel(0))
	f, _ = x.Animate(250 * time.Millisecond)
	assert.NotEqual(t, black, f.Pixel(0))
	assert.NotEqual(t, white, f.Pixel(0))
	f, _ = x.Animate(500 * time.Millisecond)
	assert.Equal(t, white, f.Pixel(0))

	assert.Same(t, to, crossFade(from, to, 0))
}
