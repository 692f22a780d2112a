package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientStop is a hue at a position of a GradientTable.
type GradientStop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []GradientStop

// Rainbow is the default gradient.
var Rainbow = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquiose
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Nothing found? Means we're at (or past) the last gradient keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, 1.0, 0.05)
}

// Trail renders the gradient repeating every trailLength pixels, shifted along the
// strip by offset (0..1 of a trail).
func (g GradientTable) Trail(pixels, trailLength int, offset float64) *Frame {
	f := NewFrame(pixels)
	saturation := 1.0
	luminance := 0.05
	trail := float64(trailLength)
	current := offset * trail
	for i := 0; i < pixels; i++ {
		t := math.Mod(float64(i+pixels)-current, trail) / trail
		if t < 0 {
			t += 1
		}
		f.pixels[i] = g.GetColor(t, saturation, luminance)
	}

	return f
}
