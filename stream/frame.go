package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
// Frames produced by an animation are shared and must not be modified.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a black Frame of n pixels.
func NewFrame(n int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, n)
	return f
}

// FilledFrame creates a Frame of n pixels set to c.
func FilledFrame(n int, c colorful.Color) *Frame {
	f := NewFrame(n)
	for i := range f.pixels {
		f.pixels[i] = c
	}
	return f
}

// Len is the number of pixels.
func (f *Frame) Len() int { return len(f.pixels) }

// Pixel returns the colour of pixel i.
func (f *Frame) Pixel(i int) colorful.Color { return f.pixels[i] }

// InterpolateFrame merges two frames.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(len(f2.pixels))
	for i := range out.pixels {
		if i < len(f.pixels) {
			out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint)
		} else {
			out.pixels[i] = f2.pixels[i]
		}
	}

	return out
}

// LerpFrame interpolates between two frames.
func LerpFrame(from, to *Frame, t float64) *Frame {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	return from.InterpolateFrame(to, t)
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
