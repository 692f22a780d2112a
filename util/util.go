package util

import (
	"math"
	"sync"

	"github.com/fogleman/ease"
)

// GenerateLut builds a rise-and-fall table: 0 at both ends, 1 in the middle, shaped
// by curve (ease.InOutQuad when nil).
func GenerateLut(length int, curve func(float64) float64) []float64 {
	if curve == nil {
		curve = ease.InOutQuad
	}
	if length < 2 {
		return []float64{curve(0)}
	}
	lut := make([]float64, length)
	last := float64(length - 1)
	for i := range lut {
		lut[i] = curve(1 - math.Abs(2*float64(i)/last-1))
	}
	return lut
}

// Tabulate samples curve at length evenly spaced points from 0 to 1.
func Tabulate(curve func(float64) float64, length int) []float64 {
	if length < 2 {
		length = 2
	}
	lut := make([]float64, length)
	last := float64(length - 1)
	for i := range lut {
		lut[i] = curve(float64(i) / last)
	}
	return lut
}

// Sample reads a table as a curve over [0,1], interpolating between entries.
func Sample(lut []float64) func(float64) float64 {
	return func(t float64) float64 {
		switch {
		case len(lut) == 0:
			return t
		case t <= 0 || len(lut) == 1:
			return lut[0]
		case t >= 1:
			return lut[len(lut)-1]
		}
		pos := t * float64(len(lut)-1)
		i := int(pos)
		frac := pos - float64(i)
		return lut[i] + (lut[i+1]-lut[i])*frac
	}
}

// Memoizer caches look-up tables by name and length. The zero value is ready to use.
type Memoizer struct {
	mu   sync.Mutex
	luts map[memoKey][]float64
}

type memoKey struct {
	name   string
	length int
}

// Get returns the cached table for name and length, building it on first use.
func (m *Memoizer) Get(name string, length int, build func(length int) []float64) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.luts == nil {
		m.luts = make(map[memoKey][]float64)
	}
	key := memoKey{name, length}
	if lut, ok := m.luts[key]; ok {
		return lut
	}
	lut := build(length)
	m.luts[key] = lut
	return lut
}
