// Package terrain holds the colour and height buffers of a terrain tile and
// samples them with toroidal wrap-around.
package terrain

import (
	"errors"
	"fmt"

	vmath "github.com/Faultbox/voxelspace/pkg/math"
)

// Load errors. A failed construction never yields a partial Map.
var (
	ErrDimensionMismatch = errors.New("terrain: colour and height images differ in dimensions")
	ErrNotPowerOfTwo     = errors.New("terrain: size is not a power of two")
)

// Color is an opaque RGB terrain colour.
type Color struct {
	R, G, B uint8
}

// RGB creates a colour from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// Map is one square terrain tile. It is immutable after construction; a
// terrain switch replaces the whole Map.
type Map struct {
	size    int
	mask    int
	shift   int
	colors  []Color
	heights []uint8
}

// New builds a Map from flattened row-major buffers of length size*size.
// The buffers are owned by the Map afterwards.
func New(size int, colors []Color, heights []uint8) (*Map, error) {
	if !vmath.IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, size)
	}
	n := size * size
	if len(colors) != n || len(heights) != n {
		return nil, fmt.Errorf("%w: %d colours, %d heights, want %d",
			ErrDimensionMismatch, len(colors), len(heights), n)
	}
	return &Map{
		size:    size,
		mask:    size - 1,
		shift:   vmath.Log2(size),
		colors:  colors,
		heights: heights,
	}, nil
}

// Size returns the side length of the tile.
func (m *Map) Size() int {
	return m.size
}

// Sample returns the colour and height at (x, y). Both coordinates wrap into
// [0, size) by masking, which is also correct for negative values.
func (m *Map) Sample(x, y int) (Color, uint8) {
	idx := x&m.mask + (y&m.mask)<<m.shift
	return m.colors[idx], m.heights[idx]
}
