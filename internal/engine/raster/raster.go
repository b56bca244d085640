// Package raster rasterises voxel spans into a CPU-side RGBA buffer that the
// frontends upload or print.
package raster

import (
	"image"
	"math"

	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
)

// Buffer is an RGBA framebuffer in main memory.
type Buffer struct {
	img *image.RGBA
}

// New creates a buffer of the given size.
func New(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize reallocates the buffer if the size changed. Contents are undefined
// until the next Clear.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if b.img != nil && b.img.Rect.Dx() == width && b.img.Rect.Dy() == height {
		return
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) {
	return b.img.Rect.Dx(), b.img.Rect.Dy()
}

// Clear fills the whole buffer with c.
func (b *Buffer) Clear(c terrain.Color) {
	pix := b.img.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, 0xff
	// Double the filled prefix until it covers the buffer.
	for n := 4; n < len(pix); n *= 2 {
		copy(pix[n:], pix[:n])
	}
}

// DrawLines fills every span. A row r of column X is covered when its centre
// r+0.5 lies in [Top, Bottom), so spans that share an edge never overlap.
func (b *Buffer) DrawLines(lines []voxel.Line) {
	w, h := b.Size()
	stride := b.img.Stride
	pix := b.img.Pix
	for _, l := range lines {
		if l.X < 0 || l.X >= w {
			continue
		}
		y0, y1 := rowRange(l.Top, l.Bottom, h)
		i := y0*stride + l.X*4
		for y := y0; y < y1; y++ {
			pix[i], pix[i+1], pix[i+2], pix[i+3] = l.Color.R, l.Color.G, l.Color.B, 0xff
			i += stride
		}
	}
}

// rowRange returns the rows [y0, y1) whose centres fall in [top, bottom),
// clipped to [0, h).
func rowRange(top, bottom float32, h int) (int, int) {
	y0 := int(math.Ceil(float64(top) - 0.5))
	y1 := int(math.Ceil(float64(bottom) - 0.5))
	return min(max(y0, 0), h), min(max(y1, 0), h)
}

// At returns the colour of a pixel.
func (b *Buffer) At(x, y int) terrain.Color {
	c := b.img.RGBAAt(x, y)
	return terrain.Color{R: c.R, G: c.G, B: c.B}
}

// Pix returns the pixel bytes, row-major RGBA with no row padding.
func (b *Buffer) Pix() []byte {
	return b.img.Pix
}
