package terrain

import (
	"fmt"
	"image"
	"image/color"

	vmath "github.com/Faultbox/voxelspace/pkg/math"
)

// FromImages builds a Map from a colour raster and a height raster of the
// same square, power-of-two size. Colours use the straight RGB channels of
// colorImg; heights use the first channel of heightImg.
func FromImages(colorImg, heightImg image.Image) (*Map, error) {
	cb := colorImg.Bounds()
	hb := heightImg.Bounds()
	if cb.Dx() != hb.Dx() || cb.Dy() != hb.Dy() {
		return nil, fmt.Errorf("%w: colour %dx%d, height %dx%d",
			ErrDimensionMismatch, cb.Dx(), cb.Dy(), hb.Dx(), hb.Dy())
	}
	if cb.Dx() != cb.Dy() {
		return nil, fmt.Errorf("%w: tile is %dx%d, must be square",
			ErrDimensionMismatch, cb.Dx(), cb.Dy())
	}

	size := cb.Dx()
	if !vmath.IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, size)
	}

	colors := make([]Color, size*size)
	heights := make([]uint8, size*size)
	for y := 0; y < size; y++ {
		row := y * size
		for x := 0; x < size; x++ {
			colors[row+x] = colorAt(colorImg, cb.Min.X+x, cb.Min.Y+y)
			heights[row+x] = heightAt(heightImg, hb.Min.X+x, hb.Min.Y+y)
		}
	}

	return New(size, colors, heights)
}

// colorAt reads straight RGB, with fast paths for the common decoder outputs.
func colorAt(img image.Image, x, y int) Color {
	switch im := img.(type) {
	case *image.NRGBA:
		c := im.NRGBAAt(x, y)
		return Color{c.R, c.G, c.B}
	case *image.RGBA:
		if c := im.RGBAAt(x, y); c.A == 0xff {
			return Color{c.R, c.G, c.B}
		}
	case *image.Gray:
		v := im.GrayAt(x, y).Y
		return Color{v, v, v}
	}
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return Color{c.R, c.G, c.B}
}

// heightAt reads the first channel of the pixel.
func heightAt(img image.Image, x, y int) uint8 {
	switch im := img.(type) {
	case *image.Gray:
		return im.GrayAt(x, y).Y
	case *image.NRGBA:
		return im.NRGBAAt(x, y).R
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).R
}
