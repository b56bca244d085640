package terrain

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	vmath "github.com/Faultbox/voxelspace/pkg/math"
)

// GenerateOptions controls procedural terrain generation.
// Period is the number of lattice cells across the tile for the first octave;
// each further octave doubles it so the result tiles seamlessly.
type GenerateOptions struct {
	Size    int
	Seed    int64
	Octaves int
	Period  int
	Gain    float64
}

// DefaultGenerateOptions returns options for a 512x512 tile.
func DefaultGenerateOptions(seed int64) GenerateOptions {
	return GenerateOptions{
		Size:    512,
		Seed:    seed,
		Octaves: 6,
		Period:  4,
		Gain:    0.5,
	}
}

// gradientStop is a palette entry keyed by normalised height.
type gradientStop struct {
	at  float64
	col colorful.Color
}

// palette runs from water through sand, grass and rock to snow.
var palette = []gradientStop{
	{0.00, mustHex("#1b3a5c")},
	{0.30, mustHex("#2f6f8f")},
	{0.34, mustHex("#c8b68a")},
	{0.40, mustHex("#5d8a3a")},
	{0.62, mustHex("#3f5f2a")},
	{0.78, mustHex("#6e6258")},
	{0.90, mustHex("#b8b0a8")},
	{1.00, mustHex("#f4f4f8")},
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Generate builds a seamless terrain tile from periodic fractal value noise.
// The same options always produce the same Map.
func Generate(opts GenerateOptions) (*Map, error) {
	if !vmath.IsPowerOfTwo(opts.Size) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, opts.Size)
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}
	if opts.Period <= 0 {
		opts.Period = 4
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}

	size := opts.Size
	field := make([]float64, size*size)
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := fractalNoise(x, y, size, opts)
			field[y*size+x] = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	colors := make([]Color, size*size)
	heights := make([]uint8, size*size)
	for i, v := range field {
		h := (v - lo) / span
		heights[i] = uint8(math.Round(h * 255))
		colors[i] = shade(h, hash2D(int32(i%size), int32(i/size), int32(opts.Seed)^0x5bd1))
	}

	return New(size, colors, heights)
}

// shade picks the palette colour for a normalised height with a little
// per-cell brightness jitter.
func shade(h, jitter float64) Color {
	c := palette[len(palette)-1].col
	for i := 1; i < len(palette); i++ {
		if h <= palette[i].at {
			a, b := palette[i-1], palette[i]
			t := (h - a.at) / (b.at - a.at)
			c = a.col.BlendLab(b.col, t)
			break
		}
	}
	l, ca, cb := c.Lab()
	c = colorful.Lab(l*(0.94+0.12*jitter), ca, cb).Clamped()
	r, g, bl := c.RGB255()
	return Color{r, g, bl}
}

// fractalNoise sums periodic value noise octaves. Output is in [0, 1].
func fractalNoise(px, py, size int, opts GenerateOptions) float64 {
	var sum, maxAmp float64
	amp := 1.0
	period := opts.Period
	for i := 0; i < opts.Octaves; i++ {
		scale := float64(period) / float64(size)
		sum += valueNoise(float64(px)*scale, float64(py)*scale, period, int32(opts.Seed)+int32(i)) * amp
		maxAmp += amp
		amp *= opts.Gain
		period *= 2
	}
	return sum / maxAmp
}

// valueNoise interpolates hashed lattice values, wrapping the lattice every
// period cells.
func valueNoise(x, y float64, period int, seed int32) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := smoothStep(x - float64(x0))
	ty := smoothStep(y - float64(y0))

	wx0, wx1 := wrap(x0, period), wrap(x0+1, period)
	wy0, wy1 := wrap(y0, period), wrap(y0+1, period)

	v00 := hash2D(wx0, wy0, seed)
	v10 := hash2D(wx1, wy0, seed)
	v01 := hash2D(wx0, wy1, seed)
	v11 := hash2D(wx1, wy1, seed)

	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}

func wrap(v, period int) int32 {
	return int32(((v % period) + period) % period)
}

// hash2D maps lattice coordinates to a deterministic value in [0, 1].
func hash2D(x, y, seed int32) float64 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	return float64(n&0x7fffffff) / 2147483647.0
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func smoothStep(t float64) float64 {
	return t * t * (3 - 2*t)
}
