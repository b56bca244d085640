package terrain

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// checkerMap builds a map whose colour encodes the cell coordinates.
func checkerMap(t *testing.T, size int) *Map {
	t.Helper()
	colors := make([]Color, size*size)
	heights := make([]uint8, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			colors[y*size+x] = Color{uint8(x), uint8(y), 0}
			heights[y*size+x] = uint8(x*7 + y*3)
		}
	}
	m, err := New(size, colors, heights)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestSampleWrapsToroidally(t *testing.T) {
	const n = 16
	m := checkerMap(t, n)

	for _, x := range []int{-33, -17, -16, -1, 0, 1, 5, 15, 16, 31, 100} {
		for _, y := range []int{-40, -1, 0, 7, 16, 99} {
			c0, h0 := m.Sample(x, y)
			c1, h1 := m.Sample(x+n, y)
			c2, h2 := m.Sample(x, y+n)
			if c0 != c1 || h0 != h1 || c0 != c2 || h0 != h2 {
				t.Errorf("Sample(%d,%d) not periodic: %v/%d, %v/%d, %v/%d", x, y, c0, h0, c1, h1, c2, h2)
			}
		}
	}
}

func TestSampleNegativeCoordinates(t *testing.T) {
	m := checkerMap(t, 8)
	c, h := m.Sample(-1, -2)
	if c != (Color{7, 6, 0}) {
		t.Errorf("Sample(-1,-2) colour = %v, want {7 6 0}", c)
	}
	if h != uint8(7*7+6*3) {
		t.Errorf("Sample(-1,-2) height = %d, want %d", h, 7*7+6*3)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(12, make([]Color, 144), make([]uint8, 144)); !errors.Is(err, ErrNotPowerOfTwo) {
		t.Errorf("New(12) error = %v, want ErrNotPowerOfTwo", err)
	}
	if _, err := New(4, make([]Color, 16), make([]uint8, 15)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("New(short heights) error = %v, want ErrDimensionMismatch", err)
	}
}

func TestFromImages(t *testing.T) {
	tests := []struct {
		name     string
		colorW   int
		colorH   int
		heightW  int
		heightH  int
		wantErr  error
		wantSize int
	}{
		{"power of two", 256, 256, 256, 256, nil, 256},
		{"mismatched pair", 256, 256, 257, 257, ErrDimensionMismatch, 0},
		{"non-square pair", 256, 257, 256, 257, ErrDimensionMismatch, 0},
		{"not power of two", 300, 300, 300, 300, ErrNotPowerOfTwo, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ci := image.NewNRGBA(image.Rect(0, 0, tt.colorW, tt.colorH))
			hi := image.NewGray(image.Rect(0, 0, tt.heightW, tt.heightH))
			m, err := FromImages(ci, hi)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromImages() error = %v, want %v", err, tt.wantErr)
				}
				if m != nil {
					t.Error("FromImages() returned a map alongside an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("FromImages() error = %v", err)
			}
			if m.Size() != tt.wantSize {
				t.Errorf("Size() = %d, want %d", m.Size(), tt.wantSize)
			}
		})
	}
}

func TestFromImagesChannels(t *testing.T) {
	ci := image.NewRGBA(image.Rect(0, 0, 2, 2))
	ci.Set(1, 0, color.RGBA{10, 20, 30, 255})
	hi := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	hi.Set(1, 0, color.NRGBA{200, 1, 2, 255})

	m, err := FromImages(ci, hi)
	if err != nil {
		t.Fatalf("FromImages() error = %v", err)
	}
	c, h := m.Sample(1, 0)
	if c != (Color{10, 20, 30}) {
		t.Errorf("colour = %v, want {10 20 30}", c)
	}
	if h != 200 {
		t.Errorf("height = %d, want 200 (first channel)", h)
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = RGB(255, 0, 128)
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 128*0x101 || a != 0xffff {
		t.Errorf("RGBA() = %d %d %d %d", r, g, b, a)
	}
}
