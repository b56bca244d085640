package raster

import (
	"testing"

	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
)

var (
	sky   = terrain.RGB(53, 81, 92)
	grass = terrain.RGB(10, 120, 40)
	rock  = terrain.RGB(90, 90, 90)
)

func TestClear(t *testing.T) {
	b := New(7, 5)
	b.Clear(sky)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if got := b.At(x, y); got != sky {
				t.Fatalf("At(%d, %d) = %v, want %v", x, y, got, sky)
			}
		}
	}
	for i := 3; i < len(b.Pix()); i += 4 {
		if b.Pix()[i] != 0xff {
			t.Fatalf("alpha at %d = %d, want 255", i, b.Pix()[i])
		}
	}
}

func TestRowRange(t *testing.T) {
	tests := []struct {
		name           string
		top, bottom    float32
		h              int
		wantY0, wantY1 int
	}{
		{"whole rows", 2, 5, 10, 2, 5},
		{"centre inside", 2.4, 4.6, 10, 2, 5},
		{"centre outside", 2.6, 4.4, 10, 3, 4},
		{"empty", 3.2, 3.4, 10, 3, 3},
		{"clipped", -4, 20, 10, 0, 10},
		{"offscreen", 12, 15, 10, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y0, y1 := rowRange(tt.top, tt.bottom, tt.h)
			if y0 != tt.wantY0 || y1 != tt.wantY1 {
				t.Errorf("rowRange(%v, %v) = [%d, %d), want [%d, %d)", tt.top, tt.bottom, y0, y1, tt.wantY0, tt.wantY1)
			}
		})
	}
}

func TestDrawLinesOrderIndependent(t *testing.T) {
	lines := []voxel.Line{
		{X: 1, Top: 6.3, Bottom: 10, Color: grass},
		{X: 1, Top: 2.7, Bottom: 6.3, Color: rock},
		{X: 3, Top: 0, Bottom: 10, Color: grass},
		{X: 9, Top: 0, Bottom: 10, Color: rock}, // outside
	}
	forward := New(5, 10)
	forward.Clear(sky)
	forward.DrawLines(lines)

	reversed := New(5, 10)
	reversed.Clear(sky)
	rev := make([]voxel.Line, len(lines))
	for i, l := range lines {
		rev[len(lines)-1-i] = l
	}
	reversed.DrawLines(rev)

	for y := 0; y < 10; y++ {
		for x := 0; x < 5; x++ {
			if forward.At(x, y) != reversed.At(x, y) {
				t.Fatalf("pixel (%d, %d) depends on line order", x, y)
			}
		}
	}

	want := map[int]terrain.Color{0: sky, 2: sky, 3: rock, 5: rock, 6: grass, 9: grass}
	for y, c := range want {
		if got := forward.At(1, y); got != c {
			t.Errorf("column 1 row %d = %v, want %v", y, got, c)
		}
	}
	if got := forward.At(0, 5); got != sky {
		t.Errorf("untouched column = %v, want sky", got)
	}
}

func TestDrawFrameFromRenderer(t *testing.T) {
	const size = 16
	colors := make([]terrain.Color, size*size)
	heights := make([]uint8, size*size)
	for i := range colors {
		colors[i] = grass
	}
	m, err := terrain.New(size, colors, heights)
	if err != nil {
		t.Fatal(err)
	}

	p := voxel.DefaultParams()
	f := voxel.New(voxel.Config{Sky: sky}).Draw(m, &p, 32, 240)

	b := New(32, 240)
	b.Clear(f.Clear)
	b.DrawLines(f.Lines)

	if got := b.At(10, 0); got != sky {
		t.Errorf("top row = %v, want sky", got)
	}
	if got := b.At(10, 239); got != grass {
		t.Errorf("bottom row = %v, want ground", got)
	}
}

func TestResize(t *testing.T) {
	b := New(4, 4)
	pix := b.Pix()
	b.Resize(4, 4)
	if &b.Pix()[0] != &pix[0] {
		t.Error("Resize to the same size reallocated")
	}
	b.Resize(8, 2)
	if w, h := b.Size(); w != 8 || h != 2 {
		t.Errorf("Size() = %dx%d, want 8x2", w, h)
	}
	if len(b.Pix()) != 8*2*4 {
		t.Errorf("len(Pix()) = %d, want 64", len(b.Pix()))
	}
	b.Resize(0, -3)
	b.Clear(sky)
	b.DrawLines([]voxel.Line{{X: 0, Top: 0, Bottom: 1}})
}
