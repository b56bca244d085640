// Package voxel renders a terrain.Map as a pseudo-3D view by marching one ray
// per screen column through increasing depth and emitting vertical colour spans.
package voxel

import (
	"math"

	"github.com/Faultbox/voxelspace/internal/engine/terrain"
)

// DefaultDetail is the depth at which the march step starts growing beyond one
// map cell. Larger values sample far terrain more densely.
const DefaultDetail float32 = 150

// Line is a vertical span covering screen rows [Top, Bottom) of column X.
type Line struct {
	X      int
	Top    float32
	Bottom float32
	Color  terrain.Color
}

// Stats describes the depth march of the last frame.
type Stats struct {
	Steps  int     // depth iterations
	FinalZ float32 // depth at which the march stopped
	Lines  int     // spans emitted
}

// Frame is the output of one Draw: a clear colour and a batch of spans.
// Within a column the spans never overlap, so they may be drawn in any order.
// Its slices are reused by the next Draw.
type Frame struct {
	Clear  terrain.Color
	Lines  []Line
	Width  int
	Height int
	Stats  Stats
}

// Renderer marches columns with an adaptive depth step. It keeps its scratch
// buffers between frames but holds no state that outlives a Draw.
type Renderer struct {
	detail float32
	sky    terrain.Color

	visibility []float32
	cos        []float32
	sin        []float32
	frame      Frame
}

// Config holds renderer configuration.
type Config struct {
	Detail float32
	Sky    terrain.Color
}

// New creates a renderer. A non-positive detail selects DefaultDetail.
func New(cfg Config) *Renderer {
	if cfg.Detail <= 0 {
		cfg.Detail = DefaultDetail
	}
	return &Renderer{
		detail: cfg.Detail,
		sky:    cfg.Sky,
	}
}

// Detail returns the depth step tuning constant.
func (r *Renderer) Detail() float32 {
	return r.detail
}

// Draw raycasts m from p into a width x height viewport.
// The returned Frame is valid until the next call.
func (r *Renderer) Draw(m *terrain.Map, p *Params, width, height int) *Frame {
	f := &r.frame
	f.Clear = r.sky
	f.Lines = f.Lines[:0]
	f.Width, f.Height = width, height
	f.Stats = Stats{}
	if width <= 0 || height <= 0 || m == nil {
		return f
	}

	r.prepareColumns(p, width, float32(height))

	camX, camY, camZ := p.Camera.X, p.Camera.Y, p.Camera.Z
	screenH := float32(height)

	z := float32(1)
	for z < p.ViewDistance {
		invZ := p.HeightScale / z

		for x := 0; x < width; x++ {
			mx := camX + r.cos[x]*z
			mz := camZ + r.sin[x]*z
			color, h := m.Sample(int(mx), int(mz))

			y := project(camY, float32(h), invZ, p.Horizon, screenH)
			if vis := r.visibility[x]; y < vis {
				f.Lines = append(f.Lines, Line{X: x, Top: y, Bottom: vis, Color: color})
				r.visibility[x] = y
			}
		}

		f.Stats.Steps++
		z = nextDepth(z, r.detail)
	}

	f.Stats.FinalZ = z
	f.Stats.Lines = len(f.Lines)
	return f
}

// prepareColumns resets the visibility buffer and caches the ray direction of
// every column, which does not change with depth.
func (r *Renderer) prepareColumns(p *Params, width int, height float32) {
	if cap(r.visibility) < width {
		r.visibility = make([]float32, width)
		r.cos = make([]float32, width)
		r.sin = make([]float32, width)
	}
	r.visibility = r.visibility[:width]
	r.cos = r.cos[:width]
	r.sin = r.sin[:width]

	left := p.Rotation + p.FOV/2
	right := p.Rotation - p.FOV/2
	step := (right - left) / float32(width)
	for x := 0; x < width; x++ {
		phi := float64(left + step*float32(x))
		s, c := math.Sincos(phi)
		r.cos[x] = float32(c)
		r.sin[x] = float32(s)
		r.visibility[x] = height
	}
}

// project maps a terrain height at inverse depth invZ (height scale / z) to a
// screen row clamped to [0, screenH].
func project(camY, terrainH, invZ, horizon, screenH float32) float32 {
	y := (camY-terrainH)*invZ + horizon
	if y < 0 {
		return 0
	}
	if y > screenH {
		return screenH
	}
	return y
}

// nextDepth advances z by at least one map cell, and by z/detail once that is
// larger, so far terrain is sampled coarsely.
func nextDepth(z, detail float32) float32 {
	return z + max(z/detail, 1)
}

// DepthSteps returns the number of depth iterations Draw performs for a view
// distance and the depth at which it stops.
func DepthSteps(viewDistance, detail float32) (int, float32) {
	steps := 0
	z := float32(1)
	for z < viewDistance {
		steps++
		z = nextDepth(z, detail)
	}
	return steps, z
}
