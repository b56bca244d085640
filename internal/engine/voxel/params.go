package voxel

import (
	"fmt"

	vmath "github.com/Faultbox/voxelspace/pkg/math"
)

// View limits. Params.Normalize keeps every Params inside them.
var (
	MinFOV = vmath.Radians(30)
	MaxFOV = vmath.Radians(150)
)

// MinViewDistance is the shortest allowed view distance.
const MinViewDistance float32 = 10

// Params is the camera and projection state used by Renderer.Draw.
type Params struct {
	Camera       vmath.Vec3 // Y is altitude
	Rotation     float32    // radians, [0, 2π)
	FOV          float32    // radians, [MinFOV, MaxFOV]
	ViewDistance float32    // >= MinViewDistance
	HeightScale  float32
	Horizon      float32
}

// DefaultParams returns the starting camera of a session.
func DefaultParams() Params {
	return Params{
		Camera:       vmath.Vec3{Y: 200},
		Rotation:     0,
		FOV:          vmath.Radians(50),
		ViewDistance: 800,
		HeightScale:  300,
		Horizon:      100,
	}
}

// Reset replaces every field with defaults except the field of view.
func (p *Params) Reset(defaults Params) {
	fov := p.FOV
	*p = defaults
	p.FOV = fov
	p.Normalize()
}

// Normalize applies the view invariants.
func (p *Params) Normalize() {
	p.Rotation = vmath.WrapAngle(p.Rotation)
	p.FOV = vmath.Clamp(p.FOV, MinFOV, MaxFOV)
	p.ViewDistance = max(p.ViewDistance, MinViewDistance)
}

// Rotate turns the view by a pointer drag of dx pixels on a viewport of the
// given height. A drag of one viewport height turns by one field of view.
func (p *Params) Rotate(dx, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	p.Rotation = vmath.WrapAngle(p.Rotation + dx/viewportHeight*p.FOV)
}

// String formats the parameters for status output.
func (p Params) String() string {
	return fmt.Sprintf("pos (%.0f, %.0f, %.0f) %.0f° dist %.0f fov %.0f° scale %.0f horizon %.0f",
		p.Camera.X, p.Camera.Y, p.Camera.Z, vmath.Degrees(p.Rotation),
		p.ViewDistance, vmath.Degrees(p.FOV), p.HeightScale, p.Horizon)
}
