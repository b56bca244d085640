// Package math provides the small vector and scalar helpers used by the renderer.
package math

// Vec3 is a 3D vector. Y is altitude; X and Z span the terrain plane.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Heading returns the unit direction on the XZ plane for an angle in radians.
func Heading(angle float32) Vec3 {
	s, c := Sincos(angle)
	return Vec3{X: c, Z: s}
}

// Perp returns v rotated a quarter turn clockwise on the XZ plane, dropping Y.
func (v Vec3) Perp() Vec3 {
	return Vec3{X: v.Z, Z: -v.X}
}
