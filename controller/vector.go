package controller

import (
	"math"

	"github.com/automoto/fpcontroller/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D input axis.
type Vec2 = mgl64.Vec2

// Vec3 is a world-space vector. Y is up.
type Vec3 = mgl64.Vec3

// Up is the world up axis.
var Up = Vec3{0, 1, 0}

// vec3 converts a config vector.
func vec3(v config.Vec3) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// ClampLength scales v down so its length does not exceed max.
func ClampLength(v Vec2, max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 interpolates each component between a and b.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// YawBasis returns the horizontal forward and right unit vectors for a body
// rotated yaw degrees clockwise about the up axis (viewed from above, +Z forward).
func YawBasis(yaw float64) (forward, right Vec3) {
	sin, cos := math.Sincos(mgl64.DegToRad(yaw))
	return Vec3{sin, 0, cos}, Vec3{cos, 0, -sin}
}
