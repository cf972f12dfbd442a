package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world units (meters)
// +X right, +Y up, -Z forward at zero yaw
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDist returns euclidean distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FFlat zeroes the vertical component
func V3FFlat(v Vec3F) Vec3F {
	return Vec3F{v.X, 0, v.Z}
}

// V3FRotateY rotates v around the vertical axis by yaw radians
// Positive yaw turns the forward vector (-Z) toward -X (counter-clockwise seen from above)
func V3FRotateY(v Vec3F, yaw float64) Vec3F {
	s, c := math.Sincos(yaw)
	return Vec3F{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// ViewDirection returns the unit look vector for a yaw/pitch pair
// Pitch is clamped to the open interval (-pi/2, pi/2)
func ViewDirection(yaw, pitch float64) Vec3F {
	pitch = Clamp(pitch, -math.Pi/2+1e-3, math.Pi/2-1e-3)
	sp, cp := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)
	return Vec3F{
		X: -sy * cp,
		Y: sp,
		Z: -cy * cp,
	}
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
