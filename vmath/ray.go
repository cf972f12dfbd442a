package vmath

import "math"

// RaySphere returns the nearest non-negative distance t along a unit-length ray
// at which it enters the sphere, or false if it misses
// An origin inside the sphere reports t = 0
func RaySphere(origin, dir, center Vec3F, radius float64) (float64, bool) {
	oc := V3FSub(origin, center)
	b := V3FDot(oc, dir)
	c := V3FMagSq(oc) - radius*radius
	if c <= 0 {
		return 0, true
	}
	disc := b*b - c
	if disc < 0 || b > 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		t = 0
	}
	return t, true
}

// SphereNormal returns the outward surface normal at point p on a sphere
func SphereNormal(p, center Vec3F) Vec3F {
	return V3FNormalize(V3FSub(p, center))
}
