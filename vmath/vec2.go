package vmath

import "math"

// Vec2 is a float64 2D vector in world units (pixels, y up)
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector, zero vector for zero input
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2ClampMag limits the vector length to maxMag, direction preserved
func V2ClampMag(v Vec2, maxMag float64) Vec2 {
	magSq := V2MagSq(v)
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	return V2Scale(v, maxMag/math.Sqrt(magSq))
}

// V2DistSq returns squared distance between two points
func V2DistSq(a, b Vec2) float64 {
	return V2MagSq(V2Sub(a, b))
}

// V2Finite reports whether both components are finite
func V2Finite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
