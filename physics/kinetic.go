package physics

import (
	"math"

	"github.com/lixenwraith/sandfall/vmath"
)

// Momentum is the scalar speed*mass used by the fracture rules
func Momentum(vel vmath.Vec2, mass float64) float64 {
	return vmath.V2Mag(vel) * mass
}

// ImpactDamage returns sqrt(speed*mass), zero for non-positive input
func ImpactDamage(speed, mass float64) float64 {
	p := speed * mass
	if p <= 0 || math.IsNaN(p) {
		return 0
	}
	return math.Sqrt(p)
}

// Knockback returns the impulse pushing a body at target away from source
// Coincident points yield zero
func Knockback(target, source vmath.Vec2, damage, multiplier float64) vmath.Vec2 {
	dir := vmath.V2Normalize(vmath.V2Sub(source, target))
	return vmath.V2Scale(dir, -damage*multiplier)
}

// Redirect bends a velocity away from a pivot, preserving its magnitude
// direction = normalize(unit(vel) - unit(pivot - pos))
func Redirect(vel, pos, pivot vmath.Vec2) vmath.Vec2 {
	toPivot := vmath.V2Normalize(vmath.V2Sub(pivot, pos))
	dir := vmath.V2Normalize(vmath.V2Sub(vmath.V2Normalize(vel), toPivot))
	return vmath.V2Scale(dir, vmath.V2Mag(vel))
}

// EffectiveMass substitutes fallback for non-finite or near-zero mass
func EffectiveMass(mass, epsilon, fallback float64) float64 {
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass <= epsilon {
		return fallback
	}
	return mass
}

// SpringVelocity is the velocity command pulling current toward desired
// v = (desired - current) * spring / sqrt(mass)
func SpringVelocity(current, desired vmath.Vec2, spring, mass float64) vmath.Vec2 {
	return vmath.V2Scale(vmath.V2Sub(desired, current), spring/math.Sqrt(mass))
}

// Approach moves value toward target by at most step
func Approach(value, target, step float64) float64 {
	if value < target {
		return math.Min(value+step, target)
	}
	return math.Max(value-step, target)
}
