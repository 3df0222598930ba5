package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/sandfall/vmath"
)

func TestImpactDamage(t *testing.T) {
	if got := ImpactDamage(600, 36); math.Abs(got-math.Sqrt(600*36)) > 1e-9 {
		t.Errorf("Expected sqrt(21600), got %v", got)
	}
	if got := ImpactDamage(0, 36); got != 0 {
		t.Errorf("Expected 0 for zero speed, got %v", got)
	}
}

func TestKnockbackPointsAway(t *testing.T) {
	player := vmath.Vec2{X: 0, Y: 0}
	rock := vmath.Vec2{X: 10, Y: 0}

	imp := Knockback(player, rock, 2, 5000)
	if imp.X != -10000 || imp.Y != 0 {
		t.Errorf("Expected {-10000 0}, got %+v", imp)
	}

	if z := Knockback(player, player, 2, 5000); vmath.V2MagSq(z) != 0 {
		t.Errorf("Expected zero impulse for coincident points, got %+v", z)
	}
}

func TestRedirectPreservesSpeed(t *testing.T) {
	vel := vmath.Vec2{X: 0, Y: -300}
	rock := vmath.Vec2{X: 50, Y: 0}
	player := vmath.Vec2{X: 0, Y: 0}

	got := Redirect(vel, rock, player)
	if math.Abs(vmath.V2Mag(got)-300) > 1e-9 {
		t.Errorf("Expected speed 300, got %v", vmath.V2Mag(got))
	}
	if got.X <= 0 || got.Y >= 0 {
		t.Errorf("Expected velocity bent away from pivot, got %+v", got)
	}
}

func TestRedirectHeadOnCancels(t *testing.T) {
	got := Redirect(vmath.Vec2{X: -300}, vmath.Vec2{X: 50}, vmath.Vec2{})
	if vmath.V2MagSq(got) != 0 {
		t.Errorf("Expected zero velocity for head-on approach, got %+v", got)
	}
}

func TestEffectiveMass(t *testing.T) {
	if got := EffectiveMass(0, 1e-6, 4096); got != 4096 {
		t.Errorf("Expected fallback for zero mass, got %v", got)
	}
	if got := EffectiveMass(math.NaN(), 1e-6, 4096); got != 4096 {
		t.Errorf("Expected fallback for NaN, got %v", got)
	}
	if got := EffectiveMass(math.Inf(1), 1e-6, 4096); got != 4096 {
		t.Errorf("Expected fallback for Inf, got %v", got)
	}
	if got := EffectiveMass(36, 1e-6, 4096); got != 36 {
		t.Errorf("Expected 36, got %v", got)
	}
}

func TestSpringVelocity(t *testing.T) {
	got := SpringVelocity(vmath.Vec2{}, vmath.Vec2{X: 8, Y: -4}, 400, 64)
	if got.X != 400 || got.Y != -200 {
		t.Errorf("Expected {400 -200}, got %+v", got)
	}
}

func TestApproach(t *testing.T) {
	if got := Approach(0, 10, 3); got != 3 {
		t.Errorf("Expected 3, got %v", got)
	}
	if got := Approach(9, 10, 3); got != 10 {
		t.Errorf("Expected clamp at 10, got %v", got)
	}
	if got := Approach(0, -10, 3); got != -3 {
		t.Errorf("Expected -3, got %v", got)
	}
}
