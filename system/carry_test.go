package system

import (
	"testing"

	"github.com/lixenwraith/sandfall/component"
	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/vmath"
)

func TestCarrySpring(t *testing.T) {
	f := newFixture(20, 20)
	p := f.player(vmath.Vec2{})
	c := f.cluster(p, vmath.Vec2{X: 200}, vmath.Vec2{}, vmath.Vec2{})
	f.hold(p, c)

	NewCarrySystem(f.w).Update()

	// Desired x = reach 200 + radius 30; (230-200) * 400 / sqrt(36)
	v, _ := f.pw.Velocity(c)
	if !approxVec(v, vmath.Vec2{X: 2000}) {
		t.Errorf("Expected spring velocity (2000,0), got %v", v)
	}
}

func TestCarrySpringFallbackMass(t *testing.T) {
	f := newFixture(20, 20)
	p := f.player(vmath.Vec2{})
	c := f.cluster(p, vmath.Vec2{X: 200}, vmath.Vec2{}, vmath.Vec2{})
	f.hold(p, c)
	detachRock(f.w, f.firstRock(c))

	NewCarrySystem(f.w).Update()

	// Zero mass falls back to 4096: 30 * 400 / 64
	v, _ := f.pw.Velocity(c)
	if !approxVec(v, vmath.Vec2{X: 187.5}) {
		t.Errorf("Expected fallback spring velocity (187.5,0), got %v", v)
	}
}

func TestCarryToss(t *testing.T) {
	f := newFixture(20, 20)
	p := f.player(vmath.Vec2{})
	c := f.cluster(p, vmath.Vec2{X: 230}, vmath.Vec2{X: 10, Y: 5}, vmath.Vec2{})
	f.hold(p, c)
	f.pw.SetGravityScale(c, 0)
	f.state(p).SetButton(input.ActionCarve, true)

	NewCarrySystem(f.w).Update()

	if v, _ := f.pw.Velocity(c); v != (vmath.Vec2{X: 20, Y: 10}) {
		t.Errorf("Expected tossed velocity (20,10), got %v", v)
	}
	if f.w.Components.Held.Has(c) {
		t.Error("Expected hold released")
	}
	if scale, _ := f.pw.GravityScale(c); scale != 1 {
		t.Errorf("Expected gravity restored, got %v", scale)
	}
	pc, _ := f.w.Components.Player.Get(p)
	if pc.Held != core.NoEntity {
		t.Errorf("Expected empty hands, got held=%d", pc.Held)
	}
	events := f.w.Resources.Events.Consume()
	if len(events) != 1 || events[0].Type != event.EventRelease {
		t.Errorf("Expected one release event, got %d", len(events))
	}
}

func TestCarryOrphanedHoldReleased(t *testing.T) {
	f := newFixture(20, 20)
	c := f.cluster(core.NoEntity, vmath.Vec2{}, vmath.Vec2{}, vmath.Vec2{})
	f.w.Components.Held.Set(c, component.HeldComponent{Holder: 999})

	NewCarrySystem(f.w).Update()

	if f.w.Components.Held.Has(c) {
		t.Error("Expected hold without a holder released")
	}
}

func TestMeasureSamplesDisplacement(t *testing.T) {
	f := newFixture(20, 20)
	c := f.cluster(core.NoEntity, vmath.Vec2{}, vmath.Vec2{}, vmath.Vec2{})
	ms := NewMeasureSystem(f.w)

	f.pw.SetPosition(c, vmath.Vec2{X: 2, Y: -1})
	ms.Update()

	m, _ := f.w.Components.Measured.Get(c)
	if !approxVec(m.Velocity, vmath.Vec2{X: 2, Y: -1}) {
		t.Errorf("Expected measured (2,-1) per step, got %v", m.Velocity)
	}

	ms.Update()
	m, _ = f.w.Components.Measured.Get(c)
	if !approxVec(m.Velocity, vmath.Vec2{X: 2, Y: -1}) {
		t.Errorf("Expected sample kept while stationary, got %v", m.Velocity)
	}
	if m.Last != (vmath.Vec2{X: 2, Y: -1}) {
		t.Errorf("Expected last sample (2,-1), got %v", m.Last)
	}
}

func TestMeasureIgnoresSolverVelocity(t *testing.T) {
	f := newFixture(20, 20)
	c := f.cluster(core.NoEntity, vmath.Vec2{}, vmath.Vec2{X: 900}, vmath.Vec2{})

	NewMeasureSystem(f.w).Update()

	if m, _ := f.w.Components.Measured.Get(c); m.Velocity != (vmath.Vec2{}) {
		t.Errorf("Expected no displacement sample, got %v", m.Velocity)
	}
}
