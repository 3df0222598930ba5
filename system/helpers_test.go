package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/sandfall/component"
	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/physics"
	"github.com/lixenwraith/sandfall/vmath"
)

type fixture struct {
	w  *engine.World
	g  *grid.Sandbox
	pw *physics.MockWorld
}

func newFixture(width, height int) *fixture {
	w, g, pw := engine.NewTestWorld(width, height)
	return &fixture{w: w, g: g, pw: pw}
}

func (f *fixture) fill(x, y int) {
	f.g.Set(x, y, grid.Particle{Kind: grid.KindStone, Color: core.RGBARock})
}

func (f *fixture) player(pos vmath.Vec2) core.Entity {
	return spawnPlayer(f.w, 0, pos)
}

func (f *fixture) state(player core.Entity) *input.ActionState {
	ctl, _ := f.w.Components.Control.Get(player)
	return ctl.State
}

// cluster spawns an unheld cluster with one rock per offset, owned by owner
func (f *fixture) cluster(owner core.Entity, center, vel vmath.Vec2, offsets ...vmath.Vec2) core.Entity {
	seeds := make([]rockSeed, len(offsets))
	for i, o := range offsets {
		seeds[i] = rockSeed{Offset: o, Color: core.RGBARock}
	}
	e := spawnCluster(f.w, owner, center, seeds)
	dropHold(f.w, e)
	f.pw.SetVelocity(e, vel)
	return e
}

// hold makes player carry cluster
func (f *fixture) hold(player, cluster core.Entity) {
	f.w.Components.Held.Set(cluster, component.HeldComponent{Holder: player})
	p, _ := f.w.Components.Player.Get(player)
	p.Held = cluster
	f.w.Components.Player.Set(player, p)
	refreshHold(f.w)
}

func (f *fixture) firstRock(cluster core.Entity) core.Entity {
	cl, _ := f.w.Components.Cluster.Get(cluster)
	for _, m := range cl.Members {
		if m.Entity != core.NoEntity {
			return m.Entity
		}
	}
	return core.NoEntity
}

// contacts drains injected collisions into the step's contact batch
func (f *fixture) contacts() {
	NewContactSystem(f.w).Update()
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func approxVec(a, b vmath.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestSpawnClusterLinksMembers(t *testing.T) {
	f := newFixture(10, 10)
	owner := f.player(vmath.Vec2{})
	c := spawnCluster(f.w, owner, vmath.Vec2{X: 4, Y: 4}, []rockSeed{
		{Offset: vmath.Vec2{}},
		{Offset: vmath.Vec2{X: 8}},
	})

	cl, ok := f.w.Components.Cluster.Get(c)
	if !ok || len(cl.Members) != 2 {
		t.Fatalf("Expected cluster with 2 members, got %d", len(cl.Members))
	}
	for _, m := range cl.Members {
		got, ok := clusterOf(f.w, m.Entity)
		if !ok || got != c {
			t.Errorf("Expected member %d to resolve to %d, got %d", m.Entity, c, got)
		}
	}
	if f.pw.Children(c) != 2 {
		t.Errorf("Expected 2 physics children, got %d", f.pw.Children(c))
	}
	if mass, _ := f.pw.Mass(c); mass != 72 {
		t.Errorf("Expected mass 72, got %v", mass)
	}
	if scale, _ := f.pw.GravityScale(c); scale != 0 {
		t.Errorf("Expected gravity scale 0, got %v", scale)
	}
	pos, _ := f.pw.Position(cl.Members[1].Entity)
	if pos != (vmath.Vec2{X: 12, Y: 4}) {
		t.Errorf("Expected child at (12,4), got %v", pos)
	}
	if owner2, _ := f.w.Components.Owner.Get(c); owner2.Player != owner {
		t.Errorf("Expected owner %d, got %d", owner, owner2.Player)
	}
}

func TestDestroyClusterClearsHolder(t *testing.T) {
	f := newFixture(10, 10)
	p := f.player(vmath.Vec2{})
	c := f.cluster(p, vmath.Vec2{}, vmath.Vec2{}, vmath.Vec2{}, vmath.Vec2{X: 8})
	f.hold(p, c)
	if f.w.Resources.Hold.State != engine.GrabHolding {
		t.Fatalf("Expected holding, got %v", f.w.Resources.Hold.State)
	}
	rock := f.firstRock(c)

	destroyCluster(f.w, c)

	if f.w.Components.Cluster.Has(c) || f.w.Components.Rock.Has(rock) {
		t.Error("Expected cluster and rocks removed")
	}
	if f.pw.Exists(c) || f.pw.Exists(rock) {
		t.Error("Expected physics bodies removed")
	}
	if pc, _ := f.w.Components.Player.Get(p); pc.Held != core.NoEntity {
		t.Errorf("Expected holder cleared, got %d", pc.Held)
	}
	if f.w.Resources.Hold.State != engine.GrabEmpty {
		t.Errorf("Expected empty hold state, got %v", f.w.Resources.Hold.State)
	}
}

func TestShatterClusterSpawnsLooseRocks(t *testing.T) {
	f := newFixture(10, 10)
	c := f.cluster(core.NoEntity, vmath.Vec2{X: 4, Y: 4}, vmath.Vec2{}, vmath.Vec2{}, vmath.Vec2{X: 8}, vmath.Vec2{Y: 8})
	vel := vmath.Vec2{X: 5, Y: -3}

	n := shatterCluster(f.w, c, vel)
	if n != 3 {
		t.Fatalf("Expected 3 loose rocks, got %d", n)
	}
	if f.w.Components.Cluster.Has(c) {
		t.Error("Expected cluster removed")
	}
	loose := f.w.Components.Reabsorb.All()
	if len(loose) != 3 {
		t.Fatalf("Expected 3 marked rocks, got %d", len(loose))
	}
	for _, e := range loose {
		if f.w.Components.Member.Has(e) {
			t.Errorf("Expected loose rock %d to have no cluster", e)
		}
		if v, _ := f.pw.Velocity(e); v != vel {
			t.Errorf("Expected velocity %v, got %v", vel, v)
		}
	}
	if shatterCluster(f.w, c, vel) != 0 {
		t.Error("Expected shattering a removed cluster to be a no-op")
	}
}

func TestRemovePlayerReleasesHold(t *testing.T) {
	f := newFixture(10, 10)
	p := f.player(vmath.Vec2{})
	f.w.Resources.Devices.Bind(input.DeviceID(3), p)
	c := f.cluster(p, vmath.Vec2{X: 20}, vmath.Vec2{}, vmath.Vec2{})
	f.hold(p, c)
	f.pw.SetGravityScale(c, 0)

	removePlayer(f.w, p)

	if f.w.Components.Player.Has(p) {
		t.Error("Expected player removed")
	}
	if f.w.Components.Held.Has(c) {
		t.Error("Expected held marker removed")
	}
	if scale, _ := f.pw.GravityScale(c); scale != 1 {
		t.Errorf("Expected gravity restored, got %v", scale)
	}
	if _, ok := f.w.Resources.Devices.Player(3); ok {
		t.Error("Expected device unbound")
	}
}
