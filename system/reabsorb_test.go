package system

import (
	"testing"

	"github.com/lixenwraith/sandfall/component"
	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/vmath"
)

func TestReabsorbLooseRockIdempotent(t *testing.T) {
	f := newFixture(20, 20)
	pos := f.w.Resources.Mapper.CellCenter(3, 4)
	rock := spawnLooseRock(f.w, pos, vmath.Vec2{}, core.RGBARock)
	rs := NewReabsorbSystem(f.w)

	rs.Update()

	p, ok := f.g.Get(3, 4)
	if !ok {
		t.Fatal("Expected cell written")
	}
	if p != grid.Terrain() {
		t.Errorf("Expected default terrain, got %+v", p)
	}
	if f.w.Components.Rock.Has(rock) || f.pw.Exists(rock) {
		t.Error("Expected rock despawned")
	}
	version := f.g.Version()
	events := len(f.w.Resources.Events.Consume())

	rs.Update()

	if f.g.Version() != version {
		t.Error("Expected second pass not to write")
	}
	if events != 1 || f.w.Resources.Events.Len() != 0 {
		t.Errorf("Expected exactly one reabsorb, got %d then %d", events, f.w.Resources.Events.Len())
	}
}

func TestReabsorbMovingRockStays(t *testing.T) {
	f := newFixture(20, 20)
	rock := spawnLooseRock(f.w, vmath.Vec2{}, vmath.Vec2{X: 1}, core.RGBARock)

	NewReabsorbSystem(f.w).Update()

	if !f.w.Components.Rock.Has(rock) {
		t.Error("Expected moving rock kept")
	}
	if f.g.Count() != 0 {
		t.Error("Expected nothing written")
	}
}

func TestReabsorbOutOfBoundsRock(t *testing.T) {
	f := newFixture(20, 20)
	rock := spawnLooseRock(f.w, vmath.Vec2{X: 5000}, vmath.Vec2{}, core.RGBARock)

	NewReabsorbSystem(f.w).Update()

	if f.w.Components.Rock.Has(rock) {
		t.Error("Expected settled rock despawned")
	}
	if f.g.Count() != 0 {
		t.Errorf("Expected no write out of bounds, got %d cells", f.g.Count())
	}
}

func TestReabsorbClusterAndHeldSkipped(t *testing.T) {
	f := newFixture(20, 20)
	p := f.player(vmath.Vec2{X: -60})
	m := f.w.Resources.Mapper
	center := m.CellCenter(10, 10)
	free := f.cluster(core.NoEntity, center, vmath.Vec2{}, vmath.Vec2{}, vmath.Vec2{X: 8}, vmath.Vec2{Y: -8})
	held := f.cluster(p, m.CellCenter(2, 2), vmath.Vec2{}, vmath.Vec2{})
	f.hold(p, held)

	NewReabsorbSystem(f.w).Update()

	for _, c := range [][2]int{{10, 10}, {11, 10}, {10, 9}} {
		if _, ok := f.g.Get(c[0], c[1]); !ok {
			t.Errorf("Expected cell %v written", c)
		}
	}
	if f.w.Components.Cluster.Has(free) {
		t.Error("Expected settled cluster despawned")
	}
	if !f.w.Components.Cluster.Has(held) {
		t.Error("Expected held cluster kept")
	}
	if _, ok := f.g.Get(2, 2); ok {
		t.Error("Expected held cluster not written")
	}
	if f.g.Count() != 3 {
		t.Errorf("Expected 3 cells, got %d", f.g.Count())
	}
}

func TestReabsorbMarkedMemberOfUnheldCluster(t *testing.T) {
	f := newFixture(20, 20)
	center := f.w.Resources.Mapper.CellCenter(5, 5)
	c := f.cluster(core.NoEntity, center, vmath.Vec2{}, vmath.Vec2{}, vmath.Vec2{X: 8})
	// Keep the cluster itself out of the first sweep by holding it for a phantom player
	f.w.Components.Held.Set(c, component.HeldComponent{})
	rock := f.firstRock(c)
	f.w.Components.Reabsorb.Set(rock, component.ReabsorbComponent{})

	rs := NewReabsorbSystem(f.w).(*ReabsorbSystem)
	rs.sweepMembers()
	if !f.w.Components.Rock.Has(rock) {
		t.Fatal("Expected member of a held cluster kept")
	}

	f.w.Components.Held.Remove(c)
	rs.sweepMembers()

	if f.w.Components.Rock.Has(rock) {
		t.Error("Expected marked member written back")
	}
	if _, ok := f.g.Get(5, 5); !ok {
		t.Error("Expected member cell written")
	}
	cl, _ := f.w.Components.Cluster.Get(c)
	if cl.Live() != 1 {
		t.Errorf("Expected one rock left in cluster, got %d", cl.Live())
	}
}

func TestCarveReabsorbRoundTrip(t *testing.T) {
	f := newFixture(20, 20)
	p := f.player(carveOrigin(f, 10, 10))
	footprint := [][2]int{{10, 10}, {9, 10}, {10, 11}, {12, 8}, {7, 13}}
	for _, c := range footprint {
		f.fill(c[0], c[1])
	}

	cs := NewCarveSystem(f.w).(*CarveSystem)
	cluster := cs.Carve(p, f.w.Resources.Tuning.Player.CarveMin)
	if f.g.Count() != 0 {
		t.Fatalf("Expected grid emptied by carve, got %d", f.g.Count())
	}

	releaseHold(f.w, cluster)
	NewReabsorbSystem(f.w).Update()

	if f.g.Count() != len(footprint) {
		t.Errorf("Expected %d cells restored, got %d", len(footprint), f.g.Count())
	}
	for _, c := range footprint {
		if _, ok := f.g.Get(c[0], c[1]); !ok {
			t.Errorf("Expected cell %v restored", c)
		}
	}
	if f.w.Components.Rock.Count() != 0 || f.w.Components.Cluster.Count() != 0 {
		t.Error("Expected all debris despawned")
	}
}
