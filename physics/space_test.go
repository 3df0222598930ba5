package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/vmath"
)

func newTestSpace() *Space {
	tun := parameter.DefaultTuning()
	return NewSpace(&tun)
}

func TestTerrainRuns(t *testing.T) {
	g := grid.NewSandbox(6, 2)
	for _, x := range []int{0, 1, 3, 4, 5} {
		g.Set(x, 0, grid.Terrain())
	}
	g.Set(2, 1, grid.Terrain())

	runs := TerrainRuns(g)
	want := []Run{{0, 1, 0}, {3, 5, 0}, {2, 2, 1}}
	if len(runs) != len(want) {
		t.Fatalf("Expected %d runs, got %d: %+v", len(want), len(runs), runs)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("Run %d: expected %+v, got %+v", i, want[i], runs[i])
		}
	}
}

func TestSpaceClusterMassAndOffsets(t *testing.T) {
	s := newTestSpace()
	cluster := core.Entity(1)
	s.AddCluster(cluster, vmath.Vec2{X: 100, Y: 50})
	s.AttachRock(cluster, 2, vmath.Vec2{X: -8, Y: 0})
	s.AttachRock(cluster, 3, vmath.Vec2{X: 0, Y: 0})
	s.AttachRock(cluster, 4, vmath.Vec2{X: 8, Y: 8})

	mass, ok := s.Mass(cluster)
	if !ok || math.Abs(mass-3*parameter.RockMass) > 1e-9 {
		t.Errorf("Expected mass %v, got %v (ok=%v)", 3*parameter.RockMass, mass, ok)
	}

	pos, ok := s.Position(4)
	if !ok || math.Abs(pos.X-108) > 1e-9 || math.Abs(pos.Y-58) > 1e-9 {
		t.Errorf("Expected child at {108 58}, got %+v (ok=%v)", pos, ok)
	}

	s.DetachRock(4)
	if s.Exists(4) {
		t.Error("Expected detached rock gone")
	}
	mass, _ = s.Mass(cluster)
	if math.Abs(mass-2*parameter.RockMass) > 1e-9 {
		t.Errorf("Expected mass %v after detach, got %v", 2*parameter.RockMass, mass)
	}

	s.Remove(cluster)
	if s.Exists(cluster) || s.Exists(2) || s.Exists(3) {
		t.Error("Expected cluster and children removed")
	}
}

func TestSpaceGravityScale(t *testing.T) {
	s := newTestSpace()
	cluster := core.Entity(1)
	s.AddCluster(cluster, vmath.Vec2{})
	s.AttachRock(cluster, 2, vmath.Vec2{})

	for i := 0; i < 30; i++ {
		s.Step(parameter.StepSeconds)
	}
	pos, _ := s.Position(cluster)
	if math.Abs(pos.Y) > 1e-9 {
		t.Errorf("Expected held cluster to float, got y=%v", pos.Y)
	}

	s.SetGravityScale(cluster, 1)
	for i := 0; i < 30; i++ {
		s.Step(parameter.StepSeconds)
	}
	pos, _ = s.Position(cluster)
	if pos.Y >= 0 {
		t.Errorf("Expected cluster to fall after gravity restored, got y=%v", pos.Y)
	}
}

func TestSpaceRockHitsTerrain(t *testing.T) {
	s := newTestSpace()
	g := grid.NewSandbox(10, 10)
	for x := 0; x < 10; x++ {
		g.Set(x, 0, grid.Terrain())
	}
	ground := core.Entity(99)
	s.SyncTerrain(g, parameter.CellSize, ground)
	if s.TerrainColliders() != 1 {
		t.Fatalf("Expected 1 terrain collider, got %d", s.TerrainColliders())
	}

	rock := core.Entity(5)
	s.AddRock(rock, vmath.Vec2{X: 4, Y: 0}, vmath.Vec2{})

	var events []CollisionEvent
	for i := 0; i < 120; i++ {
		s.Step(parameter.StepSeconds)
		events, _ = s.DrainCollisions(events, 64)
	}

	hit := false
	for _, ev := range events {
		if ev.Started && ((ev.A == rock && ev.B == ground) || (ev.A == ground && ev.B == rock)) {
			hit = true
		}
	}
	if !hit {
		t.Errorf("Expected rock-ground collision start, got %+v", events)
	}

	pos, _ := s.Position(rock)
	if pos.Y < -40 {
		t.Errorf("Expected rock resting on terrain, got y=%v", pos.Y)
	}
}

func TestSpaceDrainLimit(t *testing.T) {
	s := newTestSpace()
	for i := 0; i < 5; i++ {
		s.pending = append(s.pending, CollisionEvent{A: 1, B: 2, Started: true})
	}
	got, dropped := s.DrainCollisions(nil, 3)
	if len(got) != 3 || dropped != 2 {
		t.Errorf("Expected 3 drained and 2 dropped, got %d and %d", len(got), dropped)
	}
	if got, _ = s.DrainCollisions(nil, 3); len(got) != 0 {
		t.Errorf("Expected empty queue after drain, got %d", len(got))
	}
}

func TestSpaceQueryCircle(t *testing.T) {
	s := newTestSpace()
	s.AddPlayer(1, vmath.Vec2{}, parameter.PlayerRadius, parameter.PlayerMass)
	s.AddCluster(2, vmath.Vec2{X: 40, Y: 0})
	s.AttachRock(2, 3, vmath.Vec2{})

	hits := s.QueryCircle(vmath.Vec2{X: 30, Y: 0}, 10, nil)
	found := false
	for _, e := range hits {
		if e == 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected rock 3 in query, got %v", hits)
	}

	if hits := s.QueryCircle(vmath.Vec2{X: 0, Y: 200}, 5, nil); len(hits) != 0 {
		t.Errorf("Expected empty query, got %v", hits)
	}

	// Inside the player's bounding box corner but outside its circle
	if hits := s.QueryCircle(vmath.Vec2{X: 14, Y: 14}, 1, nil); len(hits) != 0 {
		t.Errorf("Expected corner query to miss the player, got %v", hits)
	}

	// Center inside a shape reports a negative distance and still matches
	hits = s.QueryCircle(vmath.Vec2{X: 1, Y: 0}, 0.5, nil)
	if len(hits) != 1 || hits[0] != 1 {
		t.Errorf("Expected only player 1 from inside query, got %v", hits)
	}
}
