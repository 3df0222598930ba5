package system

import (
	"sync/atomic"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/vmath"
)

// ReabsorbSystem writes settled debris back into the grid as default terrain
// Three sweeps: unheld clusters, marked rocks inside unheld clusters, standalone marked rocks
type ReabsorbSystem struct {
	world *engine.World

	statCells *atomic.Int64

	enabled bool
}

func NewReabsorbSystem(world *engine.World) engine.System {
	s := &ReabsorbSystem{
		world: world,
	}

	s.statCells = s.world.Resources.Status.Ints.Get("reabsorb.cells")

	s.Init()
	return s
}

func (s *ReabsorbSystem) Init() {
	s.statCells.Store(0)
	s.enabled = true
}

func (s *ReabsorbSystem) Name() string {
	return "reabsorb"
}

func (s *ReabsorbSystem) Priority() int {
	return parameter.PriorityReabsorb
}

func (s *ReabsorbSystem) Update() {
	if !s.enabled {
		return
	}
	s.sweepClusters()
	s.sweepMembers()
	s.sweepLoose()
}

// atRest reports whether an entity's physics velocity is settled
func (s *ReabsorbSystem) atRest(e core.Entity) bool {
	vel, ok := s.world.Resources.Physics.Velocity(e)
	if !ok {
		return false
	}
	return vmath.V2MagSq(vel) <= s.world.Resources.Tuning.World.RestSpeedSq
}

func (s *ReabsorbSystem) sweepClusters() {
	c := s.world.Components
	for _, cluster := range c.Cluster.All() {
		if c.Held.Has(cluster) || !s.atRest(cluster) {
			continue
		}
		cl, _ := c.Cluster.Get(cluster)
		if cl.Live() == 0 {
			continue
		}
		cells := writeBackCluster(s.world, cluster)
		destroyCluster(s.world, cluster)
		s.record(cluster, cells)
	}
}

func (s *ReabsorbSystem) sweepMembers() {
	c := s.world.Components
	for _, rock := range c.Reabsorb.All() {
		cluster, ok := clusterOf(s.world, rock)
		if !ok || c.Held.Has(cluster) || !s.atRest(rock) {
			continue
		}
		pos, ok := s.world.Resources.Physics.Position(rock)
		if !ok {
			continue
		}
		cells := 0
		if writeBack(s.world, pos) {
			cells = 1
		}
		detachRock(s.world, rock)
		s.record(rock, cells)
	}
}

func (s *ReabsorbSystem) sweepLoose() {
	c := s.world.Components
	for _, rock := range c.Reabsorb.All() {
		if c.Member.Has(rock) || !s.atRest(rock) {
			continue
		}
		pos, ok := s.world.Resources.Physics.Position(rock)
		if !ok {
			continue
		}
		cells := 0
		if writeBack(s.world, pos) {
			cells = 1
		}
		s.world.DestroyEntity(rock)
		s.record(rock, cells)
	}
}

func (s *ReabsorbSystem) record(e core.Entity, cells int) {
	s.statCells.Add(int64(cells))
	s.world.PushEvent(event.EventReabsorbed, &event.ReabsorbPayload{
		Entity: e,
		Cells:  cells,
	})
}
