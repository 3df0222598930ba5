package system

import (
	"sync/atomic"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/parameter"
)

// CleanupSystem despawns dead players, rocks below the world floor and clusters left empty
type CleanupSystem struct {
	world *engine.World

	statDeaths *atomic.Int64
	statLost   *atomic.Int64

	enabled bool
}

func NewCleanupSystem(world *engine.World) engine.System {
	s := &CleanupSystem{
		world: world,
	}

	s.statDeaths = s.world.Resources.Status.Ints.Get("cleanup.deaths")
	s.statLost = s.world.Resources.Status.Ints.Get("cleanup.rocks_lost")

	s.Init()
	return s
}

func (s *CleanupSystem) Init() {
	s.statDeaths.Store(0)
	s.statLost.Store(0)
	s.enabled = true
}

func (s *CleanupSystem) Name() string {
	return "cleanup"
}

func (s *CleanupSystem) Priority() int {
	return parameter.PriorityCleanup
}

func (s *CleanupSystem) Update() {
	if !s.enabled {
		return
	}
	s.players()
	s.fallen()
	s.empty()
}

func (s *CleanupSystem) players() {
	c := s.world.Components
	for _, e := range c.Health.All() {
		h, _ := c.Health.Get(e)
		if h.Current > 0 {
			continue
		}
		y := 0.0
		if pos, ok := s.world.Resources.Physics.Position(e); ok {
			y = pos.Y
		}
		removePlayer(s.world, e)
		s.statDeaths.Add(1)
		s.world.PushEvent(event.EventPlayerDied, &event.ClusterPayload{Player: e, Y: y})
	}
}

func (s *CleanupSystem) fallen() {
	c := s.world.Components
	res := s.world.Resources
	floor := res.Tuning.World.DespawnFallenY

	for _, rock := range c.Rock.All() {
		pos, ok := res.Physics.Position(rock)
		if !ok || pos.Y >= floor {
			continue
		}
		cluster := core.NoEntity
		if m, ok := c.Member.Get(rock); ok {
			cluster = m.Cluster
			detachRock(s.world, rock)
		} else {
			s.world.DestroyEntity(rock)
		}
		s.statLost.Add(1)
		s.world.PushEvent(event.EventRockLost, &event.ClusterPayload{Cluster: cluster, Y: pos.Y})
	}
}

func (s *CleanupSystem) empty() {
	c := s.world.Components
	for _, cluster := range c.Cluster.All() {
		cl, _ := c.Cluster.Get(cluster)
		if cl.Live() > 0 {
			continue
		}
		destroyCluster(s.world, cluster)
	}
}
