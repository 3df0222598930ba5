package system

import (
	"sync/atomic"

	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/parameter"
)

// PhysicsSystem refreshes terrain colliders and advances the solver by one step
type PhysicsSystem struct {
	world *engine.World

	statSteps *atomic.Int64

	enabled bool
}

func NewPhysicsSystem(world *engine.World) engine.System {
	s := &PhysicsSystem{
		world: world,
	}

	s.statSteps = s.world.Resources.Status.Ints.Get("physics.steps")

	s.Init()
	return s
}

func (s *PhysicsSystem) Init() {
	s.statSteps.Store(0)
	s.enabled = true
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update() {
	if !s.enabled {
		return
	}
	res := s.world.Resources
	res.Physics.SyncTerrain(res.Grid, res.Tuning.World.CellSize, res.Ground)
	res.Physics.Step(res.Time.Delta)
	s.statSteps.Add(1)
}
