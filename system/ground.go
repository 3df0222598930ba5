package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/vmath"
)

// GroundImpactSystem knocks rocks out of clusters that strike terrain under their own momentum
// Clusters moving at the speed their displacement shows are carried and never separate
type GroundImpactSystem struct {
	world *engine.World

	statImpacts *atomic.Int64
	statCleared *atomic.Int64

	enabled bool
}

func NewGroundImpactSystem(world *engine.World) engine.System {
	s := &GroundImpactSystem{
		world: world,
	}

	s.statImpacts = s.world.Resources.Status.Ints.Get("ground.impacts")
	s.statCleared = s.world.Resources.Status.Ints.Get("ground.cleared")

	s.Init()
	return s
}

func (s *GroundImpactSystem) Init() {
	s.statImpacts.Store(0)
	s.statCleared.Store(0)
	s.enabled = true
}

func (s *GroundImpactSystem) Name() string {
	return "ground"
}

func (s *GroundImpactSystem) Priority() int {
	return parameter.PriorityGround
}

func (s *GroundImpactSystem) Update() {
	if !s.enabled {
		return
	}
	for _, c := range s.world.Resources.Contacts.Contacts {
		if c.Kind == engine.ContactRockGround {
			s.impact(c.Rock)
		}
	}
}

func (s *GroundImpactSystem) impact(rock core.Entity) {
	c := s.world.Components
	res := s.world.Resources
	tg := res.Tuning.Ground

	cluster, ok := clusterOf(s.world, rock)
	if !ok {
		return
	}
	vel, ok := res.Physics.Velocity(cluster)
	if !ok {
		return
	}
	speed := vmath.V2Mag(vel)
	if speed < tg.Velocity {
		return
	}
	measured, _ := c.Measured.Get(cluster)
	if math.Abs(speed-vmath.V2Mag(measured.Velocity)) <= tg.VelocityVsExternal {
		return
	}
	pos, ok := res.Physics.Position(rock)
	if !ok {
		return
	}

	r, _ := c.Rock.Get(rock)
	detachRock(s.world, rock)
	spawnLooseRock(s.world, pos, vel, r.Color)

	cleared := 0
	if speed >= tg.Break {
		cleared = s.crater(pos, tg.BreakRadius)
	}

	s.statImpacts.Add(1)
	s.statCleared.Add(int64(cleared))
	s.world.PushEvent(event.EventGroundImpact, &event.GroundImpactPayload{
		Rock:    rock,
		Cluster: cluster,
		Speed:   speed,
		Cleared: cleared,
	})
}

// crater clears the in-bounds (2r+1)^2 cells around pos, returns cells emptied
func (s *GroundImpactSystem) crater(pos vmath.Vec2, radius int) int {
	res := s.world.Resources
	cx, cy := res.Mapper.WorldToCell(pos)
	cleared := 0
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !res.Grid.InBounds(x, y) {
				continue
			}
			if _, ok := res.Grid.Get(x, y); !ok {
				continue
			}
			res.Grid.Clear(x, y)
			cleared++
		}
	}
	return cleared
}
