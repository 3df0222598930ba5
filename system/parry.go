package system

import (
	"sync/atomic"

	"github.com/lixenwraith/sandfall/component"
	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/physics"
)

// ParrySystem runs each player's Idle/Active redirect window
// While active, clusters overlapping the parry disk are bent away and claimed by the player
type ParrySystem struct {
	world *engine.World

	hits []core.Entity

	statParried *atomic.Int64

	enabled bool
}

func NewParrySystem(world *engine.World) engine.System {
	s := &ParrySystem{
		world: world,
		hits:  make([]core.Entity, 0, 64),
	}

	s.statParried = s.world.Resources.Status.Ints.Get("parry.redirected")

	s.Init()
	return s
}

func (s *ParrySystem) Init() {
	s.statParried.Store(0)
	s.enabled = true
}

func (s *ParrySystem) Name() string {
	return "parry"
}

func (s *ParrySystem) Priority() int {
	return parameter.PriorityParry
}

func (s *ParrySystem) Update() {
	if !s.enabled {
		return
	}
	c := s.world.Components
	dt := s.world.Resources.Time.Delta

	for _, e := range c.Parry.All() {
		parry, _ := c.Parry.Get(e)

		if ctl, ok := c.Control.Get(e); ok && ctl.State != nil &&
			ctl.State.JustPressed(input.ActionParry) && !parry.Active() {
			parry.Remaining = parry.Duration
		}

		if parry.Active() {
			s.redirect(e, parry.Radius)
			parry.Remaining -= dt
			if parry.Remaining <= 0 {
				parry.Remaining = 0
				parry.Radius = max(parry.Radius-parry.Falloff, parry.MinRadius)
			}
		} else {
			parry.Radius = min(parry.Radius+parry.Regen*dt, parry.MaxRadius)
		}

		c.Parry.Set(e, parry)
	}
}

// redirect bends every cluster within radius of the player, at most once per cluster per step
func (s *ParrySystem) redirect(player core.Entity, radius float64) {
	c := s.world.Components
	res := s.world.Resources

	center, ok := res.Physics.Position(player)
	if !ok {
		return
	}
	s.hits = res.Physics.QueryCircle(center, radius, s.hits[:0])

	for _, hit := range s.hits {
		cluster, ok := clusterOf(s.world, hit)
		if !ok || !res.Visited.Visit(cluster) {
			continue
		}
		vel, ok1 := res.Physics.Velocity(cluster)
		pos, ok2 := res.Physics.Position(cluster)
		if !ok1 || !ok2 {
			continue
		}

		res.Physics.SetVelocity(cluster, physics.Redirect(vel, pos, center))
		if c.Held.Has(cluster) {
			releaseHold(s.world, cluster)
		}

		previous, _ := c.Owner.Get(cluster)
		c.Owner.Set(cluster, component.OwnerComponent{Player: player})

		s.statParried.Add(1)
		s.world.PushEvent(event.EventParry, &event.ParryPayload{
			Player:        player,
			Cluster:       cluster,
			PreviousOwner: previous.Player,
		})
	}
}
