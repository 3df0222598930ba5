package system

import (
	"sync/atomic"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/physics"
	"github.com/lixenwraith/sandfall/vmath"
)

// CarrySystem springs held clusters toward their holder's aim point and handles the toss
type CarrySystem struct {
	world *engine.World

	statHeld   *atomic.Int64
	statTossed *atomic.Int64

	enabled bool
}

func NewCarrySystem(world *engine.World) engine.System {
	s := &CarrySystem{
		world: world,
	}

	s.statHeld = s.world.Resources.Status.Ints.Get("carry.held")
	s.statTossed = s.world.Resources.Status.Ints.Get("carry.tossed")

	s.Init()
	return s
}

func (s *CarrySystem) Init() {
	s.statHeld.Store(0)
	s.statTossed.Store(0)
	s.enabled = true
}

func (s *CarrySystem) Name() string {
	return "carry"
}

func (s *CarrySystem) Priority() int {
	return parameter.PriorityCarry
}

func (s *CarrySystem) Update() {
	if !s.enabled {
		return
	}
	s.tossPass()
	s.springPass()
}

// tossPass releases held clusters whose holder pressed carve again
func (s *CarrySystem) tossPass() {
	c := s.world.Components
	res := s.world.Resources

	for _, e := range c.Player.All() {
		ctl, ok := c.Control.Get(e)
		if !ok || ctl.State == nil || !ctl.State.JustPressed(input.ActionCarve) {
			continue
		}
		p, _ := c.Player.Get(e)
		if p.Held == core.NoEntity {
			continue
		}
		cluster := p.Held
		vel, _ := res.Physics.Velocity(cluster)

		releaseHold(s.world, cluster)
		res.Physics.SetVelocity(cluster, vmath.V2Scale(vel, res.Tuning.Carry.Toss))

		s.statTossed.Add(1)
		y := 0.0
		if pos, ok := res.Physics.Position(cluster); ok {
			y = pos.Y
		}
		s.world.PushEvent(event.EventRelease, &event.ClusterPayload{
			Player:  e,
			Cluster: cluster,
			Y:       y,
		})
	}
}

// springPass commands every held cluster toward owner position + aim*(reach+radius)
func (s *CarrySystem) springPass() {
	c := s.world.Components
	res := s.world.Resources
	tc := res.Tuning.Carry

	held := c.Held.All()
	for _, cluster := range held {
		h, _ := c.Held.Get(cluster)
		p, ok := c.Player.Get(h.Holder)
		if !ok || p.Held != cluster {
			releaseHold(s.world, cluster)
			continue
		}
		owner, ok := res.Physics.Position(h.Holder)
		if !ok {
			continue
		}
		current, ok := res.Physics.Position(cluster)
		if !ok {
			continue
		}

		radius := 0.0
		if carve, ok := c.Carve.Get(h.Holder); ok {
			radius = carve.Current
		}
		desired := vmath.V2Add(owner, vmath.V2Scale(p.Aim, p.Reach+radius))

		mass, _ := res.Physics.Mass(cluster)
		mass = physics.EffectiveMass(mass, tc.MassEpsilon, tc.FallbackMass)
		res.Physics.SetVelocity(cluster, physics.SpringVelocity(current, desired, tc.Spring, mass))
	}
	s.statHeld.Store(int64(c.Held.Count()))
}
