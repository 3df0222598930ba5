package system

import (
	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/physics"
	"github.com/lixenwraith/sandfall/vmath"
)

// MovementSystem drives walk and jump on player bodies
// Grounded means a terrain collider lies within the probe radius under the feet
type MovementSystem struct {
	world *engine.World

	hits []core.Entity

	enabled bool
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{
		world: world,
		hits:  make([]core.Entity, 0, 8),
	}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {
	s.enabled = true
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Update() {
	if !s.enabled {
		return
	}
	c := s.world.Components
	res := s.world.Resources
	t := res.Tuning
	dt := res.Time.Delta

	for _, e := range c.Player.All() {
		ctl, ok := c.Control.Get(e)
		if !ok || ctl.State == nil {
			continue
		}
		pos, ok := res.Physics.Position(e)
		if !ok {
			continue
		}
		vel, _ := res.Physics.Velocity(e)
		p, _ := c.Player.Get(e)

		p.Grounded = s.grounded(pos)
		if p.Grounded {
			p.ExtraJumps = p.MaxJumps
		}

		move := ctl.State.Axis(input.AxisMove)
		vel.X = physics.Approach(vel.X, move.X*t.Player.WalkSpeed, t.Player.WalkAccel*dt)

		if ctl.State.JustPressed(input.ActionJump) {
			switch {
			case p.Grounded:
				vel.Y = t.JumpSpeed()
			case p.ExtraJumps > 0:
				p.ExtraJumps--
				vel.Y = t.JumpSpeed()
			}
		}

		res.Physics.SetVelocity(e, vel)
		c.Player.Set(e, p)
	}
}

func (s *MovementSystem) grounded(pos vmath.Vec2) bool {
	res := s.world.Resources
	feet := vmath.Vec2{X: pos.X, Y: pos.Y - res.Tuning.Player.Radius}
	s.hits = res.Physics.QueryCircle(feet, res.Tuning.Player.GroundProbe, s.hits[:0])
	for _, h := range s.hits {
		if h == res.Ground {
			return true
		}
	}
	return false
}
