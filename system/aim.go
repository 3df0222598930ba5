package system

import (
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/vmath"
)

// AimSystem copies the aim axis into the player's aim direction
// A centered stick keeps the previous aim
type AimSystem struct {
	world *engine.World
}

func NewAimSystem(world *engine.World) engine.System {
	return &AimSystem{world: world}
}

func (s *AimSystem) Name() string {
	return "aim"
}

func (s *AimSystem) Priority() int {
	return parameter.PriorityAim
}

func (s *AimSystem) Update() {
	c := s.world.Components
	for _, e := range c.Player.All() {
		ctl, ok := c.Control.Get(e)
		if !ok || ctl.State == nil {
			continue
		}
		aim := ctl.State.Axis(input.AxisAim)
		if vmath.V2MagSq(aim) == 0 {
			continue
		}
		p, _ := c.Player.Get(e)
		p.Aim = aim
		c.Player.Set(e, p)
	}
}
