package system

import (
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/vmath"
)

// MeasureSystem samples displacement-derived cluster velocity in world units per step
// A sample is taken only when the position moved since the last one
type MeasureSystem struct {
	world *engine.World
}

func NewMeasureSystem(world *engine.World) engine.System {
	return &MeasureSystem{world: world}
}

func (s *MeasureSystem) Name() string {
	return "measure"
}

func (s *MeasureSystem) Priority() int {
	return parameter.PriorityMeasure
}

func (s *MeasureSystem) Update() {
	c := s.world.Components
	res := s.world.Resources
	for _, e := range c.Measured.All() {
		pos, ok := res.Physics.Position(e)
		if !ok {
			continue
		}
		m, _ := c.Measured.Get(e)
		switch {
		case !m.Primed:
			m.Last = pos
			m.Primed = true
		case pos != m.Last:
			m.Velocity = vmath.V2Sub(pos, m.Last)
			m.Last = pos
		default:
			continue
		}
		c.Measured.Set(e, m)
	}
}
