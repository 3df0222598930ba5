package system

import (
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/parameter"
)

// InputSystem latches every player's buttons at the end of the step
// Runs last so JustPressed/JustReleased hold for exactly one step
type InputSystem struct {
	world *engine.World
}

func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{world: world}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update() {
	controls := s.world.Components.Control
	for _, e := range controls.All() {
		ctl, ok := controls.Get(e)
		if !ok || ctl.State == nil {
			continue
		}
		ctl.State.Advance()
	}
}
