package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/physics"
)

// NewTestWorld builds a world over an empty sandbox and a MockWorld
// Logging is discarded; tuning is the compiled-in default
func NewTestWorld(width, height int) (*World, *grid.Sandbox, *physics.MockWorld) {
	tun := parameter.DefaultTuning()
	g := grid.NewSandbox(width, height)
	pw := physics.NewMockWorld(tun.World.RockHalfExtent, tun.World.RockMass)
	res := NewResources(&tun, g, pw, zerolog.Nop())
	return NewWorld(res), g, pw
}
