package component

import (
	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/vmath"
)

// PlayerComponent holds per-player interaction state
type PlayerComponent struct {
	Device     int
	Aim        vmath.Vec2  // Unit aim direction
	Reach      float64     // Distance from body to held cluster edge
	Held       core.Entity // At most one held cluster, zero when empty
	ExtraJumps int
	MaxJumps   int
	Grounded   bool
}

// HealthComponent removes the player at zero
type HealthComponent struct {
	Current float64
	Max     float64
}

// CarveComponent is the carve radius, eased toward Max while carve is held
type CarveComponent struct {
	Min     float64
	Current float64
	Max     float64
	Speed   float64
}

// ParryComponent tracks the redirect window and its shrinking radius
// Idle when Remaining is zero
type ParryComponent struct {
	MaxRadius float64
	MinRadius float64
	Radius    float64
	Duration  float64
	Remaining float64
	Regen     float64
	Falloff   float64
}

// Active reports whether the redirect window is open
func (p *ParryComponent) Active() bool {
	return p.Remaining > 0
}

// ControlComponent links a player to its action state
type ControlComponent struct {
	State *input.ActionState
}
