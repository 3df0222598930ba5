package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/physics"
	"github.com/lixenwraith/sandfall/status"
	"github.com/lixenwraith/sandfall/vmath"
)

// TimeResource is the step clock
type TimeResource struct {
	Frame   int64
	Delta   float64 // Seconds per step
	Elapsed float64
}

// GrabState is the process-wide hold flag
// Advisory only: correctness is driven by PlayerComponent.Held
type GrabState uint8

const (
	GrabEmpty GrabState = iota
	GrabHolding
)

func (g GrabState) String() string {
	if g == GrabHolding {
		return "holding"
	}
	return "empty"
}

// HoldResource carries the global GrabState
type HoldResource struct {
	State GrabState
}

// Resources are the singletons shared by all systems
type Resources struct {
	Time    *TimeResource
	Tuning  *parameter.Tuning
	Grid    grid.Store
	Mapper  grid.Mapper
	Physics physics.World

	Contacts *ContactBatch
	Visited  *StepSet
	Hold     *HoldResource
	Devices  *input.Registry

	Events *event.EventQueue
	Status *status.Registry
	Log    zerolog.Logger

	// Spawns are level spawn points assigned to joining players round-robin
	Spawns []vmath.Vec2

	// Ground is the entity attached to every static terrain collider
	Ground core.Entity
}

// NewResources assembles resources around a grid and physics world
func NewResources(t *parameter.Tuning, g grid.Store, pw physics.World, log zerolog.Logger) *Resources {
	return &Resources{
		Time:     &TimeResource{Delta: t.World.StepSeconds},
		Tuning:   t,
		Grid:     g,
		Mapper:   grid.NewMapper(g, t.World.CellSize),
		Physics:  pw,
		Contacts: NewContactBatch(t.World.MaxContacts),
		Visited:  NewStepSet(),
		Hold:     &HoldResource{},
		Devices:  input.NewRegistry(),
		Events:   event.NewEventQueue(),
		Status:   status.NewRegistry(),
		Log:      log,
	}
}
