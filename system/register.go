package system

import (
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/status"
)

// RegisterAll adds every simulation system to the world; exporter may be nil
func RegisterAll(world *engine.World, exporter *status.Exporter) {
	world.AddSystem(NewContactSystem(world))
	world.AddSystem(NewConnectionSystem(world))
	world.AddSystem(NewAimSystem(world))
	world.AddSystem(NewCarveSystem(world))
	world.AddSystem(NewPlaceSystem(world))
	world.AddSystem(NewMovementSystem(world))
	world.AddSystem(NewCarrySystem(world))
	world.AddSystem(NewMeasureSystem(world))
	world.AddSystem(NewFractureSystem(world))
	world.AddSystem(NewGroundImpactSystem(world))
	world.AddSystem(NewParrySystem(world))
	world.AddSystem(NewReabsorbSystem(world))
	world.AddSystem(NewCleanupSystem(world))
	world.AddSystem(NewPhysicsSystem(world))
	world.AddSystem(NewDiagnosticsSystem(world, exporter))
	world.AddSystem(NewInputSystem(world))
}
