package component

import "github.com/lixenwraith/sandfall/core"

// RockComponent is one former grid cell living in the physics world
type RockComponent struct {
	Color core.RGBA
}

// ReabsorbComponent marks a rock for write-back into the grid once it settles
type ReabsorbComponent struct{}

// GroundComponent tags the entity standing for static terrain colliders
type GroundComponent struct{}
