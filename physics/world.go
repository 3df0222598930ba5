package physics

import (
	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/vmath"
)

// CollisionEvent is one contact transition between two colliders
// A and B are the entities attached to the colliders (rock child, loose rock, player, ground)
type CollisionEvent struct {
	A       core.Entity
	B       core.Entity
	Started bool
}

// World is the rigid-body contract consumed by the engine
// Lookups on unknown entities return false or do nothing
type World interface {
	// AddCluster creates a massless, rotation-locked body with gravity scale 0
	AddCluster(e core.Entity, pos vmath.Vec2)
	// AttachRock adds a rock collider to a cluster at a local offset
	AttachRock(cluster, rock core.Entity, offset vmath.Vec2)
	// DetachRock removes a rock collider from its cluster
	DetachRock(rock core.Entity)
	// AddRock creates a standalone loose rock body
	AddRock(e core.Entity, pos, vel vmath.Vec2)
	// AddPlayer creates a rotation-locked circular body
	AddPlayer(e core.Entity, pos vmath.Vec2, radius, mass float64)
	// Remove deletes a body or a rock collider; cluster removal drops its colliders
	Remove(e core.Entity)

	Exists(e core.Entity) bool
	// Position returns world position; rock children report their collider center
	Position(e core.Entity) (vmath.Vec2, bool)
	Velocity(e core.Entity) (vmath.Vec2, bool)
	SetVelocity(e core.Entity, v vmath.Vec2)
	// Mass returns the aggregate mass; clusters sum their rock colliders
	Mass(e core.Entity) (float64, bool)
	SetGravityScale(e core.Entity, scale float64)
	ApplyImpulse(e core.Entity, impulse vmath.Vec2)

	// QueryCircle appends every entity whose collider overlaps the disk
	QueryCircle(center vmath.Vec2, radius float64, dst []core.Entity) []core.Entity

	// DrainCollisions moves up to limit pending events into dst, returns dropped overflow count
	DrainCollisions(dst []CollisionEvent, limit int) ([]CollisionEvent, int)

	// SyncTerrain rebuilds static colliders from the grid when its version changed
	SyncTerrain(g grid.Store, cellSize float64, ground core.Entity)

	Step(dt float64)
}
