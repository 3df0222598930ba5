package parameter

// World physics
const (
	// GravityY is the world gravity along y (y up)
	GravityY = -981.0

	// CellSize is the edge length of one grid cell in world units
	CellSize = 8.0

	// RockHalfExtent is the half edge of a rock collider (slightly under half a cell)
	RockHalfExtent = 3.0

	// RockMass is the mass of one rock collider (6x6 box at unit density)
	RockMass = 36.0

	// RockFriction applies to rock and terrain colliders
	RockFriction = 0.7

	// DespawnFallenY is the world floor below which rocks are discarded
	DespawnFallenY = -1000.0

	// RestSpeedSq is the squared speed at or below which a body counts as settled
	RestSpeedSq = 0.1
)

// Fracture & damage
const (
	// Overpower is the momentum gap at which only the weaker cluster breaks
	Overpower = 20000.0

	// VelocityThreshold is the speed floor for damage and fracture
	VelocityThreshold = 500.0

	// KnockbackMultiplier scales damage into the player knockback impulse
	KnockbackMultiplier = 5000.0
)

// Ground impact
const (
	// GroundVelocity is the speed floor for a rock to separate on ground contact
	GroundVelocity = 5.0

	// BreakGround is the speed at or above which ground contact carves the terrain
	BreakGround = 10.0

	// BreakRadius is the cell radius of the terrain neighborhood cleared on break
	BreakRadius = 1

	// VelocityVsExternal is the allowed divergence between physics and measured speed
	VelocityVsExternal = 200.0
)

// Carry controller
const (
	// CarrySpring converts offset to velocity command before mass normalization
	CarrySpring = 400.0

	// CarryFallbackMass replaces non-finite or near-zero cluster mass (sqrt = 64)
	CarryFallbackMass = 4096.0

	// CarryMassEpsilon is the mass at or below which the fallback applies
	CarryMassEpsilon = 1e-6

	// TossMultiplier scales velocity when a held cluster is released
	TossMultiplier = 2.0
)

// Collision filter categories
const (
	CategoryCarved uint = 1 << iota
	CategoryLoose
	CategoryPlayer
	CategoryGround
)
