package parameter

// Player body
const (
	PlayerHealth = 50000.0
	PlayerMass   = 20000.0
	PlayerRadius = 15.0
	PlayerReach  = 200.0
)

// Carve radius easing
const (
	CarveRadiusMin   = 30.0
	CarveRadiusMax   = 80.0
	CarveRadiusSpeed = 0.2
)

// Parry window
const (
	ParryRadiusMax = 70.0
	ParryRadiusMin = 10.0
	// ParryDuration is the active window in seconds
	ParryDuration = 0.1
	// ParryRegen is the radius regained per idle second
	ParryRegen = 10.0
	// ParryFalloff is the radius lost each time a window closes
	ParryFalloff = 70.0
)

// Locomotion
const (
	WalkSpeed  = 800.0
	WalkAccel  = 1600.0
	JumpHeight = 350.0
	ExtraJumps = 1

	// GroundProbe is the distance below the player body searched for ground
	GroundProbe = 4.0
)
