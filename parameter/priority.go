package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityContact    = 10 // Drains the step's collision batch before any reactive system
	PriorityConnection = 20 // Device join/leave
	PriorityAim        = 30
	PriorityCarve      = 40
	PriorityPlace      = 45 // Same input phase as carve, after it
	PriorityMovement   = 55
	PriorityCarry      = 60
	PriorityMeasure    = 65  // After carry commands, before fracture reads measured velocity
	PriorityFracture   = 100 // Damage pass then fracture pass
	PriorityGround     = 120
	PriorityParry      = 130
	PriorityReabsorb   = 200
	PriorityCleanup    = 300
	PriorityPhysics    = 400 // Terrain sync and solver step
	PriorityDiag       = 500
	PriorityInput      = 600 // Edge reset, last
)
