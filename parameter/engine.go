package parameter

import "time"

// Simulation Timing
const (
	// StepInterval is the fixed simulation step (60 Hz)
	StepInterval = time.Second / 60

	// StepSeconds is StepInterval expressed in seconds for physics math
	StepSeconds = 1.0 / 60.0

	// FrameUpdateInterval is the terminal redraw interval
	FrameUpdateInterval = 16 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047

	// MaxContactsPerStep bounds the collision batch drained from the physics world each step
	// Overflow is dropped and counted in status "contact.dropped"
	MaxContactsPerStep = 1024
)

// Level Defaults
const (
	DefaultGridWidth  = 160
	DefaultGridHeight = 90
	DefaultAppName    = "sandfall"
	SnapshotObject    = "grid"
	SnapshotProp      = "snapshot"
)
