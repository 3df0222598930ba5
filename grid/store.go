package grid

// Store is the particle grid contract consumed by the engine
// Coordinates are signed; every accessor rejects out-of-bounds input
type Store interface {
	Width() int
	Height() int
	InBounds(x, y int) bool

	// Get returns the particle at (x, y); false when empty or out of bounds
	Get(x, y int) (Particle, bool)

	// Set writes a particle; out-of-bounds writes are ignored
	Set(x, y int, p Particle)

	// Clear empties a cell; out-of-bounds clears are ignored
	Clear(x, y int)

	// Version increments on every effective mutation
	Version() uint64
}
