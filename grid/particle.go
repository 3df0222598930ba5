package grid

import "github.com/lixenwraith/sandfall/core"

// Kind tags a particle's material
type Kind uint8

const (
	KindDirt Kind = iota + 1
	KindStone
	KindSand
)

// Particle is the content of one occupied cell
type Particle struct {
	Kind  Kind
	Color core.RGBA
}

// Terrain is the default particle written when rocks settle back into the grid
// Color is not round-tripped; settled rocks become plain dirt
func Terrain() Particle {
	return Particle{Kind: KindDirt, Color: core.RGBADirt}
}
