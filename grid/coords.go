package grid

import (
	"math"

	"github.com/lixenwraith/sandfall/vmath"
)

// Mapper converts between world positions and cell coordinates
// The grid is centered on the world origin; y grows upward in both spaces
type Mapper struct {
	Width    int
	Height   int
	CellSize float64
}

// NewMapper builds a Mapper for a store
func NewMapper(s Store, cellSize float64) Mapper {
	return Mapper{Width: s.Width(), Height: s.Height(), CellSize: cellSize}
}

// WorldToCell returns the cell containing a world point; result may be out of bounds
func (m Mapper) WorldToCell(p vmath.Vec2) (int, int) {
	x := int(math.Floor(p.X/m.CellSize)) + m.Width/2
	y := int(math.Floor(p.Y/m.CellSize)) + m.Height/2
	return x, y
}

// CellCenter returns the world position of a cell's center
func (m Mapper) CellCenter(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: float64(x-m.Width/2)*m.CellSize + m.CellSize/2,
		Y: float64(y-m.Height/2)*m.CellSize + m.CellSize/2,
	}
}

// CellRadius converts a world radius into a cell half-side
func (m Mapper) CellRadius(r float64) int {
	return int(math.Round(r / m.CellSize))
}
