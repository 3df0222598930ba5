package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/parameter"
)

// Run is a horizontal span of occupied cells [X0, X1] on row Y
type Run struct {
	X0, X1, Y int
}

// TerrainRuns merges each grid row into maximal occupied spans
func TerrainRuns(g grid.Store) []Run {
	runs := make([]Run, 0, g.Height())
	for y := 0; y < g.Height(); y++ {
		start := -1
		for x := 0; x <= g.Width(); x++ {
			_, occupied := g.Get(x, y)
			switch {
			case occupied && start < 0:
				start = x
			case !occupied && start >= 0:
				runs = append(runs, Run{X0: start, X1: x - 1, Y: y})
				start = -1
			}
		}
	}
	return runs
}

type terrainState struct {
	built   bool
	version uint64
	entity  core.Entity
	shapes  []*cp.Shape
}

// SyncTerrain rebuilds the static colliders when the grid changed since the last sync
func (s *Space) SyncTerrain(g grid.Store, cellSize float64, ground core.Entity) {
	version := g.Version()
	if s.ground.built && s.ground.version == version && s.ground.entity == ground {
		return
	}

	for _, shape := range s.ground.shapes {
		s.space.RemoveShape(shape)
	}
	s.ground.shapes = s.ground.shapes[:0]

	m := grid.NewMapper(g, cellSize)
	for _, run := range TerrainRuns(g) {
		lo := m.CellCenter(run.X0, run.Y)
		hi := m.CellCenter(run.X1, run.Y)
		half := cellSize / 2
		shape := cp.NewBox2(s.terrain, cp.BB{
			L: lo.X - half,
			B: lo.Y - half,
			R: hi.X + half,
			T: hi.Y + half,
		}, 0)
		shape.SetFriction(parameter.RockFriction)
		shape.SetCollisionType(collisionGround)
		shape.SetFilter(filterGround)
		shape.UserData = ground
		s.space.AddShape(shape)
		s.ground.shapes = append(s.ground.shapes, shape)
	}

	s.ground.built = true
	s.ground.version = version
	s.ground.entity = ground
}

// TerrainColliders returns the number of static colliders currently built
func (s *Space) TerrainColliders() int {
	return len(s.ground.shapes)
}
