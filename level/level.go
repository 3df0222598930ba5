package level

import (
	"fmt"

	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/vmath"
)

// Level is a loaded descriptor with its populated grid
type Level struct {
	Descriptor *Descriptor
	Grid       *grid.Sandbox
	Particles  int
}

// Load reads a descriptor and ingests its terrain image
// Grid dimensions come from the descriptor, falling back to the image size
func Load(path string) (*Level, error) {
	d, err := LoadDescriptor(path)
	if err != nil {
		return nil, err
	}
	return Build(d)
}

// Build creates the grid for a parsed descriptor
func Build(d *Descriptor) (*Level, error) {
	lvl := &Level{Descriptor: d}

	if d.Image == "" {
		lvl.Grid = grid.NewSandbox(d.Width, d.Height)
		return lvl, nil
	}

	img, err := LoadImage(d.ImagePath())
	if err != nil {
		return nil, err
	}
	w, h := d.Width, d.Height
	if w == 0 {
		w = img.Bounds().Dx()
	}
	if h == 0 {
		h = img.Bounds().Dy()
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("level %q: empty grid %dx%d", d.Name, w, h)
	}
	for i, s := range d.Spawns {
		if s.X < 0 || s.X >= w || s.Y < 0 || s.Y >= h {
			return nil, fmt.Errorf("level %q: spawn %d at (%d,%d) outside %dx%d grid", d.Name, i, s.X, s.Y, w, h)
		}
	}

	lvl.Grid = grid.NewSandbox(w, h)
	lvl.Particles = Ingest(img, lvl.Grid)
	return lvl, nil
}

// SpawnPoints converts spawn pixels into world positions at cell centers
func (l *Level) SpawnPoints() []vmath.Vec2 {
	m := grid.NewMapper(l.Grid, l.Descriptor.CellSize)
	out := make([]vmath.Vec2, 0, len(l.Descriptor.Spawns))
	for _, s := range l.Descriptor.Spawns {
		out = append(out, m.CellCenter(s.X, l.Grid.Height()-1-s.Y))
	}
	return out
}
