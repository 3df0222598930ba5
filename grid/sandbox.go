package grid

import "sync"

// Sandbox is a dense row-major Store, row 0 at the bottom (y up)
type Sandbox struct {
	mu       sync.RWMutex
	width    int
	height   int
	cells    []Particle
	occupied []bool
	version  uint64
}

// NewSandbox allocates an empty grid; non-positive dimensions clamp to 1
func NewSandbox(width, height int) *Sandbox {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Sandbox{
		width:    width,
		height:   height,
		cells:    make([]Particle, width*height),
		occupied: make([]bool, width*height),
	}
}

func (g *Sandbox) Width() int  { return g.width }
func (g *Sandbox) Height() int { return g.height }

func (g *Sandbox) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Sandbox) index(x, y int) int { return y*g.width + x }

func (g *Sandbox) Get(x, y int) (Particle, bool) {
	if !g.InBounds(x, y) {
		return Particle{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i := g.index(x, y)
	if !g.occupied[i] {
		return Particle{}, false
	}
	return g.cells[i], true
}

func (g *Sandbox) Set(x, y int, p Particle) {
	if !g.InBounds(x, y) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	i := g.index(x, y)
	if g.occupied[i] && g.cells[i] == p {
		return
	}
	g.cells[i] = p
	g.occupied[i] = true
	g.version++
}

func (g *Sandbox) Clear(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	i := g.index(x, y)
	if !g.occupied[i] {
		return
	}
	g.cells[i] = Particle{}
	g.occupied[i] = false
	g.version++
}

func (g *Sandbox) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.version
}

// Count returns the number of occupied cells
func (g *Sandbox) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, occ := range g.occupied {
		if occ {
			n++
		}
	}
	return n
}

// Snapshot is a serializable copy of a Sandbox
type Snapshot struct {
	Width    int
	Height   int
	Cells    []Particle
	Occupied []bool
}

// Snapshot copies the grid contents
func (g *Sandbox) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s := Snapshot{
		Width:    g.width,
		Height:   g.height,
		Cells:    make([]Particle, len(g.cells)),
		Occupied: make([]bool, len(g.occupied)),
	}
	copy(s.Cells, g.cells)
	copy(s.Occupied, g.occupied)
	return s
}

// Restore replaces grid contents; dimensions must match
func (g *Sandbox) Restore(s Snapshot) bool {
	if s.Width != g.width || s.Height != g.height ||
		len(s.Cells) != len(g.cells) || len(s.Occupied) != len(g.occupied) {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	copy(g.cells, s.Cells)
	copy(g.occupied, s.Occupied)
	g.version++
	return true
}
