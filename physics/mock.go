package physics

import (
	"math"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/vmath"
)

type mockBody struct {
	pos          vmath.Vec2
	vel          vmath.Vec2
	mass         float64
	gravityScale float64
	radius       float64
	kind         bodyKind
	rocks        map[core.Entity]struct{}
}

type mockChild struct {
	cluster core.Entity
	offset  vmath.Vec2
}

// MockWorld is a deterministic World for tests
// No contact solving: collisions are injected, bodies move ballistically on Step
type MockWorld struct {
	Gravity  float64
	RockHalf float64
	RockMass float64

	// Impulses accumulates every impulse applied per entity
	Impulses map[core.Entity]vmath.Vec2

	bodies   map[core.Entity]*mockBody
	children map[core.Entity]*mockChild
	pending  []CollisionEvent

	terrain  grid.Store
	cellSize float64
	ground   core.Entity
}

// NewMockWorld creates an empty mock with zero gravity
func NewMockWorld(rockHalf, rockMass float64) *MockWorld {
	return &MockWorld{
		RockHalf: rockHalf,
		RockMass: rockMass,
		Impulses: make(map[core.Entity]vmath.Vec2),
		bodies:   make(map[core.Entity]*mockBody),
		children: make(map[core.Entity]*mockChild),
	}
}

// Inject queues a collision-start between two entities
func (m *MockWorld) Inject(a, b core.Entity) {
	m.pending = append(m.pending, CollisionEvent{A: a, B: b, Started: true})
}

// InjectEnd queues a collision-end between two entities
func (m *MockWorld) InjectEnd(a, b core.Entity) {
	m.pending = append(m.pending, CollisionEvent{A: a, B: b, Started: false})
}

// SetPosition teleports a body
func (m *MockWorld) SetPosition(e core.Entity, pos vmath.Vec2) {
	if b, ok := m.bodies[e]; ok {
		b.pos = pos
	}
}

// GravityScale returns a body's gravity scale
func (m *MockWorld) GravityScale(e core.Entity) (float64, bool) {
	if b, ok := m.bodies[e]; ok {
		return b.gravityScale, true
	}
	return 0, false
}

// Children returns the rock count attached to a cluster
func (m *MockWorld) Children(cluster core.Entity) int {
	if b, ok := m.bodies[cluster]; ok {
		return len(b.rocks)
	}
	return 0
}

// BodyCount returns the number of top-level bodies
func (m *MockWorld) BodyCount() int {
	return len(m.bodies)
}

func (m *MockWorld) AddCluster(e core.Entity, pos vmath.Vec2) {
	if m.Exists(e) {
		return
	}
	m.bodies[e] = &mockBody{pos: pos, kind: kindCluster, rocks: make(map[core.Entity]struct{})}
}

func (m *MockWorld) AttachRock(cluster, rock core.Entity, offset vmath.Vec2) {
	b, ok := m.bodies[cluster]
	if !ok || b.kind != kindCluster || m.Exists(rock) {
		return
	}
	b.rocks[rock] = struct{}{}
	m.children[rock] = &mockChild{cluster: cluster, offset: offset}
}

func (m *MockWorld) DetachRock(rock core.Entity) {
	child, ok := m.children[rock]
	if !ok {
		return
	}
	delete(m.children, rock)
	if b, ok := m.bodies[child.cluster]; ok {
		delete(b.rocks, rock)
	}
}

func (m *MockWorld) AddRock(e core.Entity, pos, vel vmath.Vec2) {
	if m.Exists(e) {
		return
	}
	m.bodies[e] = &mockBody{pos: pos, vel: vel, mass: m.RockMass, gravityScale: 1, kind: kindRock, radius: m.RockHalf}
}

func (m *MockWorld) AddPlayer(e core.Entity, pos vmath.Vec2, radius, mass float64) {
	if m.Exists(e) {
		return
	}
	m.bodies[e] = &mockBody{pos: pos, mass: mass, gravityScale: 1, kind: kindPlayer, radius: radius}
}

func (m *MockWorld) Remove(e core.Entity) {
	if _, ok := m.children[e]; ok {
		m.DetachRock(e)
		return
	}
	b, ok := m.bodies[e]
	if !ok {
		return
	}
	for rock := range b.rocks {
		delete(m.children, rock)
	}
	delete(m.bodies, e)
}

func (m *MockWorld) Exists(e core.Entity) bool {
	if _, ok := m.bodies[e]; ok {
		return true
	}
	_, ok := m.children[e]
	return ok
}

func (m *MockWorld) Position(e core.Entity) (vmath.Vec2, bool) {
	if b, ok := m.bodies[e]; ok {
		return b.pos, true
	}
	if child, ok := m.children[e]; ok {
		if b, ok := m.bodies[child.cluster]; ok {
			return vmath.V2Add(b.pos, child.offset), true
		}
	}
	return vmath.Vec2{}, false
}

func (m *MockWorld) Velocity(e core.Entity) (vmath.Vec2, bool) {
	if b, ok := m.bodies[e]; ok {
		return b.vel, true
	}
	if child, ok := m.children[e]; ok {
		if b, ok := m.bodies[child.cluster]; ok {
			return b.vel, true
		}
	}
	return vmath.Vec2{}, false
}

func (m *MockWorld) SetVelocity(e core.Entity, v vmath.Vec2) {
	if b, ok := m.bodies[e]; ok {
		b.vel = v
	}
}

func (m *MockWorld) Mass(e core.Entity) (float64, bool) {
	if b, ok := m.bodies[e]; ok {
		if b.kind == kindCluster {
			return m.RockMass * float64(len(b.rocks)), true
		}
		return b.mass, true
	}
	if _, ok := m.children[e]; ok {
		return m.RockMass, true
	}
	return 0, false
}

func (m *MockWorld) SetGravityScale(e core.Entity, scale float64) {
	if b, ok := m.bodies[e]; ok {
		b.gravityScale = scale
	}
}

func (m *MockWorld) ApplyImpulse(e core.Entity, impulse vmath.Vec2) {
	b, ok := m.bodies[e]
	if !ok {
		return
	}
	m.Impulses[e] = vmath.V2Add(m.Impulses[e], impulse)
	mass, _ := m.Mass(e)
	if mass > 0 {
		b.vel = vmath.V2Add(b.vel, vmath.V2Scale(impulse, 1/mass))
	}
}

func (m *MockWorld) QueryCircle(center vmath.Vec2, radius float64, dst []core.Entity) []core.Entity {
	for e, b := range m.bodies {
		if b.kind == kindCluster {
			continue
		}
		reach := radius + b.radius
		if vmath.V2DistSq(b.pos, center) <= reach*reach {
			dst = append(dst, e)
		}
	}
	for e, child := range m.children {
		b, ok := m.bodies[child.cluster]
		if !ok {
			continue
		}
		reach := radius + m.RockHalf
		if vmath.V2DistSq(vmath.V2Add(b.pos, child.offset), center) <= reach*reach {
			dst = append(dst, e)
		}
	}
	if m.terrain != nil && m.touchesTerrain(center, radius) {
		dst = append(dst, m.ground)
	}
	return dst
}

func (m *MockWorld) touchesTerrain(center vmath.Vec2, radius float64) bool {
	mp := grid.NewMapper(m.terrain, m.cellSize)
	reach := radius + m.cellSize/2
	cells := int(math.Ceil(reach/m.cellSize)) + 1
	cx, cy := mp.WorldToCell(center)
	for y := cy - cells; y <= cy+cells; y++ {
		for x := cx - cells; x <= cx+cells; x++ {
			if _, ok := m.terrain.Get(x, y); !ok {
				continue
			}
			if vmath.V2DistSq(mp.CellCenter(x, y), center) <= reach*reach {
				return true
			}
		}
	}
	return false
}

func (m *MockWorld) DrainCollisions(dst []CollisionEvent, limit int) ([]CollisionEvent, int) {
	n := min(len(m.pending), limit)
	dst = append(dst, m.pending[:n]...)
	dropped := len(m.pending) - n
	m.pending = m.pending[:0]
	return dst, dropped
}

func (m *MockWorld) SyncTerrain(g grid.Store, cellSize float64, ground core.Entity) {
	m.terrain = g
	m.cellSize = cellSize
	m.ground = ground
}

func (m *MockWorld) Step(dt float64) {
	for _, b := range m.bodies {
		b.vel.Y += m.Gravity * b.gravityScale * dt
		b.pos = vmath.V2Add(b.pos, vmath.V2Scale(b.vel, dt))
	}
}
