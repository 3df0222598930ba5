package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/vmath"
)

// Collision types registered with the solver
const (
	collisionRock cp.CollisionType = iota + 1
	collisionPlayer
	collisionGround
)

var (
	filterCarved = cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: parameter.CategoryCarved,
		Mask:       cp.ALL_CATEGORIES &^ parameter.CategoryLoose,
	}
	filterLoose = cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: parameter.CategoryLoose,
		Mask:       parameter.CategoryLoose | parameter.CategoryGround | parameter.CategoryPlayer,
	}
	filterPlayer = cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: parameter.CategoryPlayer,
		Mask:       cp.ALL_CATEGORIES,
	}
	filterGround = cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: parameter.CategoryGround,
		Mask:       cp.ALL_CATEGORIES,
	}
)

type bodyKind uint8

const (
	kindCluster bodyKind = iota + 1
	kindRock
	kindPlayer
)

type bodyEntry struct {
	body         *cp.Body
	kind         bodyKind
	gravityScale float64
	shape        *cp.Shape                // rock and player
	rocks        map[core.Entity]struct{} // cluster children
}

type childEntry struct {
	shape   *cp.Shape
	cluster core.Entity
	offset  vmath.Vec2
}

// Space implements World on the Chipmunk2D solver
// Gravity scale and rotation lock are applied by a per-body velocity update
type Space struct {
	space *cp.Space

	rockHalf float64
	rockMass float64
	fallback float64

	bodies   map[core.Entity]*bodyEntry
	children map[core.Entity]*childEntry

	terrain *cp.Body
	ground  terrainState

	pending []CollisionEvent
}

// NewSpace creates a solver world from tuning values
func NewSpace(t *parameter.Tuning) *Space {
	s := &Space{
		space:    cp.NewSpace(),
		rockHalf: t.World.RockHalfExtent,
		rockMass: t.World.RockMass,
		fallback: t.Carry.FallbackMass,
		bodies:   make(map[core.Entity]*bodyEntry),
		children: make(map[core.Entity]*childEntry),
		pending:  make([]CollisionEvent, 0, 256),
	}
	s.space.SetGravity(cp.Vector{X: 0, Y: t.World.Gravity})

	s.terrain = cp.NewStaticBody()
	s.space.AddBody(s.terrain)

	pairs := [][2]cp.CollisionType{
		{collisionRock, collisionRock},
		{collisionRock, collisionPlayer},
		{collisionRock, collisionGround},
	}
	for _, pair := range pairs {
		h := s.space.NewCollisionHandler(pair[0], pair[1])
		h.BeginFunc = s.begin
		h.SeparateFunc = s.separate
	}
	return s
}

func (s *Space) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	s.record(a, b, true)
	return true
}

func (s *Space) separate(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	a, b := arb.Shapes()
	s.record(a, b, false)
}

func (s *Space) record(a, b *cp.Shape, started bool) {
	ea, okA := a.UserData.(core.Entity)
	eb, okB := b.UserData.(core.Entity)
	if !okA || !okB {
		return
	}
	s.pending = append(s.pending, CollisionEvent{A: ea, B: eb, Started: started})
}

// newDynamic adds a rotation-locked dynamic body honoring its entry's gravity scale
func (s *Space) newDynamic(e core.Entity, kind bodyKind, mass float64, pos vmath.Vec2, gravityScale float64) *bodyEntry {
	entry := &bodyEntry{
		kind:         kind,
		gravityScale: gravityScale,
	}
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping, dt float64) {
		v := b.Velocity().Mult(damping).Add(gravity.Mult(entry.gravityScale * dt))
		b.SetVelocityVector(v)
		b.SetAngularVelocity(0)
	})
	body.UserData = e
	s.space.AddBody(body)
	body.SetPosition(toCP(pos))

	entry.body = body
	s.bodies[e] = entry
	return entry
}

func (s *Space) addShape(entry *bodyEntry, shape *cp.Shape, mass float64, kind cp.CollisionType, filter cp.ShapeFilter, e core.Entity) {
	shape.SetMass(mass)
	shape.SetFriction(parameter.RockFriction)
	shape.SetCollisionType(kind)
	shape.SetFilter(filter)
	shape.UserData = e
	s.space.AddShape(shape)
	entry.body.SetMoment(cp.INFINITY)
}

func (s *Space) AddCluster(e core.Entity, pos vmath.Vec2) {
	if s.Exists(e) {
		return
	}
	entry := s.newDynamic(e, kindCluster, s.rockMass, pos, 0)
	entry.rocks = make(map[core.Entity]struct{})
}

func (s *Space) AttachRock(cluster, rock core.Entity, offset vmath.Vec2) {
	entry, ok := s.bodies[cluster]
	if !ok || entry.kind != kindCluster || s.Exists(rock) {
		return
	}
	h := s.rockHalf
	shape := cp.NewBox2(entry.body, cp.BB{
		L: offset.X - h,
		B: offset.Y - h,
		R: offset.X + h,
		T: offset.Y + h,
	}, 0)
	s.addShape(entry, shape, s.rockMass, collisionRock, filterCarved, rock)

	entry.rocks[rock] = struct{}{}
	s.children[rock] = &childEntry{shape: shape, cluster: cluster, offset: offset}
}

func (s *Space) DetachRock(rock core.Entity) {
	child, ok := s.children[rock]
	if !ok {
		return
	}
	delete(s.children, rock)
	s.space.RemoveShape(child.shape)

	entry, ok := s.bodies[child.cluster]
	if !ok {
		return
	}
	delete(entry.rocks, rock)
	if len(entry.rocks) == 0 {
		entry.body.SetMass(s.fallback)
	}
	entry.body.SetMoment(cp.INFINITY)
}

func (s *Space) AddRock(e core.Entity, pos, vel vmath.Vec2) {
	if s.Exists(e) {
		return
	}
	entry := s.newDynamic(e, kindRock, s.rockMass, pos, 1)
	shape := cp.NewBox(entry.body, 2*s.rockHalf, 2*s.rockHalf, 0)
	s.addShape(entry, shape, s.rockMass, collisionRock, filterLoose, e)
	entry.shape = shape
	entry.body.SetVelocityVector(toCP(vel))
}

func (s *Space) AddPlayer(e core.Entity, pos vmath.Vec2, radius, mass float64) {
	if s.Exists(e) {
		return
	}
	entry := s.newDynamic(e, kindPlayer, mass, pos, 1)
	shape := cp.NewCircle(entry.body, radius, cp.Vector{})
	s.addShape(entry, shape, mass, collisionPlayer, filterPlayer, e)
	entry.shape = shape
}

func (s *Space) Remove(e core.Entity) {
	if _, ok := s.children[e]; ok {
		s.DetachRock(e)
		return
	}
	entry, ok := s.bodies[e]
	if !ok {
		return
	}
	delete(s.bodies, e)

	for rock := range entry.rocks {
		if child, ok := s.children[rock]; ok {
			s.space.RemoveShape(child.shape)
			delete(s.children, rock)
		}
	}
	if entry.shape != nil {
		s.space.RemoveShape(entry.shape)
	}
	s.space.RemoveBody(entry.body)
}

func (s *Space) Exists(e core.Entity) bool {
	if _, ok := s.bodies[e]; ok {
		return true
	}
	_, ok := s.children[e]
	return ok
}

func (s *Space) Position(e core.Entity) (vmath.Vec2, bool) {
	if entry, ok := s.bodies[e]; ok {
		return fromCP(entry.body.Position()), true
	}
	if child, ok := s.children[e]; ok {
		if entry, ok := s.bodies[child.cluster]; ok {
			return fromCP(entry.body.LocalToWorld(toCP(child.offset))), true
		}
	}
	return vmath.Vec2{}, false
}

func (s *Space) Velocity(e core.Entity) (vmath.Vec2, bool) {
	if entry, ok := s.bodies[e]; ok {
		return fromCP(entry.body.Velocity()), true
	}
	if child, ok := s.children[e]; ok {
		if entry, ok := s.bodies[child.cluster]; ok {
			return fromCP(entry.body.Velocity()), true
		}
	}
	return vmath.Vec2{}, false
}

func (s *Space) SetVelocity(e core.Entity, v vmath.Vec2) {
	if entry, ok := s.bodies[e]; ok {
		entry.body.SetVelocityVector(toCP(v))
	}
}

func (s *Space) Mass(e core.Entity) (float64, bool) {
	if entry, ok := s.bodies[e]; ok {
		if entry.kind == kindCluster && len(entry.rocks) == 0 {
			return 0, true
		}
		return entry.body.Mass(), true
	}
	if _, ok := s.children[e]; ok {
		return s.rockMass, true
	}
	return 0, false
}

func (s *Space) SetGravityScale(e core.Entity, scale float64) {
	if entry, ok := s.bodies[e]; ok {
		entry.gravityScale = scale
	}
}

func (s *Space) ApplyImpulse(e core.Entity, impulse vmath.Vec2) {
	if entry, ok := s.bodies[e]; ok {
		entry.body.ApplyImpulseAtWorldPoint(toCP(impulse), entry.body.Position())
	}
}

// QueryCircle finds shapes whose bounds touch the disk, then keeps those within radius
func (s *Space) QueryCircle(center vmath.Vec2, radius float64, dst []core.Entity) []core.Entity {
	c := toCP(center)
	s.space.BBQuery(cp.NewBBForCircle(c, radius), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if shape.PointQuery(c).Distance > radius {
			return
		}
		e, ok := shape.UserData.(core.Entity)
		if !ok {
			return
		}
		for _, seen := range dst {
			if seen == e {
				return
			}
		}
		dst = append(dst, e)
	}, nil)
	return dst
}

func (s *Space) DrainCollisions(dst []CollisionEvent, limit int) ([]CollisionEvent, int) {
	n := min(len(s.pending), limit)
	dst = append(dst, s.pending[:n]...)
	dropped := len(s.pending) - n
	s.pending = s.pending[:0]
	return dst, dropped
}

func (s *Space) Step(dt float64) {
	s.space.Step(dt)
}

func toCP(v vmath.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) vmath.Vec2 {
	return vmath.Vec2{X: v.X, Y: v.Y}
}
