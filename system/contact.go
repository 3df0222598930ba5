package system

import (
	"sync/atomic"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/physics"
)

// ContactSystem drains the physics collision stream into the step's contact batch
// Each collision start is classified once; unrelated pairs and collision ends are discarded
type ContactSystem struct {
	world *engine.World

	buf []physics.CollisionEvent

	statContacts *atomic.Int64
	statDropped  *atomic.Int64

	enabled bool
}

func NewContactSystem(world *engine.World) engine.System {
	s := &ContactSystem{
		world: world,
		buf:   make([]physics.CollisionEvent, 0, world.Resources.Contacts.Limit),
	}

	s.statContacts = s.world.Resources.Status.Ints.Get("contact.count")
	s.statDropped = s.world.Resources.Status.Ints.Get("contact.dropped")

	s.Init()
	return s
}

func (s *ContactSystem) Init() {
	s.statContacts.Store(0)
	s.statDropped.Store(0)
	s.enabled = true
}

func (s *ContactSystem) Name() string {
	return "contact"
}

func (s *ContactSystem) Priority() int {
	return parameter.PriorityContact
}

func (s *ContactSystem) Update() {
	res := s.world.Resources
	res.Visited.Reset()
	res.Contacts.Reset()

	if !s.enabled {
		return
	}

	var dropped int
	s.buf, dropped = res.Physics.DrainCollisions(s.buf[:0], res.Contacts.Limit)
	res.Contacts.Dropped += dropped

	for _, ev := range s.buf {
		if !ev.Started {
			continue
		}
		if c, ok := s.classify(ev.A, ev.B); ok {
			res.Contacts.Add(c)
		}
	}

	s.statContacts.Store(int64(len(res.Contacts.Contacts)))
	if res.Contacts.Dropped > 0 {
		s.statDropped.Add(int64(res.Contacts.Dropped))
	}
}

// classify resolves an unordered pair into a tagged contact with the rock first
func (s *ContactSystem) classify(a, b core.Entity) (engine.Contact, bool) {
	rocks := s.world.Components.Rock
	aRock, bRock := rocks.Has(a), rocks.Has(b)

	switch {
	case aRock && bRock:
		return engine.Contact{Kind: engine.ContactRockRock, Rock: a, Other: b}, true
	case !aRock && !bRock:
		return engine.Contact{}, false
	case bRock:
		a, b = b, a
	}

	switch {
	case s.world.Components.Player.Has(b):
		return engine.Contact{Kind: engine.ContactRockPlayer, Rock: a, Other: b}, true
	case s.world.Components.Ground.Has(b):
		return engine.Contact{Kind: engine.ContactRockGround, Rock: a, Other: b}, true
	}
	return engine.Contact{}, false
}
