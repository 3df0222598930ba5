package engine

import "github.com/lixenwraith/sandfall/core"

// ContactKind tags what collided, resolved once per collision event
type ContactKind uint8

const (
	ContactRockPlayer ContactKind = iota + 1
	ContactRockRock
	ContactRockGround
)

// Contact is one classified collision start
// Rock is always a rock entity; Other is the player, second rock or ground
type Contact struct {
	Kind  ContactKind
	Rock  core.Entity
	Other core.Entity
}

// ContactBatch is the bounded set of contacts for the current step
type ContactBatch struct {
	Limit    int
	Contacts []Contact
	Dropped  int
}

func NewContactBatch(limit int) *ContactBatch {
	return &ContactBatch{
		Limit:    limit,
		Contacts: make([]Contact, 0, limit),
	}
}

// Reset empties the batch for a new step
func (b *ContactBatch) Reset() {
	b.Contacts = b.Contacts[:0]
	b.Dropped = 0
}

// Add appends a contact, counting it as dropped past Limit
func (b *ContactBatch) Add(c Contact) {
	if len(b.Contacts) >= b.Limit {
		b.Dropped++
		return
	}
	b.Contacts = append(b.Contacts, c)
}

// StepSet is a visited set cleared at the start of every step
type StepSet struct {
	seen map[core.Entity]struct{}
}

func NewStepSet() *StepSet {
	return &StepSet{seen: make(map[core.Entity]struct{})}
}

// Visit marks e, returns false if it was already marked this step
func (s *StepSet) Visit(e core.Entity) bool {
	if _, ok := s.seen[e]; ok {
		return false
	}
	s.seen[e] = struct{}{}
	return true
}

func (s *StepSet) Has(e core.Entity) bool {
	_, ok := s.seen[e]
	return ok
}

func (s *StepSet) Reset() {
	clear(s.seen)
}

func (s *StepSet) Len() int {
	return len(s.seen)
}
