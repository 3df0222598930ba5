package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/physics"
	"github.com/lixenwraith/sandfall/vmath"
)

// FractureSystem turns the step's rock contacts into player damage and cluster breakage
// The damage pass runs over every rock-player contact before the fracture pass runs over rock-rock contacts
type FractureSystem struct {
	world *engine.World

	statDamage    *atomic.Int64
	statFractured *atomic.Int64
	statOverpower *atomic.Int64
	statLoose     *atomic.Int64

	enabled bool
}

func NewFractureSystem(world *engine.World) engine.System {
	s := &FractureSystem{
		world: world,
	}

	s.statDamage = s.world.Resources.Status.Ints.Get("fracture.damage_hits")
	s.statFractured = s.world.Resources.Status.Ints.Get("fracture.clusters")
	s.statOverpower = s.world.Resources.Status.Ints.Get("fracture.overpower")
	s.statLoose = s.world.Resources.Status.Ints.Get("fracture.loose_rocks")

	s.Init()
	return s
}

func (s *FractureSystem) Init() {
	s.statDamage.Store(0)
	s.statFractured.Store(0)
	s.statOverpower.Store(0)
	s.statLoose.Store(0)
	s.enabled = true
}

func (s *FractureSystem) Name() string {
	return "fracture"
}

func (s *FractureSystem) Priority() int {
	return parameter.PriorityFracture
}

func (s *FractureSystem) Update() {
	if !s.enabled {
		return
	}
	contacts := s.world.Resources.Contacts.Contacts

	for _, c := range contacts {
		if c.Kind == engine.ContactRockPlayer {
			s.damage(c.Rock, c.Other)
		}
	}
	for _, c := range contacts {
		if c.Kind == engine.ContactRockRock {
			s.fracture(c.Rock, c.Other)
		}
	}
}

// damage applies sqrt(speed*mass) to a player struck by a cluster it does not own
func (s *FractureSystem) damage(rock, player core.Entity) {
	c := s.world.Components
	res := s.world.Resources

	cluster, ok := clusterOf(s.world, rock)
	if !ok {
		return
	}
	health, ok := c.Health.Get(player)
	if !ok {
		return
	}
	if owner, ok := c.Owner.Get(cluster); ok && owner.Player == player {
		return
	}
	vel, ok := res.Physics.Velocity(cluster)
	if !ok {
		return
	}
	speed := vmath.V2Mag(vel)
	if speed < res.Tuning.Fracture.VelocityThreshold {
		return
	}
	mass, _ := res.Physics.Mass(cluster)

	dmg := physics.ImpactDamage(speed, mass)
	health.Current -= dmg
	c.Health.Set(player, health)

	rockPos, ok1 := res.Physics.Position(rock)
	playerPos, ok2 := res.Physics.Position(player)
	if ok1 && ok2 {
		impulse := physics.Knockback(playerPos, rockPos, dmg, res.Tuning.Fracture.KnockbackMultiplier)
		res.Physics.ApplyImpulse(player, impulse)
	}

	s.statDamage.Add(1)
	s.world.PushEvent(event.EventPlayerDamaged, &event.DamagePayload{
		Player:  player,
		Cluster: cluster,
		Damage:  dmg,
		Health:  health.Current,
	})
}

// fracture resolves a collision between two distinct clusters
func (s *FractureSystem) fracture(rockA, rockB core.Entity) {
	res := s.world.Resources
	visited := res.Visited

	a, okA := clusterOf(s.world, rockA)
	b, okB := clusterOf(s.world, rockB)
	if !okA || !okB || a == b {
		return
	}
	if visited.Has(a) || visited.Has(b) {
		return
	}

	velA, okA := res.Physics.Velocity(a)
	velB, okB := res.Physics.Velocity(b)
	if !okA || !okB {
		return
	}
	speedA, speedB := vmath.V2Mag(velA), vmath.V2Mag(velB)
	floor := res.Tuning.Fracture.VelocityThreshold
	if speedA < floor && speedB < floor {
		return
	}

	massA, _ := res.Physics.Mass(a)
	massB, _ := res.Physics.Mass(b)
	momentumA := physics.Momentum(velA, massA)
	momentumB := physics.Momentum(velB, massB)

	if math.Abs(momentumA-momentumB) >= res.Tuning.Fracture.Overpower {
		loser, winner, winnerVel := b, a, velA
		if momentumA < momentumB {
			loser, winner, winnerVel = a, b, velB
		}
		visited.Visit(loser)
		n := shatterCluster(s.world, loser, winnerVel)
		s.statOverpower.Add(1)
		s.record(loser, winner, n, false)
		return
	}

	visited.Visit(a)
	visited.Visit(b)
	nA := shatterCluster(s.world, a, velA)
	nB := shatterCluster(s.world, b, velB)
	s.record(a, b, nA, true)
	s.record(b, a, nB, true)
}

func (s *FractureSystem) record(cluster, aggressor core.Entity, rocks int, mutual bool) {
	s.statFractured.Add(1)
	s.statLoose.Add(int64(rocks))
	s.world.PushEvent(event.EventClusterFractured, &event.FracturePayload{
		Cluster:   cluster,
		Aggressor: aggressor,
		Rocks:     rocks,
		Mutual:    mutual,
	})
}
