package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/sandfall/component"
	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/vmath"
)

// CarveSystem grows the carve radius while carve is held and lifts grid cells into a held cluster on release
type CarveSystem struct {
	world *engine.World

	seeds []rockSeed

	statCarves *atomic.Int64
	statCells  *atomic.Int64

	enabled bool
}

func NewCarveSystem(world *engine.World) engine.System {
	s := &CarveSystem{
		world: world,
		seeds: make([]rockSeed, 0, 64),
	}

	s.statCarves = s.world.Resources.Status.Ints.Get("carve.count")
	s.statCells = s.world.Resources.Status.Ints.Get("carve.cells")

	s.Init()
	return s
}

func (s *CarveSystem) Init() {
	s.statCarves.Store(0)
	s.statCells.Store(0)
	s.enabled = true
}

func (s *CarveSystem) Name() string {
	return "carve"
}

func (s *CarveSystem) Priority() int {
	return parameter.PriorityCarve
}

func (s *CarveSystem) Update() {
	if !s.enabled {
		return
	}
	c := s.world.Components
	dt := s.world.Resources.Time.Delta

	for _, e := range c.Player.All() {
		ctl, ok := c.Control.Get(e)
		if !ok || ctl.State == nil {
			continue
		}
		carve, ok := c.Carve.Get(e)
		if !ok {
			continue
		}

		if ctl.State.Pressed(input.ActionCarve) {
			carve.Current = easeRadius(carve, dt)
		}

		if ctl.State.JustReleased(input.ActionCarve) {
			if p, _ := c.Player.Get(e); p.Held == core.NoEntity {
				s.Carve(e, carve.Current)
			}
			carve.Current = carve.Min
		}

		c.Carve.Set(e, carve)
	}
}

// easeRadius advances the carve radius: slow near zero, fast toward the maximum
func easeRadius(carve component.CarveComponent, dt float64) float64 {
	if carve.Max <= 0 {
		return carve.Current
	}
	x := carve.Current / carve.Max
	if x <= 0 {
		return carve.Max
	}
	next := carve.Max * (x + carve.Speed*dt*math.Pow(x, -4))
	return math.Min(next, carve.Max)
}

// Carve lifts the non-empty cells of the square around the player's aim point into a new held cluster
// Returns the cluster, or zero when the region held no cells
func (s *CarveSystem) Carve(player core.Entity, radius float64) core.Entity {
	c := s.world.Components
	res := s.world.Resources

	p, ok := c.Player.Get(player)
	if !ok || p.Held != core.NoEntity {
		return core.NoEntity
	}
	pos, ok := res.Physics.Position(player)
	if !ok {
		return core.NoEntity
	}

	target := vmath.V2Add(pos, vmath.V2Scale(p.Aim, p.Reach+radius))
	cx, cy := res.Mapper.WorldToCell(target)
	half := res.Mapper.CellRadius(radius)
	center := res.Mapper.CellCenter(cx, cy)

	s.seeds = s.seeds[:0]
	for y := cy - half; y <= cy+half; y++ {
		for x := cx - half; x <= cx+half; x++ {
			if !res.Grid.InBounds(x, y) {
				continue
			}
			particle, ok := res.Grid.Get(x, y)
			if !ok {
				continue
			}
			res.Grid.Clear(x, y)
			s.seeds = append(s.seeds, rockSeed{
				Offset: vmath.V2Sub(res.Mapper.CellCenter(x, y), center),
				Color:  particle.Color,
			})
		}
	}
	if len(s.seeds) == 0 {
		return core.NoEntity
	}

	cluster := spawnCluster(s.world, player, center, s.seeds)
	p.Held = cluster
	c.Player.Set(player, p)
	res.Hold.State = engine.GrabHolding

	s.statCarves.Add(1)
	s.statCells.Add(int64(len(s.seeds)))
	s.world.PushEvent(event.EventCarve, &event.CarvePayload{
		Player:  player,
		Cluster: cluster,
		Cells:   len(s.seeds),
	})
	return cluster
}
