package system

import (
	"sync/atomic"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/parameter"
)

// PlaceSystem writes a held cluster back into the grid where it hangs when set is pressed
type PlaceSystem struct {
	world *engine.World

	statPlaced *atomic.Int64

	enabled bool
}

func NewPlaceSystem(world *engine.World) engine.System {
	s := &PlaceSystem{
		world: world,
	}

	s.statPlaced = s.world.Resources.Status.Ints.Get("place.cells")

	s.Init()
	return s
}

func (s *PlaceSystem) Init() {
	s.statPlaced.Store(0)
	s.enabled = true
}

func (s *PlaceSystem) Name() string {
	return "place"
}

func (s *PlaceSystem) Priority() int {
	return parameter.PriorityPlace
}

func (s *PlaceSystem) Update() {
	if !s.enabled {
		return
	}
	c := s.world.Components

	for _, e := range c.Player.All() {
		ctl, ok := c.Control.Get(e)
		if !ok || ctl.State == nil || !ctl.State.JustPressed(input.ActionSet) {
			continue
		}
		p, _ := c.Player.Get(e)
		if p.Held == core.NoEntity {
			continue
		}
		cluster := p.Held
		if !c.Cluster.Has(cluster) {
			p.Held = core.NoEntity
			c.Player.Set(e, p)
			refreshHold(s.world)
			continue
		}

		cells := writeBackCluster(s.world, cluster)
		destroyCluster(s.world, cluster)

		s.statPlaced.Add(int64(cells))
		s.world.PushEvent(event.EventPlace, &event.CarvePayload{
			Player:  e,
			Cluster: cluster,
			Cells:   cells,
		})
	}
}
