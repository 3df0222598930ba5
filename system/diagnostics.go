package system

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/status"
)

const diagnosticsSampleInterval = 60

// DiagnosticsSystem logs gameplay events and samples store telemetry
// Events raised during a step are dispatched, and logged here, at the start of the next
type DiagnosticsSystem struct {
	world    *engine.World
	log      zerolog.Logger
	exporter *status.Exporter

	tickCounter int64

	// Store counts
	statRockCount    *atomic.Int64
	statClusterCount *atomic.Int64
	statPlayerCount  *atomic.Int64
	statHeldCount    *atomic.Int64

	// Grid metrics
	statGridVersion  *atomic.Int64
	statGridOccupied *atomic.Int64

	// Consistency
	statOrphanMember *atomic.Int64
	statHoldState    *atomic.Int64

	statEvents  *atomic.Int64
	statDropped *atomic.Int64

	enabled bool
}

// NewDiagnosticsSystem creates the diagnostics system; exporter may be nil
func NewDiagnosticsSystem(world *engine.World, exporter *status.Exporter) engine.System {
	reg := world.Resources.Status

	s := &DiagnosticsSystem{
		world:    world,
		log:      world.Resources.Log.With().Str("system", "diagnostics").Logger(),
		exporter: exporter,

		statRockCount:    reg.Ints.Get("store.rock.count"),
		statClusterCount: reg.Ints.Get("store.cluster.count"),
		statPlayerCount:  reg.Ints.Get("store.player.count"),
		statHeldCount:    reg.Ints.Get("store.held.count"),

		statGridVersion:  reg.Ints.Get("grid.version"),
		statGridOccupied: reg.Ints.Get("grid.cells_occupied"),

		statOrphanMember: reg.Ints.Get("consistency.member_without_cluster"),
		statHoldState:    reg.Ints.Get("hold.state"),

		statEvents:  reg.Ints.Get("diagnostics.events"),
		statDropped: reg.Ints.Get("events.dropped"),
	}

	s.Init()
	return s
}

func (s *DiagnosticsSystem) Init() {
	s.tickCounter = 0
	s.statEvents.Store(0)
	s.enabled = true
}

func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiag
}

func (s *DiagnosticsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCarve,
		event.EventRelease,
		event.EventPlace,
		event.EventReabsorbed,
		event.EventGroundImpact,
		event.EventRockLost,
		event.EventPlayerDamaged,
		event.EventClusterFractured,
		event.EventParry,
		event.EventPlayerDied,
	}
}

func (s *DiagnosticsSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}
	s.statEvents.Add(1)
	if s.exporter != nil {
		s.exporter.CountEvent(context.Background(), ev.Type.String())
	}

	switch p := ev.Payload.(type) {
	case *event.DamagePayload:
		s.log.Info().Int64("frame", ev.Frame).
			Uint64("player", uint64(p.Player)).
			Uint64("cluster", uint64(p.Cluster)).
			Float64("damage", p.Damage).
			Float64("health", p.Health).
			Msg("player damaged")
	case *event.FracturePayload:
		s.log.Info().Int64("frame", ev.Frame).
			Uint64("cluster", uint64(p.Cluster)).
			Uint64("aggressor", uint64(p.Aggressor)).
			Int("rocks", p.Rocks).
			Bool("mutual", p.Mutual).
			Msg("cluster fractured")
	case *event.GroundImpactPayload:
		s.log.Debug().Int64("frame", ev.Frame).
			Uint64("rock", uint64(p.Rock)).
			Float64("speed", p.Speed).
			Int("cleared", p.Cleared).
			Msg("ground impact")
	case *event.ParryPayload:
		s.log.Debug().Int64("frame", ev.Frame).
			Uint64("player", uint64(p.Player)).
			Uint64("cluster", uint64(p.Cluster)).
			Uint64("previous_owner", uint64(p.PreviousOwner)).
			Msg("parry")
	case *event.CarvePayload:
		s.log.Debug().Int64("frame", ev.Frame).
			Str("event", ev.Type.String()).
			Uint64("player", uint64(p.Player)).
			Uint64("cluster", uint64(p.Cluster)).
			Int("cells", p.Cells).
			Msg("terrain moved")
	case *event.ReabsorbPayload:
		s.log.Debug().Int64("frame", ev.Frame).
			Uint64("entity", uint64(p.Entity)).
			Int("cells", p.Cells).
			Msg("reabsorbed")
	case *event.ClusterPayload:
		if ev.Type == event.EventPlayerDied {
			s.log.Warn().Int64("frame", ev.Frame).
				Uint64("player", uint64(p.Player)).
				Float64("y", p.Y).
				Msg("player died")
			return
		}
		s.log.Debug().Int64("frame", ev.Frame).
			Str("event", ev.Type.String()).
			Uint64("player", uint64(p.Player)).
			Uint64("cluster", uint64(p.Cluster)).
			Float64("y", p.Y).
			Send()
	}
}

func (s *DiagnosticsSystem) Update() {
	if !s.enabled {
		return
	}
	s.tickCounter++
	if s.tickCounter%diagnosticsSampleInterval != 0 {
		return
	}

	c := s.world.Components
	res := s.world.Resources

	s.statRockCount.Store(int64(c.Rock.Count()))
	s.statClusterCount.Store(int64(c.Cluster.Count()))
	s.statPlayerCount.Store(int64(c.Player.Count()))
	s.statHeldCount.Store(int64(c.Held.Count()))
	s.statGridVersion.Store(int64(res.Grid.Version()))
	s.statHoldState.Store(int64(res.Hold.State))
	s.statDropped.Store(int64(res.Events.Dropped()))

	occupied := 0
	for y := 0; y < res.Grid.Height(); y++ {
		for x := 0; x < res.Grid.Width(); x++ {
			if _, ok := res.Grid.Get(x, y); ok {
				occupied++
			}
		}
	}
	s.statGridOccupied.Store(int64(occupied))

	orphans := 0
	for _, rock := range c.Member.All() {
		if _, ok := clusterOf(s.world, rock); !ok {
			orphans++
		}
	}
	s.statOrphanMember.Store(int64(orphans))
	if orphans > 0 {
		s.log.Warn().Int("orphans", orphans).Msg("rocks reference missing clusters")
	}
}
