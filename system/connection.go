package system

import (
	"sync/atomic"

	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/vmath"
)

// ConnectionSystem owns the device registry: a connecting device gets a player, a leaving one loses it
type ConnectionSystem struct {
	world *engine.World

	nextSpawn int

	statPlayers *atomic.Int64

	enabled bool
}

func NewConnectionSystem(world *engine.World) engine.System {
	s := &ConnectionSystem{
		world: world,
	}

	s.statPlayers = s.world.Resources.Status.Ints.Get("connection.players")

	s.Init()
	return s
}

func (s *ConnectionSystem) Init() {
	s.nextSpawn = 0
	s.statPlayers.Store(0)
	s.enabled = true
}

func (s *ConnectionSystem) Name() string {
	return "connection"
}

func (s *ConnectionSystem) Priority() int {
	return parameter.PriorityConnection
}

func (s *ConnectionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDeviceConnected,
		event.EventDeviceDisconnected,
	}
}

func (s *ConnectionSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}
	payload, ok := ev.Payload.(*event.DevicePayload)
	if !ok {
		return
	}
	devices := s.world.Resources.Devices
	device := input.DeviceID(payload.Device)

	switch ev.Type {
	case event.EventDeviceConnected:
		if _, bound := devices.Player(device); bound {
			return
		}
		player := spawnPlayer(s.world, payload.Device, s.spawnPoint())
		devices.Bind(device, player)
		s.world.Resources.Log.Info().
			Str("system", s.Name()).
			Int("device", payload.Device).
			Uint64("player", uint64(player)).
			Msg("player joined")

	case event.EventDeviceDisconnected:
		player, bound := devices.Player(device)
		if !bound {
			return
		}
		removePlayer(s.world, player)
		s.world.Resources.Log.Info().
			Str("system", s.Name()).
			Int("device", payload.Device).
			Uint64("player", uint64(player)).
			Msg("player left")
	}

	s.statPlayers.Store(int64(devices.Len()))
}

// spawnPoint cycles through level spawns, origin when the level has none
func (s *ConnectionSystem) spawnPoint() vmath.Vec2 {
	spawns := s.world.Resources.Spawns
	if len(spawns) == 0 {
		return vmath.Vec2{}
	}
	p := spawns[s.nextSpawn%len(spawns)]
	s.nextSpawn++
	return p
}

func (s *ConnectionSystem) Update() {}
