package event

// EventType represents the type of engine event
type EventType int

const (
	// === Device Event ===

	// EventDeviceConnected announces a device producing input for the first time
	// Trigger: Terminal input loop, gamepad layer
	// Consumer: ConnectionSystem | Payload: *DevicePayload
	EventDeviceConnected EventType = iota

	// EventDeviceDisconnected announces a device going away
	// Trigger: Terminal input loop, gamepad layer
	// Consumer: ConnectionSystem | Payload: *DevicePayload
	EventDeviceDisconnected

	// === Terrain Event ===

	// EventCarve reports grid cells converted into a held cluster
	// Trigger: CarveSystem
	// Consumer: DiagnosticsSystem | Payload: *CarvePayload
	EventCarve EventType = iota + 100

	// EventRelease reports a held cluster tossed by its owner
	// Trigger: CarrySystem
	// Consumer: DiagnosticsSystem | Payload: *ClusterPayload
	EventRelease

	// EventPlace reports a held cluster written back into the grid by its owner
	// Trigger: PlaceSystem
	// Consumer: DiagnosticsSystem | Payload: *CarvePayload
	EventPlace

	// EventReabsorbed reports settled rocks written back into the grid
	// Trigger: ReabsorbSystem
	// Consumer: DiagnosticsSystem | Payload: *ReabsorbPayload
	EventReabsorbed

	// EventGroundImpact reports a rock separated by ground contact
	// Trigger: GroundImpactSystem
	// Consumer: DiagnosticsSystem | Payload: *GroundImpactPayload
	EventGroundImpact

	// EventRockLost reports a rock discarded below the world floor
	// Trigger: CleanupSystem
	// Consumer: DiagnosticsSystem | Payload: *ClusterPayload
	EventRockLost

	// === Combat Event ===

	// EventPlayerDamaged reports damage dealt by a moving cluster
	// Trigger: FractureSystem damage pass
	// Consumer: DiagnosticsSystem | Payload: *DamagePayload
	EventPlayerDamaged EventType = iota + 200

	// EventClusterFractured reports a cluster broken into loose rocks
	// Trigger: FractureSystem fracture pass
	// Consumer: DiagnosticsSystem | Payload: *FracturePayload
	EventClusterFractured

	// EventParry reports a cluster redirected and claimed by a player
	// Trigger: ParrySystem
	// Consumer: DiagnosticsSystem | Payload: *ParryPayload
	EventParry

	// EventPlayerDied reports a player removed at zero health
	// Trigger: CleanupSystem
	// Consumer: DiagnosticsSystem | Payload: *ClusterPayload
	EventPlayerDied
)

var typeNames = map[EventType]string{
	EventDeviceConnected:    "device_connected",
	EventDeviceDisconnected: "device_disconnected",
	EventCarve:              "carve",
	EventRelease:            "release",
	EventPlace:              "place",
	EventReabsorbed:         "reabsorbed",
	EventGroundImpact:       "ground_impact",
	EventRockLost:           "rock_lost",
	EventPlayerDamaged:      "player_damaged",
	EventClusterFractured:   "cluster_fractured",
	EventParry:              "parry",
	EventPlayerDied:         "player_died",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is one queued event tagged with the step that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
