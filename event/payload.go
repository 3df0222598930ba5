package event

import "github.com/lixenwraith/sandfall/core"

// DevicePayload identifies an input device
type DevicePayload struct {
	Device int
}

// CarvePayload describes cells moved between the grid and a cluster
type CarvePayload struct {
	Player  core.Entity
	Cluster core.Entity
	Cells   int
}

// ClusterPayload names the acting entity and its subject
type ClusterPayload struct {
	Player  core.Entity
	Cluster core.Entity
	Y       float64
}

// ReabsorbPayload describes a write-back into the grid
type ReabsorbPayload struct {
	Entity core.Entity
	Cells  int
}

// GroundImpactPayload describes a rock separated by ground contact
type GroundImpactPayload struct {
	Rock    core.Entity
	Cluster core.Entity
	Speed   float64
	Cleared int
}

// DamagePayload describes damage applied to a player
type DamagePayload struct {
	Player  core.Entity
	Cluster core.Entity
	Damage  float64
	Health  float64
}

// FracturePayload describes a cluster converted into loose rocks
type FracturePayload struct {
	Cluster   core.Entity
	Aggressor core.Entity
	Rocks     int
	Mutual    bool
}

// ParryPayload describes a cluster redirected by a player
type ParryPayload struct {
	Player        core.Entity
	Cluster       core.Entity
	PreviousOwner core.Entity
}
