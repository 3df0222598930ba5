package input

import (
	"sort"

	"github.com/lixenwraith/sandfall/core"
)

// DeviceID identifies an input device (keyboard, gamepad slot)
type DeviceID int

// Registry maps devices to the player entities they drive
// Owned by the connection system; one player per device
type Registry struct {
	players map[DeviceID]core.Entity
	devices map[core.Entity]DeviceID
}

func NewRegistry() *Registry {
	return &Registry{
		players: make(map[DeviceID]core.Entity),
		devices: make(map[core.Entity]DeviceID),
	}
}

// Bind attaches a player to a device, replacing any previous binding of either
func (r *Registry) Bind(d DeviceID, player core.Entity) {
	r.Unbind(d)
	if old, ok := r.devices[player]; ok {
		delete(r.players, old)
	}
	r.players[d] = player
	r.devices[player] = d
}

// Unbind detaches a device, returning the player it drove
func (r *Registry) Unbind(d DeviceID) (core.Entity, bool) {
	player, ok := r.players[d]
	if !ok {
		return 0, false
	}
	delete(r.players, d)
	delete(r.devices, player)
	return player, true
}

// Player returns the player bound to a device
func (r *Registry) Player(d DeviceID) (core.Entity, bool) {
	p, ok := r.players[d]
	return p, ok
}

// Device returns the device bound to a player
func (r *Registry) Device(player core.Entity) (DeviceID, bool) {
	d, ok := r.devices[player]
	return d, ok
}

func (r *Registry) Len() int {
	return len(r.players)
}

// Devices returns bound devices in ascending order
func (r *Registry) Devices() []DeviceID {
	out := make([]DeviceID, 0, len(r.players))
	for d := range r.players {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
