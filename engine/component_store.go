package engine

import "github.com/lixenwraith/sandfall/component"

// ComponentStore holds the typed stores of every component
// Systems cache the struct once; pointers stay valid for the world's lifetime
type ComponentStore struct {
	// Debris
	Rock     *Store[component.RockComponent]
	Reabsorb *Store[component.ReabsorbComponent]
	Ground   *Store[component.GroundComponent]

	// Cluster
	Cluster  *Store[component.ClusterComponent]
	Member   *Store[component.MemberComponent]
	Owner    *Store[component.OwnerComponent]
	Held     *Store[component.HeldComponent]
	Measured *Store[component.MeasuredVelocityComponent]

	// Player
	Player  *Store[component.PlayerComponent]
	Health  *Store[component.HealthComponent]
	Carve   *Store[component.CarveComponent]
	Parry   *Store[component.ParryComponent]
	Control *Store[component.ControlComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Rock:     NewStore[component.RockComponent](),
		Reabsorb: NewStore[component.ReabsorbComponent](),
		Ground:   NewStore[component.GroundComponent](),

		Cluster:  NewStore[component.ClusterComponent](),
		Member:   NewStore[component.MemberComponent](),
		Owner:    NewStore[component.OwnerComponent](),
		Held:     NewStore[component.HeldComponent](),
		Measured: NewStore[component.MeasuredVelocityComponent](),

		Player:  NewStore[component.PlayerComponent](),
		Health:  NewStore[component.HealthComponent](),
		Carve:   NewStore[component.CarveComponent](),
		Parry:   NewStore[component.ParryComponent](),
		Control: NewStore[component.ControlComponent](),
	}
}

// all lists every store for uniform removal
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Rock, c.Reabsorb, c.Ground,
		c.Cluster, c.Member, c.Owner, c.Held, c.Measured,
		c.Player, c.Health, c.Carve, c.Parry, c.Control,
	}
}
