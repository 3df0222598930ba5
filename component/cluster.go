package component

import (
	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/vmath"
)

// MemberEntry is one rock in a cluster
type MemberEntry struct {
	Entity core.Entity
	Offset vmath.Vec2 // Relative to cluster center, world units
}

// ClusterComponent resides on the massless cluster body and owns its rocks
// Members may go stale when a rock is detached; Compact removes tombstones
type ClusterComponent struct {
	Members []MemberEntry

	// Compaction flag, set when a member is detached
	Dirty bool
}

// Compact drops members whose entity is zero
func (c *ClusterComponent) Compact() {
	if !c.Dirty {
		return
	}
	n := 0
	for _, m := range c.Members {
		if m.Entity != core.NoEntity {
			c.Members[n] = m
			n++
		}
	}
	c.Members = c.Members[:n]
	c.Dirty = false
}

// Remove tombstones a member, returns false if absent
func (c *ClusterComponent) Remove(e core.Entity) bool {
	for i := range c.Members {
		if c.Members[i].Entity == e {
			c.Members[i].Entity = core.NoEntity
			c.Dirty = true
			return true
		}
	}
	return false
}

// Live returns the number of non-tombstoned members
func (c *ClusterComponent) Live() int {
	n := 0
	for _, m := range c.Members {
		if m.Entity != core.NoEntity {
			n++
		}
	}
	return n
}

// MemberComponent gives O(1) cluster resolution from a rock
type MemberComponent struct {
	Cluster core.Entity
}

// OwnerComponent names the player a cluster belongs to
type OwnerComponent struct {
	Player core.Entity
}

// HeldComponent marks a cluster currently carried by a player
type HeldComponent struct {
	Holder core.Entity
}

// MeasuredVelocityComponent is displacement per step, independent of the solver
type MeasuredVelocityComponent struct {
	Velocity vmath.Vec2
	Last     vmath.Vec2 // Last sampled position
	Primed   bool       // Last holds a real sample
}
