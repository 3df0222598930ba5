package system

import (
	"github.com/lixenwraith/sandfall/component"
	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/vmath"
)

// rockSeed is one cell lifted out of the grid at carve time
type rockSeed struct {
	Offset vmath.Vec2
	Color  core.RGBA
}

// spawnCluster creates a held cluster owned by owner with one rock per seed
// Cluster body starts with gravity scale 0 and rotation locked
func spawnCluster(w *engine.World, owner core.Entity, center vmath.Vec2, seeds []rockSeed) core.Entity {
	c := w.Components
	pw := w.Resources.Physics

	cluster := w.CreateEntity()
	pw.AddCluster(cluster, center)

	members := make([]component.MemberEntry, 0, len(seeds))
	for _, seed := range seeds {
		rock := w.CreateEntity()
		c.Rock.Set(rock, component.RockComponent{Color: seed.Color})
		c.Member.Set(rock, component.MemberComponent{Cluster: cluster})
		pw.AttachRock(cluster, rock, seed.Offset)
		members = append(members, component.MemberEntry{Entity: rock, Offset: seed.Offset})
	}

	c.Cluster.Set(cluster, component.ClusterComponent{Members: members})
	c.Owner.Set(cluster, component.OwnerComponent{Player: owner})
	c.Held.Set(cluster, component.HeldComponent{Holder: owner})
	c.Measured.Set(cluster, component.MeasuredVelocityComponent{Last: center, Primed: true})
	return cluster
}

// spawnLooseRock creates an ownerless rock marked for reabsorption
func spawnLooseRock(w *engine.World, pos, vel vmath.Vec2, color core.RGBA) core.Entity {
	e := w.CreateEntity()
	w.Components.Rock.Set(e, component.RockComponent{Color: color})
	w.Components.Reabsorb.Set(e, component.ReabsorbComponent{})
	w.Resources.Physics.AddRock(e, pos, vel)
	return e
}

// clusterOf resolves a rock to its live cluster
func clusterOf(w *engine.World, rock core.Entity) (core.Entity, bool) {
	m, ok := w.Components.Member.Get(rock)
	if !ok || !w.Components.Cluster.Has(m.Cluster) {
		return 0, false
	}
	return m.Cluster, true
}

// dropHold removes the held marker and clears the holder's reference
// Gravity scale is the caller's concern
func dropHold(w *engine.World, cluster core.Entity) {
	c := w.Components
	held, ok := c.Held.Get(cluster)
	if !ok {
		return
	}
	c.Held.Remove(cluster)
	if p, ok := c.Player.Get(held.Holder); ok && p.Held == cluster {
		p.Held = core.NoEntity
		c.Player.Set(held.Holder, p)
	}
	refreshHold(w)
}

// releaseHold drops the hold and hands the cluster back to gravity
func releaseHold(w *engine.World, cluster core.Entity) {
	dropHold(w, cluster)
	w.Resources.Physics.SetGravityScale(cluster, 1)
}

// refreshHold recomputes the advisory global grab state
func refreshHold(w *engine.World) {
	state := engine.GrabEmpty
	for _, e := range w.Components.Player.All() {
		if p, ok := w.Components.Player.Get(e); ok && p.Held != core.NoEntity {
			state = engine.GrabHolding
			break
		}
	}
	w.Resources.Hold.State = state
}

// detachRock removes one rock from its cluster and destroys it
func detachRock(w *engine.World, rock core.Entity) {
	c := w.Components
	if m, ok := c.Member.Get(rock); ok {
		if cl, ok := c.Cluster.Get(m.Cluster); ok {
			cl.Remove(rock)
			cl.Compact()
			c.Cluster.Set(m.Cluster, cl)
		}
	}
	w.DestroyEntity(rock)
}

// destroyCluster despawns a cluster and every rock it still owns
func destroyCluster(w *engine.World, cluster core.Entity) {
	dropHold(w, cluster)
	w.Resources.Physics.Remove(cluster)
	if cl, ok := w.Components.Cluster.Get(cluster); ok {
		for _, m := range cl.Members {
			if m.Entity != core.NoEntity {
				w.DestroyEntity(m.Entity)
			}
		}
	}
	w.DestroyEntity(cluster)
}

// shatterCluster replaces every rock with a loose rock moving at vel, then despawns the cluster
func shatterCluster(w *engine.World, cluster core.Entity, vel vmath.Vec2) int {
	cl, ok := w.Components.Cluster.Get(cluster)
	if !ok {
		return 0
	}
	n := 0
	for _, m := range cl.Members {
		if m.Entity == core.NoEntity {
			continue
		}
		pos, ok := w.Resources.Physics.Position(m.Entity)
		if !ok {
			continue
		}
		rock, _ := w.Components.Rock.Get(m.Entity)
		spawnLooseRock(w, pos, vel, rock.Color)
		n++
	}
	destroyCluster(w, cluster)
	return n
}

// writeBack stores a terrain particle in the cell containing pos
func writeBack(w *engine.World, pos vmath.Vec2) bool {
	x, y := w.Resources.Mapper.WorldToCell(pos)
	if !w.Resources.Grid.InBounds(x, y) {
		return false
	}
	w.Resources.Grid.Set(x, y, grid.Terrain())
	return true
}

// writeBackCluster writes every rock of a cluster into the grid, returns cells written
func writeBackCluster(w *engine.World, cluster core.Entity) int {
	cl, ok := w.Components.Cluster.Get(cluster)
	if !ok {
		return 0
	}
	n := 0
	for _, m := range cl.Members {
		if m.Entity == core.NoEntity {
			continue
		}
		if pos, ok := w.Resources.Physics.Position(m.Entity); ok && writeBack(w, pos) {
			n++
		}
	}
	return n
}

// spawnPlayer creates a player body driven by a device
func spawnPlayer(w *engine.World, device int, pos vmath.Vec2) core.Entity {
	t := w.Resources.Tuning
	c := w.Components

	e := w.CreateEntity()
	c.Player.Set(e, component.PlayerComponent{
		Device:     device,
		Aim:        vmath.Vec2{X: 1},
		Reach:      t.Player.Reach,
		ExtraJumps: t.Player.ExtraJumps,
		MaxJumps:   t.Player.ExtraJumps,
	})
	c.Health.Set(e, component.HealthComponent{Current: t.Player.Health, Max: t.Player.Health})
	c.Carve.Set(e, component.CarveComponent{
		Min:     t.Player.CarveMin,
		Current: t.Player.CarveMin,
		Max:     t.Player.CarveMax,
		Speed:   t.Player.CarveSpeed,
	})
	c.Parry.Set(e, component.ParryComponent{
		MaxRadius: t.Parry.RadiusMax,
		MinRadius: t.Parry.RadiusMin,
		Radius:    t.Parry.RadiusMax,
		Duration:  t.Parry.Duration,
		Regen:     t.Parry.Regen,
		Falloff:   t.Parry.Falloff,
	})
	c.Control.Set(e, component.ControlComponent{State: input.NewActionState()})
	w.Resources.Physics.AddPlayer(e, pos, t.Player.Radius, t.Player.Mass)
	return e
}

// removePlayer releases the player's hold, unbinds its device and despawns it
func removePlayer(w *engine.World, player core.Entity) {
	if p, ok := w.Components.Player.Get(player); ok && p.Held != core.NoEntity {
		releaseHold(w, p.Held)
	}
	if d, ok := w.Resources.Devices.Device(player); ok {
		w.Resources.Devices.Unbind(d)
	}
	w.DestroyEntity(player)
	refreshHold(w)
}
