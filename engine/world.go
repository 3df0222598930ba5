package engine

import (
	"sync"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/event"
)

// World owns entities, component stores, resources and the ordered system list
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resources

	router      *event.Router
	systems     []System
	updateMutex sync.Mutex
}

func NewWorld(res *Resources) *World {
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources:    res,
		router:       event.NewRouter(res.Events),
		systems:      make([]System, 0, 16),
	}
	res.Ground = w.CreateEntity()
	w.Components.Ground.Set(res.Ground, struct{}{})
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes an entity from every store and from the physics world
// Cluster bookkeeping is the caller's concern
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.Remove(e)
	}
	w.Resources.Physics.Remove(e)
}

// AddSystem inserts a system by priority and subscribes it to its events
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	for i := len(w.systems) - 1; i > 0 && w.systems[i].Priority() < w.systems[i-1].Priority(); i-- {
		w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
	}

	if h, ok := system.(event.Handler); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of the ordered system list
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// RunSafe executes fn while holding the step lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Step advances the simulation by one fixed step
// Events queued before the step are dispatched before any system runs
func (w *World) Step() {
	w.RunSafe(w.StepLocked)
}

// StepLocked is Step for callers already holding the step lock
func (w *World) StepLocked() {
	t := w.Resources.Time
	t.Frame++
	t.Elapsed += t.Delta

	w.router.DispatchAll()

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, s := range systems {
		s.Update()
	}
}

// PushEvent queues an event stamped with the current frame
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Resources.Events.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.Resources.Time.Frame,
	})
}

// EntityCount returns the number of IDs issued
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return int(w.nextEntityID - 1)
}
