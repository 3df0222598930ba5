package event

// Handler receives routed events
// Systems implement this to subscribe; dispatch runs before any system Update
type Handler interface {
	EventTypes() []EventType
	HandleEvent(ev GameEvent)
}

// Router dispatches queued events to registered handlers
// Handlers for one type run in registration order; events run in FIFO order
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for each of its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll consumes all pending events and routes them, returns the count dispatched
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for a type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
