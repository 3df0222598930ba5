package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/sandfall/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventCarve, Frame: int64(i)})
	}
	if q.Len() != 5 {
		t.Errorf("Expected 5 pending, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("Expected frame %d at %d, got %d", i, i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventDeviceConnected})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 400 {
		t.Errorf("Expected 400 events, got %d", got)
	}
}

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev.Type) }

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)
	h := &recordingHandler{types: []EventType{EventCarve, EventParry}}
	r.Register(h)

	q.Push(GameEvent{Type: EventCarve})
	q.Push(GameEvent{Type: EventPlayerDied})
	q.Push(GameEvent{Type: EventParry})

	if n := r.DispatchAll(); n != 3 {
		t.Errorf("Expected 3 dispatched, got %d", n)
	}
	if len(h.seen) != 2 || h.seen[0] != EventCarve || h.seen[1] != EventParry {
		t.Errorf("Expected [carve parry], got %v", h.seen)
	}
	if r.HandlerCount(EventPlayerDied) != 0 {
		t.Error("Expected no handler for player_died")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventGroundImpact.String() != "ground_impact" {
		t.Errorf("Expected ground_impact, got %s", EventGroundImpact.String())
	}
	if EventType(-1).String() != "unknown" {
		t.Error("Expected unknown for unregistered type")
	}
}
