package event

import (
	"sync/atomic"

	"github.com/lixenwraith/sandfall/parameter"
)

// EventQueue is a lock-free MPSC ring buffer for engine events
// Push is safe from any goroutine (input poller, systems); Consume belongs to the step loop
// When full the oldest events are overwritten and counted in Dropped
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
	dropped   atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push reserves a slot on tail, writes the event, then marks it published
func (eq *EventQueue) Push(ev GameEvent) {
	slot := eq.tail.Add(1) - 1
	idx := slot & parameter.EventBufferMask
	eq.events[idx] = ev
	eq.published[idx].Store(true) // after the write

	head := eq.head.Load()
	if over := slot + 1 - head; over > parameter.EventQueueSize {
		if eq.head.CompareAndSwap(head, slot+1-parameter.EventQueueSize) {
			eq.dropped.Add(over - parameter.EventQueueSize)
		}
	}
}

// Dropped returns the number of events lost to overflow since creation
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}

// Consume returns pending events in FIFO order and advances head
// Stops at the first slot a producer has reserved but not yet published
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()
		if currentTail == currentHead {
			return nil
		}

		available := currentTail - currentHead
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		result := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break
			}
			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(currentHead, currentHead+uint64(len(result))) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, parameter.EventQueueSize))
}
