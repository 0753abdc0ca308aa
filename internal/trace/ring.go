package trace

import "sync"

// RingTracer keeps the last N events in memory (circular buffer).
// The harness uses it to attach a short event trail to the final verdict.
type RingTracer struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
	head     int  // next write position
	full     bool // has wrapped around
	level    Level
}

// NewRingTracer creates a new RingTracer with specified capacity.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 256
	}
	return &RingTracer{
		events:   make([]Event, capacity),
		capacity: capacity,
		level:    level,
	}
}

// Emit adds an event to the ring buffer.
func (t *RingTracer) Emit(ev Event) {
	if !t.level.ShouldEmit(ev.Level) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ev.Seq = NextSeq()
	t.events[t.head] = ev
	t.head = (t.head + 1) % t.capacity
	if t.head == 0 {
		t.full = true
	}
}

// Snapshot returns a copy of all stored events in chronological order.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.full {
		result := make([]Event, t.head)
		copy(result, t.events[:t.head])
		return result
	}
	result := make([]Event, 0, t.capacity)
	result = append(result, t.events[t.head:]...)
	result = append(result, t.events[:t.head]...)
	return result
}

// Flush is a no-op for the in-memory ring.
func (t *RingTracer) Flush() error { return nil }

// Close is a no-op for the in-memory ring.
func (t *RingTracer) Close() error { return nil }

// Level returns the current sink level.
func (t *RingTracer) Level() Level { return t.level }

// Enabled returns true if logging is active.
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
