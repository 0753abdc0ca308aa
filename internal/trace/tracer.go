package trace

import "sync/atomic"

// Tracer is the sink contract consumed by the harness.
type Tracer interface {
	// Emit records a log event. Must be goroutine-safe.
	Emit(ev Event)

	// Flush ensures all buffered events are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Level returns the current sink level.
	Level() Level

	// Enabled returns true if logging is active (Level > LevelOff).
	Enabled() bool
}

var seqCounter atomic.Uint64

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 {
	return seqCounter.Add(1)
}
