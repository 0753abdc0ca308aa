package trace

import "time"

// Event represents a single log event.
type Event struct {
	Time   time.Time         // wall-clock timestamp
	Seq    uint64            // global sequence number (monotonic)
	Level  Level             // severity of this event
	Name   string            // e.g., "resolve", "iteration", "failure"
	Detail string            // optional detail message
	Extra  map[string]string // structured context (module, function, ...)
}

// Info emits an info-level event through t.
func Info(t Tracer, name, detail string, extra map[string]string) {
	if t == nil || !t.Enabled() {
		return
	}
	t.Emit(Event{Time: time.Now(), Level: LevelInfo, Name: name, Detail: detail, Extra: extra})
}

// Error emits an error-level event through t.
func Error(t Tracer, name, detail string, extra map[string]string) {
	if t == nil || !t.Enabled() {
		return
	}
	t.Emit(Event{Time: time.Now(), Level: LevelError, Name: name, Detail: detail, Extra: extra})
}

// Debug emits a debug-level event through t.
func Debug(t Tracer, name, detail string, extra map[string]string) {
	if t == nil || !t.Enabled() {
		return
	}
	t.Emit(Event{Time: time.Now(), Level: LevelDebug, Name: name, Detail: detail, Extra: extra})
}
