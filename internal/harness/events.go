package harness

// Event reports session progress to an optional observer (the progress UI).
type Event struct {
	Iteration int // completed iteration index
	Total     int // configured iteration count
	Failures  int // aggregate failure count so far
	Done      bool
}

// Sink receives progress events. Publish must not block the session.
type Sink interface {
	Publish(Event)
}

// ChannelSink forwards events over a channel, dropping when the receiver
// lags. The fuzz loop never waits on the UI.
type ChannelSink struct {
	Ch chan<- Event
}

// Publish sends the event without blocking.
func (s ChannelSink) Publish(ev Event) {
	select {
	case s.Ch <- ev:
	default:
	}
}

type nopSink struct{}

func (nopSink) Publish(Event) {}

// NopSink discards all progress events.
var NopSink Sink = nopSink{}
