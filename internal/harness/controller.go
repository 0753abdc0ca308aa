package harness

import (
	"strconv"
	"time"

	"rattle/internal/record"
	"rattle/internal/trace"
)

// State is the controller lifecycle.
type State uint8

const (
	StateInit State = iota
	StateRunning
	StateDone
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Options configures a session controller.
type Options struct {
	// Iterations is the configured iteration count. Zero is valid: the
	// session resolves, runs nothing, and reports a clean result.
	Iterations int
	// ThrottleEvery inserts a pause after every Nth iteration to bound I/O
	// pressure. Defaults to 50.
	ThrottleEvery int
	// ThrottlePause is the pause duration. Defaults to 10ms.
	ThrottlePause time.Duration
	// SummaryPath is where the end-of-run summary is written when failures
	// occurred. Empty disables the summary artifact.
	SummaryPath string
	// Tracer receives session milestones. Defaults to trace.Nop.
	Tracer trace.Tracer
	// Sink receives progress events. Defaults to NopSink.
	Sink Sink
}

// Result is the aggregate outcome of a session.
type Result struct {
	Iterations int
	Failures   int
	Elapsed    time.Duration
}

// Controller loops the runner over the configured iteration count and
// produces the final artifacts. Single-threaded, fully sequential.
type Controller struct {
	runner *Runner
	rec    *record.Recorder
	opts   Options
	state  State
}

// NewController wires a runner and recorder into a controller.
func NewController(runner *Runner, rec *record.Recorder, opts Options) *Controller {
	if opts.ThrottleEvery <= 0 {
		opts.ThrottleEvery = 50
	}
	if opts.ThrottlePause <= 0 {
		opts.ThrottlePause = 10 * time.Millisecond
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	if opts.Sink == nil {
		opts.Sink = NopSink
	}
	return &Controller{runner: runner, rec: rec, opts: opts}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Run executes the whole session and returns its result. Nothing from inside
// an iteration propagates out; the only process-level signal is the failure
// count the caller maps to an exit status.
func (c *Controller) Run() Result {
	trace.Info(c.opts.Tracer, "session", "starting", map[string]string{
		"iterations": strconv.Itoa(c.opts.Iterations),
		"targets":    strconv.Itoa(c.runner.Table.ResolvedCount()),
	})
	start := time.Now()
	c.state = StateRunning

	for i := 0; i < c.opts.Iterations; i++ {
		c.runner.RunIteration(i)
		c.opts.Sink.Publish(Event{
			Iteration: i,
			Total:     c.opts.Iterations,
			Failures:  c.rec.Count(),
		})
		if i%c.opts.ThrottleEvery == 0 {
			time.Sleep(c.opts.ThrottlePause)
		}
	}

	c.state = StateDone
	elapsed := time.Since(start)
	result := Result{
		Iterations: c.opts.Iterations,
		Failures:   c.rec.Count(),
		Elapsed:    elapsed,
	}
	c.opts.Sink.Publish(Event{
		Iteration: c.opts.Iterations,
		Total:     c.opts.Iterations,
		Failures:  result.Failures,
		Done:      true,
	})

	if result.Failures > 0 {
		if c.opts.SummaryPath != "" {
			if err := record.WriteSummary(c.opts.SummaryPath, record.Summary{
				Timestamp:    time.Now(),
				Iterations:   result.Iterations,
				Failures:     result.Failures,
				FirstFailure: c.rec.First(),
			}); err != nil {
				trace.Error(c.opts.Tracer, "summary", err.Error(), nil)
			}
		}
		trace.Error(c.opts.Tracer, "session", "finished with failures", map[string]string{
			"failures": strconv.Itoa(result.Failures),
			"elapsed":  elapsed.String(),
		})
	} else {
		trace.Info(c.opts.Tracer, "session", "finished clean", map[string]string{
			"elapsed": elapsed.String(),
		})
	}
	return result
}
