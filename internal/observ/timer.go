// Package observ tracks session phase timings for the --timings flag.
package observ

import (
	"fmt"
	"time"
)

// Phase records the duration of one session phase.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
}

// Timer tracks the execution time of the session phases (resolve, run,
// report). Phases are recorded in start order.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Phase starts a phase and returns the function that finishes it.
func (t *Timer) Phase(name string) func() {
	idx := len(t.phases)
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return func() {
		p := &t.phases[idx]
		p.Dur = time.Since(p.Start)
	}
}

// Summary returns a human-readable string summarizing all tracked phases.
func (t *Timer) Summary() string {
	report := t.Report()
	out := "timings:\n"
	for _, p := range report.Phases {
		out += fmt.Sprintf("  %-12s %9.2f ms\n", p.Name, p.DurationMS)
	}
	out += fmt.Sprintf("  %-12s %9.2f ms\n", "total", report.TotalMS)
	return out
}

// PhaseReport is one phase in serialized form.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
}

// Report aggregates the timer data.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report builds the phase list and total duration in milliseconds.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: float64(phase.Dur) / float64(time.Millisecond),
		}
	}
	report.TotalMS = float64(total) / float64(time.Millisecond)
	return report
}
