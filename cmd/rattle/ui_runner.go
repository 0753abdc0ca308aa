package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rattle/internal/harness"
	"rattle/internal/record"
	"rattle/internal/ui"
)

// runSessionWithUI drives the controller in a goroutine while Bubble Tea
// renders progress from the event channel. The fuzz loop itself stays
// sequential; the UI only observes.
func runSessionWithUI(runner *harness.Runner, rec *record.Recorder, opts harness.Options) harness.Result {
	events := make(chan harness.Event, 256)
	outcomeCh := make(chan harness.Result, 1)

	opts.Sink = harness.ChannelSink{Ch: events}
	go func() {
		res := harness.NewController(runner, rec, opts).Run()
		outcomeCh <- res
		close(events)
	}()

	title := fmt.Sprintf("rattle: fuzzing %d target(s)", runner.Table.ResolvedCount())
	model := ui.NewSessionModel(title, opts.Iterations, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		// fall back to a silent run; the session finishes regardless
		_ = err
	}
	return <-outcomeCh
}
