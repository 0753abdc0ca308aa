package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	timer := NewTimer()
	stop := timer.Phase("resolve")
	time.Sleep(time.Millisecond)
	stop()
	stop = timer.Phase("run")
	stop()

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[0].Name != "resolve" || report.Phases[1].Name != "run" {
		t.Fatalf("phases out of order: %+v", report.Phases)
	}
	if report.Phases[0].DurationMS <= 0 {
		t.Fatalf("resolve duration should be positive")
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Fatalf("total below first phase: %+v", report)
	}
}

func TestTimerSummaryMentionsPhases(t *testing.T) {
	timer := NewTimer()
	timer.Phase("resolve")()
	s := timer.Summary()
	if !strings.Contains(s, "resolve") || !strings.Contains(s, "total") {
		t.Fatalf("summary missing content: %q", s)
	}
}

func TestEmptyTimerReport(t *testing.T) {
	if r := NewTimer().Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("empty timer must yield empty report: %+v", r)
	}
}
