package harness

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"rattle/internal/gen"
	"rattle/internal/record"
	"rattle/internal/target"
)

func newRecorder(t *testing.T) *record.Recorder {
	t.Helper()
	rec, err := record.Open(filepath.Join(t.TempDir(), "fuzz-results.log"), nil)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	t.Cleanup(func() { _ = rec.Close() })
	return rec
}

func tableWith(cap target.Capability, h target.Handle) target.Table {
	table := make(target.Table)
	for _, c := range target.Capabilities {
		table[c] = nil
	}
	table[cap] = &target.Resolved{
		Handle: h,
		Source: target.Candidate{Namespace: "test/ns", Attr: "Attr"},
	}
	return table
}

func newRunner(t *testing.T, table target.Table) (*Runner, *record.Recorder) {
	t.Helper()
	rec := newRecorder(t)
	return &Runner{Table: table, Gen: gen.NewSource(1), Rec: rec}, rec
}

func TestRunnerRecordsReturnedError(t *testing.T) {
	boom := errors.New("boom")
	r, rec := newRunner(t, tableWith(target.CapLinter, target.FuncHandle(func(target.Input) error {
		return boom
	})))
	r.RunIteration(7)

	if rec.Count() != 1 {
		t.Fatalf("expected 1 failure, got %d", rec.Count())
	}
	f := rec.Failures()[0]
	if f.Iteration != 7 || f.Module != "test/ns" || f.Function != "Attr" {
		t.Fatalf("failure context wrong: %+v", f)
	}
	if f.Error != "boom" {
		t.Fatalf("error message wrong: %q", f.Error)
	}
	if len(f.Args) != 1 || f.Args[0] == "" {
		t.Fatalf("args representation missing: %v", f.Args)
	}
}

func TestRunnerRecoversPanicWithStack(t *testing.T) {
	r, rec := newRunner(t, tableWith(target.CapFrequency, target.FuncHandle(func(target.Input) error {
		panic("index out of range")
	})))
	r.RunIteration(0)

	if rec.Count() != 1 {
		t.Fatalf("expected 1 failure, got %d", rec.Count())
	}
	f := rec.Failures()[0]
	if !strings.Contains(f.Error, "index out of range") {
		t.Fatalf("panic message lost: %q", f.Error)
	}
	if !strings.Contains(f.Traceback, "goroutine") {
		t.Fatalf("traceback should carry the stack, got %q", f.Traceback)
	}
}

func TestRunnerSkipsUnresolved(t *testing.T) {
	table := make(target.Table)
	for _, c := range target.Capabilities {
		table[c] = nil
	}
	r, rec := newRunner(t, table)
	r.RunIteration(0)
	if rec.Count() != 0 {
		t.Fatalf("unresolved targets must never produce failures, got %d", rec.Count())
	}
}

func TestRunnerIsolatesTargets(t *testing.T) {
	calls := map[target.Capability]int{}
	table := make(target.Table)
	for _, c := range target.Capabilities {
		table[c] = nil
	}
	table[target.CapLinter] = &target.Resolved{
		Handle: target.FuncHandle(func(target.Input) error {
			calls[target.CapLinter]++
			panic("linter down")
		}),
		Source: target.Candidate{Namespace: "a", Attr: "Lint"},
	}
	table[target.CapReport] = &target.Resolved{
		Handle: target.FuncHandle(func(target.Input) error {
			calls[target.CapReport]++
			return nil
		}),
		Source: target.Candidate{Namespace: "b", Attr: "Report"},
	}

	r, rec := newRunner(t, table)
	r.RunIteration(0)

	if calls[target.CapReport] != 1 {
		t.Fatalf("report target must still be tried after linter failure")
	}
	if rec.Count() != 1 {
		t.Fatalf("expected exactly the linter failure, got %d", rec.Count())
	}
}

// shapeCountingInstance rejects every shape and counts invocations.
type shapeCountingInstance struct {
	calls  *int
	result error
}

func (s shapeCountingInstance) Invoke(method string, in target.Input) error {
	*s.calls++
	return s.result
}

func TestClassShapeMismatchRetriedExactlyOnce(t *testing.T) {
	calls := 0
	h := target.ClassHandle(func() target.Invocable {
		return shapeCountingInstance{calls: &calls, result: target.ErrShapeMismatch}
	}, "Run")
	r, rec := newRunner(t, tableWith(target.CapLinter, h))
	r.RunIteration(0)

	if calls != 2 {
		t.Fatalf("expected original call + exactly one retry, got %d calls", calls)
	}
	if rec.Count() != 1 {
		t.Fatalf("persistent mismatch after the retry is a genuine failure")
	}
}

// pathOnlyInstance accepts only path-shaped input.
type pathOnlyInstance struct{ calls *int }

func (p pathOnlyInstance) Invoke(method string, in target.Input) error {
	*p.calls++
	if in.Kind != target.InputPath {
		return target.ErrShapeMismatch
	}
	return nil
}

func TestClassShapeMismatchRecoversOnRetry(t *testing.T) {
	calls := 0
	h := target.ClassHandle(func() target.Invocable {
		return pathOnlyInstance{calls: &calls}
	}, "Run")
	r, rec := newRunner(t, tableWith(target.CapLinter, h))
	r.RunIteration(0)

	if calls != 2 {
		t.Fatalf("expected 2 calls (text then path), got %d", calls)
	}
	if rec.Count() != 0 {
		t.Fatalf("successful retry must not produce a failure record, got %d", rec.Count())
	}
}

func TestFuncShapeMismatchIsGenuineFailure(t *testing.T) {
	// the bounded retry applies to construct-then-invoke targets only
	calls := 0
	r, rec := newRunner(t, tableWith(target.CapLinter, target.FuncHandle(func(target.Input) error {
		calls++
		return target.ErrShapeMismatch
	})))
	r.RunIteration(0)

	if calls != 1 {
		t.Fatalf("direct callables get no retry, got %d calls", calls)
	}
	if rec.Count() != 1 {
		t.Fatalf("expected the mismatch recorded as failure")
	}
}

func TestRunnerShapesInputsPerCapability(t *testing.T) {
	got := map[target.Capability]target.InputKind{}
	table := make(target.Table)
	for _, c := range target.Capabilities {
		cap := c
		table[cap] = &target.Resolved{
			Handle: target.FuncHandle(func(in target.Input) error {
				got[cap] = in.Kind
				return nil
			}),
			Source: target.Candidate{Namespace: "ns", Attr: string(cap)},
		}
	}
	r, rec := newRunner(t, table)
	r.RunIteration(0)

	want := map[target.Capability]target.InputKind{
		target.CapParser:    target.InputPath,
		target.CapLinter:    target.InputText,
		target.CapFrequency: target.InputBytes,
		target.CapReport:    target.InputStats,
		target.CapMiner:     target.InputPath,
	}
	for cap, kind := range want {
		if got[cap] != kind {
			t.Fatalf("capability %s got input kind %v, want %v", cap, got[cap], kind)
		}
	}
	if rec.Count() != 0 {
		t.Fatalf("clean targets must record nothing")
	}
}
