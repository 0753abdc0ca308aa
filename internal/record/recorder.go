package record

import (
	"encoding/json"
	"fmt"
	"os"

	"rattle/internal/trace"
)

// Recorder appends failures to the persistent log and the in-memory list.
// Both are updated together in Record, so their counts always agree. Single
// writer; the harness is fully sequential.
type Recorder struct {
	path     string
	file     *os.File
	failures []Failure
	tracer   trace.Tracer
}

// Open truncates/creates the failure log at path so every run starts from an
// idempotent empty state.
func Open(path string, tracer trace.Tracer) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open failure log %s: %w", path, err)
	}
	if tracer == nil {
		tracer = trace.Nop
	}
	return &Recorder{path: path, file: f, tracer: tracer}, nil
}

// Record serializes the failure as pretty-printed JSON followed by a blank
// line and appends it to the log and the in-memory list. Serialization
// failure degrades to a plain textual rendering; writes are best-effort. The
// method never fails: a broken recorder must not take the run down with it.
func (r *Recorder) Record(f Failure) {
	block, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		block = []byte(fmt.Sprintf("%+v", f))
	}
	if r.file != nil {
		if _, err := r.file.Write(append(block, '\n', '\n')); err != nil {
			_ = err
		}
	}
	r.failures = append(r.failures, f)
	trace.Error(r.tracer, "failure", f.Error, map[string]string{
		"module":   f.Module,
		"function": f.Function,
	})
}

// Failures returns the in-memory failure list in record order.
func (r *Recorder) Failures() []Failure {
	return r.failures
}

// Count returns the aggregate failure count.
func (r *Recorder) Count() int {
	return len(r.failures)
}

// First returns the first recorded failure, or nil when the run was clean.
func (r *Recorder) First() *Failure {
	if len(r.failures) == 0 {
		return nil
	}
	first := r.failures[0]
	return &first
}

// Path returns the failure log location.
func (r *Recorder) Path() string {
	return r.path
}

// Close flushes and closes the underlying log file.
func (r *Recorder) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// WriteSummary writes the end-of-run summary as a single indented JSON object.
func WriteSummary(path string, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write summary %s: %w", path, err)
	}
	return nil
}
