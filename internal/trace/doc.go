// Package trace is the leveled structured log sink consumed by the fuzzing
// harness. Collaborators hand the harness any Tracer; the package ships a
// streaming text/NDJSON sink, an in-memory ring for the end-of-run trail, a
// fan-out, and a nop singleton for when logging is disabled.
//
// Does not do: artifact serialization (internal/record owns the failure log
// and summary files) or console verdict rendering (cmd/rattle).
package trace
